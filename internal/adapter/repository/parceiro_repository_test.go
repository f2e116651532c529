package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/hugohenrick/parceiros-api/internal/infrastructure/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhereDefaultsToActive(t *testing.T) {
	where, args := buildWhere(parceiro.Filter{})

	assert.Equal(t, "WHERE status = $1", where)
	assert.Equal(t, []any{true}, args)
}

func TestBuildWhere(t *testing.T) {
	inativo := false
	senha := true
	de := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	where, args := buildWhere(parceiro.Filter{
		Tipo:          parceiro.TipoDistribuidor,
		Status:        &inativo,
		SenhaDefinida: &senha,
		EntradaDe:     &de,
		EntradaAte:    &ate,
		Nome:          " acme ",
		Busca:         "50%",
	})

	assert.Equal(t,
		"WHERE status = $1 AND tipo = $2 AND senha_definida = $3 AND data_entrada >= $4 AND data_entrada <= $5"+
			" AND (nome_fantasia ILIKE $6 OR nome_ajustado ILIKE $6 OR razao_social ILIKE $6)"+
			" AND (email_gestor ILIKE $7 OR cnpj ILIKE $7)",
		where)
	assert.Equal(t, []any{false, "DISTRIBUIDOR", true, de, ate, "%acme%", `%50\%%`}, args)
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, "ORDER BY nome_fantasia ASC", orderBy(parceiro.Filter{}))
	assert.Contains(t, orderBy(parceiro.Filter{OrdenarPorExpiracao: true}), "data_saida ASC NULLS LAST")
}

// testPool conecta ao banco de PARCEIROS_TEST_DATABASE_URL e aplica as migrações
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := os.Getenv("PARCEIROS_TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("PARCEIROS_TEST_DATABASE_URL não definida")
	}

	require.NoError(t, database.RunMigrations(dbURL))

	pool, err := pgxpool.New(context.Background(), dbURL)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), "TRUNCATE parceiros")
	require.NoError(t, err)

	return pool
}

func novoParceiro(t *testing.T, email, nome string, saida *time.Time) *parceiro.Parceiro {
	t.Helper()

	p, err := parceiro.NewParceiro(email, parceiro.Dados{
		NomeAjustado: nome,
		Tipo:         parceiro.TipoIndustria,
		NomeFantasia: nome,
		DataEntrada:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DataSaida:    saida,
	})
	require.NoError(t, err)
	return p
}

func TestParceiroRepositoryIntegration(t *testing.T) {
	pool := testPool(t)
	repo := NewParceiroRepository(pool)
	ctx := context.Background()

	saida := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	a := novoParceiro(t, "a@b.com", "Beta", &saida)
	a.SetAPIUserID("u-1")
	b := novoParceiro(t, "c@d.com", "Alfa", nil)

	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	dup := novoParceiro(t, "A@B.com", "Gama", nil)
	assert.ErrorIs(t, repo.Create(ctx, dup), parceiro.ErrDuplicateEmail)

	found, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.GetAPIUserID())
	assert.Equal(t, "2025-03-05", parceiro.FormatDate(*found.DataSaida))

	exists, err := repo.ExistsByEmail(ctx, "C@D.COM")
	require.NoError(t, err)
	assert.True(t, exists)

	items, err := repo.List(ctx, parceiro.Filter{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Alfa", items[0].NomeFantasia)

	items, err = repo.List(ctx, parceiro.Filter{OrdenarPorExpiracao: true})
	require.NoError(t, err)
	assert.Equal(t, "Beta", items[0].NomeFantasia)

	require.NoError(t, repo.UpdateStatus(ctx, b.ID, false))
	total, err := repo.Count(ctx, parceiro.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	require.NoError(t, repo.MarkSenhaDefinida(ctx, a.ID))
	found, err = repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, found.SenhaDefinida)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, parceiro.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, a.ID), parceiro.ErrNotFound)
}
