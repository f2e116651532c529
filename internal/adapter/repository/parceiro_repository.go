package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// código do PostgreSQL para violação de unicidade
const uniqueViolation = "23505"

const parceiroColumns = `
	id, api_user_id, nome_ajustado, tipo, cnpj, nome_fantasia, razao_social,
	gestor, telefone_gestor, email_gestor, data_entrada, data_saida,
	status, senha_definida, data_atualizacao`

// ParceiroRepository implementa a interface parceiro.Repository
type ParceiroRepository struct {
	db *pgxpool.Pool
}

// NewParceiroRepository cria uma nova instância de ParceiroRepository
func NewParceiroRepository(db *pgxpool.Pool) parceiro.Repository {
	return &ParceiroRepository{
		db: db,
	}
}

// Create implementa parceiro.Repository.Create
func (r *ParceiroRepository) Create(ctx context.Context, p *parceiro.Parceiro) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO parceiros (`+parceiroColumns+`
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)`,
		p.ID, p.APIUserID, p.NomeAjustado, string(p.Tipo), p.CNPJ, p.NomeFantasia,
		p.RazaoSocial, p.Gestor, p.TelefoneGestor, p.EmailGestor,
		p.DataEntrada, p.DataSaida, p.Status, p.SenhaDefinida, p.DataAtualizacao)

	if err != nil {
		if isUniqueViolation(err) {
			return parceiro.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao criar parceiro: %w", err)
	}

	return nil
}

// FindByID implementa parceiro.Repository.FindByID
func (r *ParceiroRepository) FindByID(ctx context.Context, id string) (*parceiro.Parceiro, error) {
	row := r.db.QueryRow(ctx, `SELECT `+parceiroColumns+` FROM parceiros WHERE id = $1`, id)

	p, err := scanParceiro(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parceiro.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar parceiro: %w", err)
	}

	return p, nil
}

// ExistsByEmail implementa parceiro.Repository.ExistsByEmail
func (r *ParceiroRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM parceiros WHERE LOWER(email_gestor) = LOWER($1))`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do parceiro: %w", err)
	}

	return exists, nil
}

// List implementa parceiro.Repository.List
func (r *ParceiroRepository) List(ctx context.Context, filter parceiro.Filter) ([]*parceiro.Parceiro, error) {
	where, args := buildWhere(filter)

	query := `SELECT ` + parceiroColumns + ` FROM parceiros ` + where + ` ` + orderBy(filter)
	if filter.Limit > 0 {
		args = append(args, filter.Limit, filter.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar parceiros: %w", err)
	}
	defer rows.Close()

	var parceiros []*parceiro.Parceiro
	for rows.Next() {
		p, err := scanParceiro(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler parceiro: %w", err)
		}
		parceiros = append(parceiros, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar parceiros: %w", err)
	}

	return parceiros, nil
}

// Count implementa parceiro.Repository.Count
func (r *ParceiroRepository) Count(ctx context.Context, filter parceiro.Filter) (int, error) {
	where, args := buildWhere(filter)

	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM parceiros `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar parceiros: %w", err)
	}

	return count, nil
}

// Update implementa parceiro.Repository.Update
func (r *ParceiroRepository) Update(ctx context.Context, p *parceiro.Parceiro) error {
	p.DataAtualizacao = time.Now()

	result, err := r.db.Exec(ctx,
		`UPDATE parceiros SET
			api_user_id = $2, nome_ajustado = $3, tipo = $4, cnpj = $5,
			nome_fantasia = $6, razao_social = $7, gestor = $8,
			telefone_gestor = $9, data_entrada = $10, data_saida = $11,
			status = $12, senha_definida = $13, data_atualizacao = $14
		WHERE id = $1`,
		p.ID, p.APIUserID, p.NomeAjustado, string(p.Tipo), p.CNPJ, p.NomeFantasia,
		p.RazaoSocial, p.Gestor, p.TelefoneGestor, p.DataEntrada, p.DataSaida,
		p.Status, p.SenhaDefinida, p.DataAtualizacao)

	if err != nil {
		if isUniqueViolation(err) {
			return parceiro.ErrDuplicateEmail
		}
		return fmt.Errorf("erro ao atualizar parceiro: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parceiro.ErrNotFound
	}

	return nil
}

// Delete implementa parceiro.Repository.Delete
func (r *ParceiroRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM parceiros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir parceiro: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parceiro.ErrNotFound
	}

	return nil
}

// UpdateStatus implementa parceiro.Repository.UpdateStatus
func (r *ParceiroRepository) UpdateStatus(ctx context.Context, id string, status bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE parceiros SET status = $2, data_atualizacao = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do parceiro: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parceiro.ErrNotFound
	}

	return nil
}

// MarkSenhaDefinida implementa parceiro.Repository.MarkSenhaDefinida
func (r *ParceiroRepository) MarkSenhaDefinida(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE parceiros SET senha_definida = TRUE, data_atualizacao = $2 WHERE id = $1`,
		id, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao marcar senha definida: %w", err)
	}

	if result.RowsAffected() == 0 {
		return parceiro.ErrNotFound
	}

	return nil
}

// buildWhere monta a cláusula WHERE do filtro com parâmetros posicionais
func buildWhere(filter parceiro.Filter) (string, []any) {
	args := []any{filter.StatusOrDefault()}
	conds := []string{"status = $1"}

	add := func(cond string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Tipo != "" {
		add("tipo = $%d", string(filter.Tipo))
	}
	if filter.SenhaDefinida != nil {
		add("senha_definida = $%d", *filter.SenhaDefinida)
	}
	if filter.EntradaDe != nil {
		add("data_entrada >= $%d", *filter.EntradaDe)
	}
	if filter.EntradaAte != nil {
		add("data_entrada <= $%d", *filter.EntradaAte)
	}
	if filter.SaidaDe != nil {
		add("data_saida >= $%d", *filter.SaidaDe)
	}
	if filter.SaidaAte != nil {
		add("data_saida <= $%d", *filter.SaidaAte)
	}
	if nome := strings.TrimSpace(filter.Nome); nome != "" {
		add("(nome_fantasia ILIKE $%[1]d OR nome_ajustado ILIKE $%[1]d OR razao_social ILIKE $%[1]d)", likePattern(nome))
	}
	if busca := strings.TrimSpace(filter.Busca); busca != "" {
		add("(email_gestor ILIKE $%[1]d OR cnpj ILIKE $%[1]d)", likePattern(busca))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(filter parceiro.Filter) string {
	if filter.OrdenarPorExpiracao {
		return "ORDER BY data_saida ASC NULLS LAST, nome_fantasia ASC"
	}
	return "ORDER BY nome_fantasia ASC"
}

func likePattern(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(value) + "%"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func scanParceiro(row pgx.Row) (*parceiro.Parceiro, error) {
	var p parceiro.Parceiro
	var tipo string

	err := row.Scan(
		&p.ID, &p.APIUserID, &p.NomeAjustado, &tipo, &p.CNPJ, &p.NomeFantasia,
		&p.RazaoSocial, &p.Gestor, &p.TelefoneGestor, &p.EmailGestor,
		&p.DataEntrada, &p.DataSaida, &p.Status, &p.SenhaDefinida, &p.DataAtualizacao)
	if err != nil {
		return nil, err
	}

	p.Tipo = parceiro.Tipo(tipo)
	return &p, nil
}
