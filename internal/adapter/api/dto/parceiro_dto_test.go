package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestDecodesEmbeddedFields(t *testing.T) {
	var req ParceiroCreateRequest
	err := json.Unmarshal([]byte(`{
		"email_gestor": "a@b.com",
		"nome_ajustado": "ACME",
		"tipo": "INDUSTRIA",
		"nome_fantasia": "Acme",
		"data_entrada": "2024-01-10",
		"data_saida": "2025-12-31"
	}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", req.EmailGestor)

	dados, err := req.ToDados()
	require.NoError(t, err)
	assert.Equal(t, parceiro.TipoIndustria, dados.Tipo)
	assert.Equal(t, "2024-01-10", parceiro.FormatDate(dados.DataEntrada))
	require.NotNil(t, dados.DataSaida)
	assert.Equal(t, "2025-12-31", parceiro.FormatDate(*dados.DataSaida))
}

func TestToDadosInvalidDate(t *testing.T) {
	_, err := ParceiroUpdateRequest{DataEntrada: "2024-01-10", DataSaida: "amanhã"}.ToDados()
	assert.ErrorIs(t, err, parceiro.ErrInvalidDate)
}

func TestToParceiroResponse(t *testing.T) {
	p, err := parceiro.NewParceiro("a@b.com", parceiro.Dados{
		NomeAjustado: "ACME",
		Tipo:         parceiro.TipoDistribuidor,
		NomeFantasia: "Acme",
		DataEntrada:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	resp := ToParceiroResponse(p)
	assert.Equal(t, "DISTRIBUIDOR", resp.Tipo)
	assert.Equal(t, "2024-01-10", resp.DataEntrada)
	assert.Nil(t, resp.DataSaida)
	assert.Nil(t, resp.APIUserID)
	assert.True(t, resp.Status)

	p.DataAtualizacao = time.Date(2025, 3, 4, 10, 20, 30, 0, time.FixedZone("BRT", -3*60*60))
	assert.Equal(t, "2025-03-04T10:20:30-03:00", ToParceiroResponse(p).DataAtualizacao)
}

func TestToParceiroListResponse(t *testing.T) {
	list := ToParceiroListResponse(nil, 21, 2, 10)

	assert.Empty(t, list.Items)
	assert.NotNil(t, list.Items)
	assert.Equal(t, 3, list.TotalPages)
}

func TestGetPagination(t *testing.T) {
	p := GetPagination(0, 500)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PageSize)

	p = GetPagination(3, 0)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 20, p.Offset())
}
