package parceiro

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dadosValidos() Dados {
	saida := time.Date(2025, 12, 31, 15, 30, 0, 0, time.UTC)
	return Dados{
		NomeAjustado:   "ACME",
		Tipo:           TipoIndustria,
		CNPJ:           "12.345.678/0001-90",
		NomeFantasia:   "Acme",
		RazaoSocial:    "Acme Indústria Ltda",
		Gestor:         "Maria",
		TelefoneGestor: "11999990000",
		DataEntrada:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DataSaida:      &saida,
	}
}

func TestNewParceiro(t *testing.T) {
	p, err := NewParceiro(" a@b.com ", dadosValidos())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "a@b.com", p.EmailGestor)
	assert.True(t, p.Status)
	assert.False(t, p.SenhaDefinida)
	assert.Nil(t, p.APIUserID)
	assert.Equal(t, "2025-12-31", FormatDate(*p.DataSaida))
	assert.Equal(t, 0, p.DataSaida.Hour())
	assert.False(t, p.DataAtualizacao.IsZero())
}

func TestNewParceiroValidation(t *testing.T) {
	cases := []struct {
		name  string
		email string
		edit  func(d *Dados)
		want  error
	}{
		{"email vazio", "", func(d *Dados) {}, ErrEmptyEmailGestor},
		{"email inválido", "sem-arroba", func(d *Dados) {}, ErrInvalidEmail},
		{"email com nome de exibição", "Gestor <a@b.com>", func(d *Dados) {}, ErrInvalidEmail},
		{"nome fantasia vazio", "a@b.com", func(d *Dados) { d.NomeFantasia = " " }, ErrEmptyNomeFantasia},
		{"nome ajustado vazio", "a@b.com", func(d *Dados) { d.NomeAjustado = "" }, ErrEmptyNomeAjustado},
		{"tipo inválido", "a@b.com", func(d *Dados) { d.Tipo = "VAREJO" }, ErrInvalidTipo},
		{"sem data de entrada", "a@b.com", func(d *Dados) { d.DataEntrada = time.Time{} }, ErrEmptyDataEntrada},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := dadosValidos()
			tc.edit(&d)
			_, err := NewParceiro(tc.email, d)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestUpdateKeepsEmail(t *testing.T) {
	p, err := NewParceiro("a@b.com", dadosValidos())
	require.NoError(t, err)

	d := dadosValidos()
	d.NomeFantasia = "Acme Nova"
	d.DataSaida = nil
	require.NoError(t, p.Update(d))

	assert.Equal(t, "a@b.com", p.EmailGestor)
	assert.Equal(t, "Acme Nova", p.NomeFantasia)
	assert.Nil(t, p.DataSaida)
}

func TestSetAPIUserID(t *testing.T) {
	p := &Parceiro{}
	p.SetAPIUserID("u-1")
	assert.Equal(t, "u-1", p.GetAPIUserID())

	p.SetAPIUserID("")
	assert.Nil(t, p.APIUserID)
	assert.Equal(t, "", p.GetAPIUserID())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", FormatDate(d))

	_, err = ParseDate("31/12/2025")
	assert.True(t, errors.Is(err, ErrInvalidDate))

	opt, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestFilterStatusOrDefault(t *testing.T) {
	assert.True(t, Filter{}.StatusOrDefault())
	inativo := false
	assert.False(t, Filter{Status: &inativo}.StatusOrDefault())
}
