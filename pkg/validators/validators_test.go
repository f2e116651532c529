package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exemplo struct {
	Tipo        string `validate:"required,tipoparceiro"`
	DataEntrada string `validate:"required,data"`
	DataSaida   string `validate:"omitempty,data"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, Register(v))
	return v
}

func TestValidators(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Struct(exemplo{Tipo: "INDUSTRIA", DataEntrada: "2024-01-10"}))
	assert.NoError(t, v.Struct(exemplo{Tipo: "DISTRIBUIDOR", DataEntrada: "2024-01-10", DataSaida: "2025-12-31"}))

	err := v.Struct(exemplo{Tipo: "VAREJO", DataEntrada: "10/01/2024", DataSaida: "2025-13-01"})
	require.Error(t, err)

	problems := FieldErrors(err)
	assert.Equal(t, "use INDUSTRIA ou DISTRIBUIDOR", problems["tipo"])
	assert.Equal(t, "use o formato AAAA-MM-DD", problems["data_entrada"])
	assert.Equal(t, "use o formato AAAA-MM-DD", problems["data_saida"])
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestRegisterBindings(t *testing.T) {
	assert.NoError(t, RegisterBindings())
}
