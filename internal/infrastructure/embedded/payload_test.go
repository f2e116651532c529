package embedded

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayload(t *testing.T) {
	p, err := BuildPayload(UserFields{
		Email:        "a@b.com",
		NomeFantasia: "ACME",
		Tipo:         "INDUSTRIA",
		DataSaida:    "2025-12-31",
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "ACME", p.Name)
	assert.Equal(t, "a@b.com", p.Email)
	assert.Equal(t, RoleViewer, p.Role)
	assert.Equal(t, "INDUSTRIA", p.Department)
	require.NotNil(t, p.ExpirationDate)
	assert.Equal(t, "2025-12-31T00:00:00Z", *p.ExpirationDate)
	assert.True(t, p.CanDisplayVisualHeaders)
	assert.True(t, p.AccessReportAnyTime)
	assert.True(t, p.SendWelcomeEmail)
	assert.False(t, p.CanEditReport)
	assert.False(t, p.BypassFirewall)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "id")
	assert.Contains(t, fields, "reportLandingPage")
	assert.Nil(t, fields["reportLandingPage"])
	assert.Nil(t, fields["windowsAdUser"])
	assert.EqualValues(t, 3, fields["role"])
}

func TestBuildPayloadWithID(t *testing.T) {
	p, err := BuildPayload(UserFields{Email: "a@b.com", NomeFantasia: "ACME"}, "u-1")
	require.NoError(t, err)

	assert.Equal(t, "u-1", p.ID)
	assert.Nil(t, p.ExpirationDate)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"id":"u-1"`)
	assert.Contains(t, string(raw), `"expirationDate":null`)
}

func TestBuildPayloadValidation(t *testing.T) {
	cases := []struct {
		name   string
		fields UserFields
		want   string
	}{
		{"sem email", UserFields{NomeFantasia: "ACME"}, "E-mail Gestor"},
		{"sem nome fantasia", UserFields{Email: "a@b.com"}, "Nome Fantasia"},
		{"data inválida", UserFields{Email: "a@b.com", NomeFantasia: "ACME", DataSaida: "31/12/2025"}, "AAAA-MM-DD"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildPayload(tc.fields, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestToExpirationDate(t *testing.T) {
	iso, err := ToExpirationDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29T00:00:00Z", iso)

	_, err = ToExpirationDate("2023-02-29")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "email inválido", errorDetail([]byte(`{"message":"email inválido"}`)))
	assert.Equal(t, `["campo x"]`, errorDetail([]byte(`{"errors":["campo x"]}`)))
	assert.Equal(t, "Bad Gateway", errorDetail([]byte("Bad Gateway")))
	assert.Equal(t, "", errorDetail(nil))
}
