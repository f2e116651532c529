package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/dto"
	"github.com/hugohenrick/parceiros-api/pkg/jwt"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authRouter(t *testing.T, admin AdminCredentials) *gin.Engine {
	t.Helper()
	c := NewAuthController(admin, logger.New(io.Discard, "off"))
	r := gin.New()
	r.POST("/auth/login", c.Login)
	return r
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo")
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	r := authRouter(t, AdminCredentials{Email: "admin@parceiros.com", PasswordHash: string(hash)})

	t.Run("credenciais válidas", func(t *testing.T) {
		w := do(r, http.MethodPost, "/auth/login", map[string]string{
			"email":    "ADMIN@parceiros.com",
			"password": "senha-forte",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		claims, err := jwt.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin@parceiros.com", claims.Email)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("senha errada", func(t *testing.T) {
		w := do(r, http.MethodPost, "/auth/login", map[string]string{
			"email":    "admin@parceiros.com",
			"password": "outra",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("email desconhecido", func(t *testing.T) {
		w := do(r, http.MethodPost, "/auth/login", map[string]string{
			"email":    "intruso@parceiros.com",
			"password": "senha-forte",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("corpo inválido", func(t *testing.T) {
		w := do(r, http.MethodPost, "/auth/login", map[string]string{"email": "admin"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginWithoutAdminConfigured(t *testing.T) {
	r := authRouter(t, AdminCredentials{})
	w := do(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "admin@parceiros.com",
		"password": "qualquer",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMe(t *testing.T) {
	c := NewAuthController(AdminCredentials{}, logger.New(io.Discard, "off"))
	r := gin.New()
	r.GET("/auth/me", func(ctx *gin.Context) {
		ctx.Set("user_email", "admin@parceiros.com")
		ctx.Set("user_role", "admin")
	}, c.Me)

	w := do(r, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@parceiros.com", resp.Email)
	assert.Equal(t, "admin", resp.Role)
}
