package controller

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/dto"
	"github.com/hugohenrick/parceiros-api/pkg/jwt"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// AdminCredentials são as credenciais do administrador do painel
type AdminCredentials struct {
	Email        string
	PasswordHash string // hash bcrypt
}

// NewAdminCredentialsFromEnv lê ADMIN_EMAIL e ADMIN_PASSWORD_HASH
func NewAdminCredentialsFromEnv() AdminCredentials {
	return AdminCredentials{
		Email:        os.Getenv("ADMIN_EMAIL"),
		PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	admin  AdminCredentials
	logger logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(admin AdminCredentials, logger logger.Logger) *AuthController {
	return &AuthController{
		admin:  admin,
		logger: logger,
	}
}

// Login autentica o administrador e retorna um token JWT
// @Summary Autentica o administrador
// @Description Verifica as credenciais do administrador e retorna um token JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	if c.admin.Email == "" || c.admin.PasswordHash == "" {
		c.logger.Error("Credenciais do administrador não configuradas")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao configurar autenticação", "administrador não configurado"))
		return
	}

	if !strings.EqualFold(request.Email, c.admin.Email) ||
		bcrypt.CompareHashAndPassword([]byte(c.admin.PasswordHash), []byte(request.Password)) != nil {
		c.logger.Warn("Tentativa de login inválida", "email", request.Email, "ip", ctx.ClientIP())
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", "Email ou senha incorretos"))
		return
	}

	token, err := jwt.GenerateToken(c.admin.Email, "admin", tokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Email:       c.admin.Email,
		AccessToken: token,
		ExpiresAt:   time.Now().Add(tokenDuration),
	})
}

// Me retorna o administrador autenticado
// @Summary Administrador autenticado
// @Description Retorna o email e o papel presentes no token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MeResponse{
		Email: ctx.GetString("user_email"),
		Role:  ctx.GetString("user_role"),
	})
}
