package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/dto"
	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/hugohenrick/parceiros-api/internal/infrastructure/embedded"
	"github.com/hugohenrick/parceiros-api/internal/service"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/hugohenrick/parceiros-api/pkg/validators"
)

// ParceiroService define as operações de parceiro usadas pelo controller
type ParceiroService interface {
	Create(ctx context.Context, emailGestor string, dados parceiro.Dados) (*parceiro.Parceiro, error)
	Get(ctx context.Context, id string) (*parceiro.Parceiro, error)
	List(ctx context.Context, filter parceiro.Filter) ([]*parceiro.Parceiro, int, error)
	ListExpiring(ctx context.Context, dias int) ([]*parceiro.Parceiro, error)
	Update(ctx context.Context, id string, dados parceiro.Dados) (*parceiro.Parceiro, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status bool) (*parceiro.Parceiro, error)
	ChangePassword(ctx context.Context, id, senha string) (*parceiro.Parceiro, error)
}

// ParceiroController gerencia as requisições relacionadas a parceiros
type ParceiroController struct {
	service ParceiroService
	logger  logger.Logger
}

// NewParceiroController cria uma nova instância de ParceiroController
func NewParceiroController(service ParceiroService, logger logger.Logger) *ParceiroController {
	return &ParceiroController{
		service: service,
		logger:  logger,
	}
}

// Create cadastra um parceiro e o usuário dele na API Embedded
// @Summary Criar parceiro
// @Description Cria o usuário na API Embedded, vincula ao grupo Parceiros e salva o parceiro
// @Tags parceiros
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param parceiro body dto.ParceiroCreateRequest true "Dados do parceiro"
// @Success 201 {object} dto.ParceiroResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros [post]
func (c *ParceiroController) Create(ctx *gin.Context) {
	var req dto.ParceiroCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.bindError(ctx, err)
		return
	}

	dados, err := req.ToDados()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.service.Create(ctx.Request.Context(), req.EmailGestor, dados)
	if err != nil {
		c.respondError(ctx, "erro ao criar parceiro", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToParceiroResponse(p))
}

// Get retorna um parceiro pelo ID
// @Summary Buscar parceiro
// @Description Retorna os dados de um parceiro pelo ID, ativo ou inativo
// @Tags parceiros
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do parceiro"
// @Success 200 {object} dto.ParceiroResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros/{id} [get]
func (c *ParceiroController) Get(ctx *gin.Context) {
	p, err := c.service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondError(ctx, "erro ao buscar parceiro", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParceiroResponse(p))
}

// List lista os parceiros com filtros e paginação
// @Summary Listar parceiros
// @Description Lista parceiros ativos por padrão, com filtros por tipo, status, datas e nome
// @Tags parceiros
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tipo query string false "INDUSTRIA ou DISTRIBUIDOR"
// @Param status query bool false "Status (padrão: true)"
// @Param senha_definida query bool false "Senha já definida na API"
// @Param entrada_de query string false "Data de entrada inicial (AAAA-MM-DD)"
// @Param entrada_ate query string false "Data de entrada final (AAAA-MM-DD)"
// @Param nome query string false "Trecho do nome fantasia, nome ajustado ou razão social"
// @Param busca query string false "Trecho do email do gestor ou CNPJ"
// @Param ordenar query string false "expiracao para ordenar pela data de saída"
// @Param page query int false "Página (padrão: 1)"
// @Param size query int false "Tamanho da página (padrão: 10, máximo: 100)"
// @Success 200 {object} dto.ParceiroListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros [get]
func (c *ParceiroController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))
	pagination := dto.GetPagination(page, size)

	filter, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro inválido", err.Error()))
		return
	}
	filter.Limit = pagination.PageSize
	filter.Offset = pagination.Offset()

	parceiros, total, err := c.service.List(ctx.Request.Context(), filter)
	if err != nil {
		c.respondError(ctx, "erro ao listar parceiros", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParceiroListResponse(parceiros, total, pagination.Page, pagination.PageSize))
}

// ListExpiring lista os parceiros ativos com data de saída nos próximos dias
// @Summary Listar parceiros expirando
// @Description Lista parceiros ativos cuja data de saída cai nos próximos N dias
// @Tags parceiros
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param dias query int false "Janela em dias (padrão: 30)"
// @Success 200 {array} dto.ParceiroResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros/expirando [get]
func (c *ParceiroController) ListExpiring(ctx *gin.Context) {
	dias, err := strconv.Atoi(ctx.DefaultQuery("dias", "30"))
	if err != nil || dias < 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro dias inválido", ""))
		return
	}

	parceiros, err := c.service.ListExpiring(ctx.Request.Context(), dias)
	if err != nil {
		c.respondError(ctx, "erro ao listar parceiros expirando", err)
		return
	}

	items := make([]dto.ParceiroResponse, len(parceiros))
	for i, p := range parceiros {
		items[i] = *dto.ToParceiroResponse(p)
	}
	ctx.JSON(http.StatusOK, items)
}

// Update atualiza um parceiro e o usuário dele na API Embedded
// @Summary Atualizar parceiro
// @Description Atualiza o usuário na API Embedded e, se der certo, o parceiro. O email do gestor não muda.
// @Tags parceiros
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do parceiro"
// @Param parceiro body dto.ParceiroUpdateRequest true "Dados do parceiro"
// @Success 200 {object} dto.ParceiroResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros/{id} [put]
func (c *ParceiroController) Update(ctx *gin.Context) {
	var req dto.ParceiroUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.bindError(ctx, err)
		return
	}

	dados, err := req.ToDados()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.service.Update(ctx.Request.Context(), ctx.Param("id"), dados)
	if err != nil {
		c.respondError(ctx, "erro ao atualizar parceiro", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParceiroResponse(p))
}

// Delete remove um parceiro e o usuário dele na API Embedded
// @Summary Excluir parceiro
// @Description Remove o usuário da API Embedded pelo email e depois o parceiro
// @Tags parceiros
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do parceiro"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros/{id} [delete]
func (c *ParceiroController) Delete(ctx *gin.Context) {
	if err := c.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.respondError(ctx, "erro ao excluir parceiro", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetStatus ativa ou desativa um parceiro
// @Summary Alterar status do parceiro
// @Description Ativa ou desativa o parceiro localmente, sem alterar o usuário na API Embedded
// @Tags parceiros
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do parceiro"
// @Param status body dto.StatusRequest true "Novo status"
// @Success 200 {object} dto.ParceiroResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros/{id}/status [patch]
func (c *ParceiroController) SetStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.bindError(ctx, err)
		return
	}

	p, err := c.service.SetStatus(ctx.Request.Context(), ctx.Param("id"), *req.Status)
	if err != nil {
		c.respondError(ctx, "erro ao alterar status do parceiro", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParceiroResponse(p))
}

// ChangePassword define a senha do usuário do parceiro na API Embedded
// @Summary Definir senha
// @Description Define a senha do usuário na API Embedded e marca a senha como definida
// @Tags parceiros
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do parceiro"
// @Param senha body dto.SenhaRequest true "Nova senha"
// @Success 200 {object} dto.ParceiroResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /parceiros/{id}/senha [put]
func (c *ParceiroController) ChangePassword(ctx *gin.Context) {
	var req dto.SenhaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.bindError(ctx, err)
		return
	}

	p, err := c.service.ChangePassword(ctx.Request.Context(), ctx.Param("id"), req.Senha)
	if err != nil {
		c.respondError(ctx, "erro ao definir senha", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToParceiroResponse(p))
}

func (c *ParceiroController) bindError(ctx *gin.Context, err error) {
	if fields := validators.FieldErrors(err); fields != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(http.StatusBadRequest, "dados inválidos", fields))
		return
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
}

// respondError converte o erro do serviço no status HTTP correspondente
func (c *ParceiroController) respondError(ctx *gin.Context, message string, err error) {
	var remote *embedded.RemoteError
	var provisioning *service.ProvisioningError

	switch {
	case parceiro.IsValidationError(err), errors.Is(err, embedded.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
	case errors.Is(err, parceiro.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "parceiro não encontrado", ""))
	case errors.Is(err, parceiro.ErrDuplicateEmail):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, message, err.Error()))
	case errors.Is(err, embedded.ErrConnection):
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, message, err.Error()))
	case errors.As(err, &remote), errors.As(err, &provisioning):
		c.logger.Warn(message, "error", err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}

func parseFilter(ctx *gin.Context) (parceiro.Filter, error) {
	var filter parceiro.Filter

	if tipo := strings.ToUpper(strings.TrimSpace(ctx.Query("tipo"))); tipo != "" {
		filter.Tipo = parceiro.Tipo(tipo)
		if !filter.Tipo.IsValid() {
			return filter, parceiro.ErrInvalidTipo
		}
	}

	status, err := parseOptionalBool(ctx.Query("status"))
	if err != nil {
		return filter, err
	}
	filter.Status = status

	senha, err := parseOptionalBool(ctx.Query("senha_definida"))
	if err != nil {
		return filter, err
	}
	filter.SenhaDefinida = senha

	if filter.EntradaDe, err = parceiro.ParseOptionalDate(ctx.Query("entrada_de")); err != nil {
		return filter, err
	}
	if filter.EntradaAte, err = parceiro.ParseOptionalDate(ctx.Query("entrada_ate")); err != nil {
		return filter, err
	}

	filter.Nome = ctx.Query("nome")
	filter.Busca = ctx.Query("busca")
	filter.OrdenarPorExpiracao = ctx.Query("ordenar") == "expiracao"

	return filter, nil
}

func parseOptionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errors.New("valor booleano inválido: " + value)
	}
	return &b, nil
}
