package embedded

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gojek/heimdall/v7/httpclient"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/hugohenrick/parceiros-api/pkg/metrics"
)

const (
	opCreate         = "POST"
	opFetch          = "GET"
	opLinkGroup      = "Link Group"
	opUpdate         = "PUT"
	opDelete         = "DELETE"
	opRollback       = "Rollback"
	opChangePassword = "ChangePass"
)

// maxBodySize limita a leitura do corpo das respostas
const maxBodySize = 1 << 20

// Client acessa os endpoints de usuário da API Embedded.
// Nenhuma chamada é repetida automaticamente.
type Client struct {
	config   *Config
	http     *httpclient.Client
	rollback *httpclient.Client
	logger   logger.Logger
}

// NewClient cria um novo cliente da API Embedded
func NewClient(config *Config, log logger.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		http: httpclient.NewClient(
			httpclient.WithHTTPTimeout(config.Timeout),
			httpclient.WithRetryCount(0),
		),
		rollback: httpclient.NewClient(
			httpclient.WithHTTPTimeout(config.RollbackTimeout),
			httpclient.WithRetryCount(0),
		),
		logger: log,
	}, nil
}

type userList struct {
	Data []struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"data"`
}

type linkGroupsRequest struct {
	UserEmail string   `json:"userEmail"`
	Groups    []string `json:"groups"`
}

type changePasswordRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAndFetchID cria o usuário e busca o ID gerado pela API.
// Se a criação for aceita mas a busca falhar, o erro é ErrInconsistentState.
func (c *Client) CreateAndFetchID(ctx context.Context, payload Payload) (string, error) {
	status, body, err := c.send(ctx, c.http, opCreate, http.MethodPost, c.endpoint("/user"), payload)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		if status == http.StatusUnauthorized {
			return "", statusError(opCreate, status, ErrAuth, "Não Autorizado. Verifique sua Chave de API (Token).", body)
		}
		return "", statusError(opCreate, status, kindFor(status), "", body)
	}

	query := url.Values{"email": {payload.Email}}
	status, body, err = c.send(ctx, c.http, opFetch, http.MethodGet, c.endpoint("/user")+"?"+query.Encode(), nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", inconsistent(fmt.Sprintf(
			"API criou o usuário (POST 200 OK), mas falhou ao buscá-lo (GET %d). Verifique as permissões da sua chave.", status))
	}

	return matchUserID(payload.Email, body)
}

// matchUserID escolhe o ID do usuário criado na resposta da busca por email
func matchUserID(email string, body []byte) (string, error) {
	var list userList
	if err := json.Unmarshal(body, &list); err != nil {
		return "", inconsistent(fmt.Sprintf("API criou o usuário, mas a resposta GET foi inválida: %v", err))
	}

	if len(list.Data) == 0 {
		return "", inconsistent(fmt.Sprintf("API criou o usuário (POST 200), mas a busca (GET) por '%s' não o encontrou.", email))
	}

	var id string
	matches := 0
	for _, u := range list.Data {
		if strings.EqualFold(strings.TrimSpace(u.Email), email) {
			id = u.ID
			matches++
		}
	}
	switch {
	case matches == 0:
		return "", inconsistent(fmt.Sprintf(
			"API criou o usuário, mas a busca (GET) por '%s' não retornou esse email (%d resultados).", email, len(list.Data)))
	case matches > 1:
		return "", inconsistent(fmt.Sprintf(
			"API criou o usuário, mas a busca (GET) por '%s' retornou %d resultados ambíguos.", email, len(list.Data)))
	}
	if id == "" {
		return "", inconsistent("API criou e listou o usuário, mas ele veio sem 'id' no JSON.")
	}
	return id, nil
}

// LinkToGroup vincula o usuário ao grupo configurado
func (c *Client) LinkToGroup(ctx context.Context, email string) error {
	if email == "" {
		return validationError("Email do usuário ou ID do Grupo não fornecido.")
	}

	req := linkGroupsRequest{UserEmail: email, Groups: []string{c.config.GroupID}}
	status, body, err := c.send(ctx, c.http, opLinkGroup, http.MethodPut, c.endpoint("/user/link-groups"), req)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return statusError(opLinkGroup, status, ErrAuth, "Não Autorizado.", body)
	case http.StatusForbidden:
		return statusError(opLinkGroup, status, ErrAuth, "Proibido. Sua chave não tem permissão para vincular grupos.", body)
	case http.StatusBadRequest:
		return statusError(opLinkGroup, status, ErrBadRequest, "", body)
	default:
		return statusError(opLinkGroup, status, ErrUnknown, "Erro desconhecido.", body)
	}
}

// Update atualiza um usuário existente. O payload deve conter o ID.
func (c *Client) Update(ctx context.Context, payload Payload) error {
	status, body, err := c.send(ctx, c.http, opUpdate, http.MethodPut, c.endpoint("/user"), payload)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return statusError(opUpdate, status, ErrAuth, "Não Autorizado.", body)
	case http.StatusForbidden:
		return statusError(opUpdate, status, ErrAuth, "Proibido. Sua chave não tem permissão para ATUALIZAR (PUT) usuários.", body)
	case http.StatusNotFound:
		return statusError(opUpdate, status, ErrNotFound,
			fmt.Sprintf("Usuário com ID '%s' não encontrado na API.", payload.ID), body)
	default:
		return statusError(opUpdate, status, kindFor(status), "", body)
	}
}

// Delete remove o usuário pelo email. Usuário inexistente não é erro.
func (c *Client) Delete(ctx context.Context, email string) error {
	status, body, err := c.send(ctx, c.http, opDelete, http.MethodDelete, c.userPath(email), nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		return nil
	case http.StatusUnauthorized:
		return statusError(opDelete, status, ErrAuth, "Não Autorizado.", body)
	case http.StatusForbidden:
		return statusError(opDelete, status, ErrAuth, "Proibido. Sua chave não tem permissão para DELETAR usuários.", body)
	default:
		return statusError(opDelete, status, kindFor(status), "", body)
	}
}

// DeleteForRollback remove o usuário criado numa operação que falhou.
// Usa o timeout de reversão e não é interrompida pelo cancelamento de ctx.
func (c *Client) DeleteForRollback(ctx context.Context, email string) error {
	if email == "" {
		return validationError("Email não fornecido para a reversão.")
	}

	c.logger.Warn("Revertendo criação de usuário na API", "email", email)

	status, body, err := c.send(context.WithoutCancel(ctx), c.rollback, opRollback, http.MethodDelete, c.userPath(email), nil)
	if err != nil {
		c.logger.Error("Falha na reversão", "email", email, "error", err)
		return err
	}

	switch status {
	case http.StatusOK, http.StatusNoContent, http.StatusNotFound:
		c.logger.Info("Reversão concluída", "email", email)
		return nil
	default:
		c.logger.Error("Falha na reversão", "email", email, "status", status)
		return statusError(opRollback, status, kindFor(status), "", body)
	}
}

// ChangePassword define a senha do usuário
func (c *Client) ChangePassword(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return validationError("Email ou nova senha não fornecidos.")
	}

	req := changePasswordRequest{Email: email, Password: password}
	status, body, err := c.send(ctx, c.http, opChangePassword, http.MethodPut, c.endpoint("/user/change-password"), req)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return statusError(opChangePassword, status, ErrAuth, "Não Autorizado.", body)
	case http.StatusForbidden:
		return statusError(opChangePassword, status, ErrAuth, "Proibido. Sua chave não tem permissão para alterar senhas.", body)
	case http.StatusBadRequest:
		return statusError(opChangePassword, status, ErrBadRequest, "", body)
	default:
		return statusError(opChangePassword, status, ErrUnknown, "Erro desconhecido.", body)
	}
}

// send executa a requisição e devolve status e corpo.
// Só retorna erro quando não há resposta HTTP.
func (c *Client) send(ctx context.Context, client *httpclient.Client, op, method, target string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("erro ao serializar requisição (%s): %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("erro ao montar requisição (%s): %w", op, err)
	}
	req.Header.Set("X-API-Key", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if resp == nil {
		metrics.ObserveEmbeddedCall(op, 0, time.Since(start))
		if err == nil {
			err = fmt.Errorf("resposta vazia")
		}
		return 0, nil, connectionError(op, err)
	}
	defer resp.Body.Close()

	metrics.ObserveEmbeddedCall(op, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return 0, nil, connectionError(op, err)
	}

	c.logger.Debug("Chamada à API Embedded", "op", op, "method", method, "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

func (c *Client) endpoint(path string) string {
	return c.config.BaseURL + path
}

func (c *Client) userPath(email string) string {
	return c.endpoint("/user/" + url.PathEscape(email))
}

func kindFor(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrBadRequest
	default:
		return ErrUnknown
	}
}

func inconsistent(msg string) *RemoteError {
	return &RemoteError{Op: opFetch, Kind: ErrInconsistentState, Message: msg}
}
