package embedded

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Categorias de erro da integração. Use errors.Is para testar um *RemoteError.
var (
	ErrValidation        = errors.New("dados inválidos para a API Embedded")
	ErrAuth              = errors.New("acesso negado pela API Embedded")
	ErrNotFound          = errors.New("usuário não encontrado na API Embedded")
	ErrBadRequest        = errors.New("requisição rejeitada pela API Embedded")
	ErrUnknown           = errors.New("erro desconhecido da API Embedded")
	ErrConnection        = errors.New("falha de conexão com a API Embedded")
	ErrInconsistentState = errors.New("usuário criado mas não confirmado na API Embedded")
)

// RemoteError descreve uma falha de chamada à API Embedded
type RemoteError struct {
	Op      string // operação, ex.: "POST", "Link Group"
	Status  int    // status HTTP, 0 quando não houve resposta
	Kind    error  // uma das categorias Err*
	Message string // mensagem legível para o usuário
	Err     error  // causa de rede, quando houver
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func validationError(msg string) *RemoteError {
	return &RemoteError{Kind: ErrValidation, Message: msg}
}

func connectionError(op string, err error) *RemoteError {
	return &RemoteError{
		Op:      op,
		Kind:    ErrConnection,
		Message: fmt.Sprintf("Falha de conexão com a API (%s): %v", op, err),
		Err:     err,
	}
}

// statusError monta o erro de um status HTTP inesperado, incluindo o detalhe devolvido pela API
func statusError(op string, status int, kind error, label string, body []byte) *RemoteError {
	var b strings.Builder
	fmt.Fprintf(&b, "API Erro %d (%s)", status, op)

	detail := errorDetail(body)
	switch {
	case label != "" && detail != "":
		fmt.Fprintf(&b, ": %s Detalhe: %s", label, detail)
	case label != "":
		fmt.Fprintf(&b, ": %s", label)
	case detail != "":
		fmt.Fprintf(&b, ": %s", detail)
	}

	return &RemoteError{Op: op, Status: status, Kind: kind, Message: b.String()}
}

// errorDetail extrai "message" ou "errors" de um corpo JSON; caso contrário devolve o texto bruto
func errorDetail(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err == nil {
		for _, key := range []string{"message", "errors"} {
			raw, ok := fields[key]
			if !ok || string(raw) == "null" {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
			var compact bytes.Buffer
			if err := json.Compact(&compact, raw); err == nil {
				return compact.String()
			}
			return string(raw)
		}
	}

	return string(trimmed)
}
