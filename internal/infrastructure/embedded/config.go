package embedded

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL é a URL base da API Embedded
	DefaultBaseURL = "https://api.powerembedded.com.br/api"

	// DefaultTimeout é o limite das chamadas normais
	DefaultTimeout = 10 * time.Second

	// DefaultRollbackTimeout é o limite da deleção usada na reversão
	DefaultRollbackTimeout = 5 * time.Second
)

var (
	ErrMissingAPIKey  = errors.New("EMBEDDED_API_KEY não configurada")
	ErrMissingGroupID = errors.New("PARCEIROS_GROUP_ID não configurado")
)

// Config contém as configurações de acesso à API Embedded.
// É lida uma vez na inicialização e não muda depois.
type Config struct {
	BaseURL         string
	APIKey          string
	GroupID         string // grupo "Parceiros"
	Timeout         time.Duration
	RollbackTimeout time.Duration
}

// NewConfigFromEnv cria uma nova configuração a partir de variáveis de ambiente
func NewConfigFromEnv() *Config {
	timeout, _ := strconv.Atoi(getEnv("EMBEDDED_TIMEOUT_SECONDS", "10"))
	rollbackTimeout, _ := strconv.Atoi(getEnv("EMBEDDED_ROLLBACK_TIMEOUT_SECONDS", "5"))

	return &Config{
		BaseURL:         getEnv("EMBEDDED_API_URL", DefaultBaseURL),
		APIKey:          os.Getenv("EMBEDDED_API_KEY"),
		GroupID:         os.Getenv("PARCEIROS_GROUP_ID"),
		Timeout:         time.Duration(timeout) * time.Second,
		RollbackTimeout: time.Duration(rollbackTimeout) * time.Second,
	}
}

// Validate verifica os campos obrigatórios e aplica os valores padrão
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.GroupID == "" {
		return ErrMissingGroupID
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.RollbackTimeout <= 0 {
		c.RollbackTimeout = DefaultRollbackTimeout
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
