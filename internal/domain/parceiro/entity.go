package parceiro

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout é o formato das datas de entrada e saída (AAAA-MM-DD)
const DateLayout = "2006-01-02"

var (
	ErrEmptyNomeAjustado = errors.New("nome ajustado não pode ser vazio")
	ErrEmptyNomeFantasia = errors.New("nome fantasia não pode ser vazio")
	ErrEmptyEmailGestor  = errors.New("email do gestor não pode ser vazio")
	ErrInvalidEmail      = errors.New("email do gestor inválido")
	ErrInvalidTipo       = errors.New("tipo de parceiro inválido, use INDUSTRIA ou DISTRIBUIDOR")
	ErrEmptyDataEntrada  = errors.New("data de entrada não pode ser vazia")
	ErrInvalidDate       = errors.New("formato de data inválido, use AAAA-MM-DD")
	ErrEmptySenha        = errors.New("senha não pode ser vazia")

	ErrNotFound       = errors.New("parceiro não encontrado")
	ErrDuplicateEmail = errors.New("parceiro com mesmo email de gestor já existe")
)

var validationErrors = []error{
	ErrEmptyNomeAjustado,
	ErrEmptyNomeFantasia,
	ErrEmptyEmailGestor,
	ErrInvalidEmail,
	ErrInvalidTipo,
	ErrEmptyDataEntrada,
	ErrInvalidDate,
	ErrEmptySenha,
}

// IsValidationError verifica se o erro é de validação dos dados do parceiro
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Tipo define a classificação do parceiro
type Tipo string

const (
	TipoIndustria    Tipo = "INDUSTRIA"
	TipoDistribuidor Tipo = "DISTRIBUIDOR"
)

// IsValid verifica se o tipo é conhecido
func (t Tipo) IsValid() bool {
	return t == TipoIndustria || t == TipoDistribuidor
}

// Parceiro representa uma indústria ou distribuidor com acesso aos relatórios embedded
type Parceiro struct {
	ID              string     `json:"id"`
	APIUserID       *string    `json:"api_user_id"`      // ID do usuário na API Embedded
	NomeAjustado    string     `json:"nome_ajustado"`    // Nome usado nos relatórios
	Tipo            Tipo       `json:"tipo"`             // INDUSTRIA ou DISTRIBUIDOR
	CNPJ            string     `json:"cnpj"`             // CNPJ
	NomeFantasia    string     `json:"nome_fantasia"`    // Nome Fantasia
	RazaoSocial     string     `json:"razao_social"`     // Razão Social
	Gestor          string     `json:"gestor"`           // Nome do gestor
	TelefoneGestor  string     `json:"telefone_gestor"`  // Telefone do gestor
	EmailGestor     string     `json:"email_gestor"`     // Email do gestor, também login na API
	DataEntrada     time.Time  `json:"data_entrada"`     // Início da parceria
	DataSaida       *time.Time `json:"data_saida"`       // Fim da parceria, expira o acesso
	Status          bool       `json:"status"`           // Ativo/inativo
	SenhaDefinida   bool       `json:"senha_definida"`   // Senha já definida na API
	DataAtualizacao time.Time  `json:"data_atualizacao"` // Última alteração
}

// Dados agrupa os campos editáveis do parceiro
type Dados struct {
	NomeAjustado   string
	Tipo           Tipo
	CNPJ           string
	NomeFantasia   string
	RazaoSocial    string
	Gestor         string
	TelefoneGestor string
	DataEntrada    time.Time
	DataSaida      *time.Time
}

// NewParceiro cria um novo parceiro ativo, ainda sem usuário na API
func NewParceiro(emailGestor string, dados Dados) (*Parceiro, error) {
	email := strings.TrimSpace(emailGestor)
	if email == "" {
		return nil, ErrEmptyEmailGestor
	}
	// só o endereço, sem nome de exibição
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}

	if err := dados.validate(); err != nil {
		return nil, err
	}

	p := &Parceiro{
		ID:          uuid.New().String(),
		EmailGestor: email,
		Status:      true,
	}
	p.apply(dados)

	return p, nil
}

// Update atualiza os dados do parceiro. O email do gestor não pode ser alterado.
func (p *Parceiro) Update(dados Dados) error {
	if err := dados.validate(); err != nil {
		return err
	}

	p.apply(dados)
	return nil
}

// SetAPIUserID registra o ID do usuário criado na API Embedded
func (p *Parceiro) SetAPIUserID(id string) {
	if id == "" {
		p.APIUserID = nil
	} else {
		p.APIUserID = &id
	}
	p.DataAtualizacao = time.Now()
}

// GetAPIUserID retorna o ID do usuário na API ou vazio
func (p *Parceiro) GetAPIUserID() string {
	if p.APIUserID == nil {
		return ""
	}
	return *p.APIUserID
}

// Activate ativa o parceiro
func (p *Parceiro) Activate() {
	p.Status = true
	p.DataAtualizacao = time.Now()
}

// Deactivate desativa o parceiro
func (p *Parceiro) Deactivate() {
	p.Status = false
	p.DataAtualizacao = time.Now()
}

// MarcarSenhaDefinida indica que a senha do usuário foi definida na API
func (p *Parceiro) MarcarSenhaDefinida() {
	p.SenhaDefinida = true
	p.DataAtualizacao = time.Now()
}

func (p *Parceiro) apply(dados Dados) {
	p.NomeAjustado = strings.TrimSpace(dados.NomeAjustado)
	p.Tipo = dados.Tipo
	p.CNPJ = strings.TrimSpace(dados.CNPJ)
	p.NomeFantasia = strings.TrimSpace(dados.NomeFantasia)
	p.RazaoSocial = strings.TrimSpace(dados.RazaoSocial)
	p.Gestor = strings.TrimSpace(dados.Gestor)
	p.TelefoneGestor = strings.TrimSpace(dados.TelefoneGestor)
	p.DataEntrada = truncateDate(dados.DataEntrada)
	if dados.DataSaida != nil {
		saida := truncateDate(*dados.DataSaida)
		p.DataSaida = &saida
	} else {
		p.DataSaida = nil
	}
	p.DataAtualizacao = time.Now()
}

func (d Dados) validate() error {
	if strings.TrimSpace(d.NomeAjustado) == "" {
		return ErrEmptyNomeAjustado
	}
	if strings.TrimSpace(d.NomeFantasia) == "" {
		return ErrEmptyNomeFantasia
	}
	if !d.Tipo.IsValid() {
		return ErrInvalidTipo
	}
	if d.DataEntrada.IsZero() {
		return ErrEmptyDataEntrada
	}
	return nil
}

// ParseDate converte uma data no formato AAAA-MM-DD
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseOptionalDate converte uma data opcional; vazio resulta em nil
func ParseOptionalDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := ParseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate formata uma data como AAAA-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
