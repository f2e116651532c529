package embedded

import (
	"strings"
	"time"
)

// RoleViewer é o papel de visualizador (1: administrador, 2: contribuidor, 3: visualizador)
const RoleViewer = 3

const (
	dateLayout       = "2006-01-02"
	expirationLayout = "2006-01-02T00:00:00Z"
)

// UserFields são os dados do parceiro usados para montar o usuário da API
type UserFields struct {
	Email        string
	NomeFantasia string
	Tipo         string
	DataSaida    string // AAAA-MM-DD, opcional
}

// Payload é o corpo enviado para criar ou atualizar um usuário
type Payload struct {
	ID                             string  `json:"id,omitempty"`
	Name                           string  `json:"name"`
	Email                          string  `json:"email"`
	Role                           int     `json:"role"`
	Department                     string  `json:"department"`
	ExpirationDate                 *string `json:"expirationDate"`
	ReportLandingPage              *string `json:"reportLandingPage"`
	WindowsAdUser                  *string `json:"windowsAdUser"`
	BypassFirewall                 bool    `json:"bypassFirewall"`
	CanEditReport                  bool    `json:"canEditReport"`
	CanCreateReport                bool    `json:"canCreateReport"`
	CanOverwriteReport             bool    `json:"canOverwriteReport"`
	CanRefreshDataset              bool    `json:"canRefreshDataset"`
	CanCreateSubscription          bool    `json:"canCreateSubscription"`
	CanDownloadPbix                bool    `json:"canDownloadPbix"`
	CanExportReportWithHiddenPages bool    `json:"canExportReportWithHiddenPages"`
	CanCreateNewUsers              bool    `json:"canCreateNewUsers"`
	CanStartCapacityByDemand       bool    `json:"canStartCapacityByDemand"`
	CanDisplayVisualHeaders        bool    `json:"canDisplayVisualHeaders"`
	CanExportReportOtherPages      bool    `json:"canExportReportOtherPages"`
	AccessReportAnyTime            bool    `json:"accessReportAnyTime"`
	SendWelcomeEmail               bool    `json:"sendWelcomeEmail"`
}

// BuildPayload monta o payload da API a partir dos dados do parceiro.
// Com existingID preenchido o payload atualiza o usuário em vez de criar.
func BuildPayload(fields UserFields, existingID string) (Payload, error) {
	var expiration *string
	if saida := strings.TrimSpace(fields.DataSaida); saida != "" {
		iso, err := ToExpirationDate(saida)
		if err != nil {
			return Payload{}, err
		}
		expiration = &iso
	}

	email := strings.TrimSpace(fields.Email)
	if email == "" {
		return Payload{}, validationError("O campo 'E-mail Gestor' é obrigatório para a API.")
	}
	name := strings.TrimSpace(fields.NomeFantasia)
	if name == "" {
		return Payload{}, validationError("O campo 'Nome Fantasia' é obrigatório para a API.")
	}

	return Payload{
		ID:                      existingID,
		Name:                    name,
		Email:                   email,
		Role:                    RoleViewer,
		Department:              fields.Tipo,
		ExpirationDate:          expiration,
		CanDisplayVisualHeaders: true,
		AccessReportAnyTime:     true,
		SendWelcomeEmail:        true,
	}, nil
}

// ToExpirationDate converte AAAA-MM-DD para o timestamp ISO-8601 à meia-noite UTC
func ToExpirationDate(date string) (string, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", validationError("Formato de data inválido. Use AAAA-MM-DD. Valor recebido: " + date)
	}
	return t.Format(expirationLayout), nil
}
