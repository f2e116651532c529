package dto

import (
	"time"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
)

// ParceiroUpdateRequest representa os campos editáveis do parceiro.
// O email do gestor não pode ser alterado.
type ParceiroUpdateRequest struct {
	NomeAjustado   string `json:"nome_ajustado" binding:"required"`
	Tipo           string `json:"tipo" binding:"required,tipoparceiro"`
	CNPJ           string `json:"cnpj"`
	NomeFantasia   string `json:"nome_fantasia" binding:"required"`
	RazaoSocial    string `json:"razao_social"`
	Gestor         string `json:"gestor"`
	TelefoneGestor string `json:"telefone_gestor"`
	DataEntrada    string `json:"data_entrada" binding:"required,data" example:"2024-01-10"`
	DataSaida      string `json:"data_saida" binding:"omitempty,data" example:"2025-12-31"`
}

// ParceiroCreateRequest representa a requisição de cadastro de parceiro
type ParceiroCreateRequest struct {
	EmailGestor string `json:"email_gestor" binding:"required,email"`
	ParceiroUpdateRequest
}

// StatusRequest representa a requisição de ativação/desativação
type StatusRequest struct {
	Status *bool `json:"status" binding:"required"`
}

// SenhaRequest representa a requisição de definição de senha
type SenhaRequest struct {
	Senha string `json:"senha" binding:"required,min=6"`
}

// ParceiroResponse representa a resposta de parceiro
type ParceiroResponse struct {
	ID              string  `json:"id"`
	APIUserID       *string `json:"api_user_id"`
	NomeAjustado    string  `json:"nome_ajustado"`
	Tipo            string  `json:"tipo"`
	CNPJ            string  `json:"cnpj"`
	NomeFantasia    string  `json:"nome_fantasia"`
	RazaoSocial     string  `json:"razao_social"`
	Gestor          string  `json:"gestor"`
	TelefoneGestor  string  `json:"telefone_gestor"`
	EmailGestor     string  `json:"email_gestor"`
	DataEntrada     string  `json:"data_entrada"`
	DataSaida       *string `json:"data_saida"`
	Status          bool    `json:"status"`
	SenhaDefinida   bool    `json:"senha_definida"`
	DataAtualizacao string  `json:"data_atualizacao"`
}

// ParceiroListResponse representa a resposta de lista de parceiros
type ParceiroListResponse struct {
	Items      []ParceiroResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToDados converte a requisição nos dados do domínio
func (r ParceiroUpdateRequest) ToDados() (parceiro.Dados, error) {
	entrada, err := parceiro.ParseDate(r.DataEntrada)
	if err != nil {
		return parceiro.Dados{}, err
	}

	saida, err := parceiro.ParseOptionalDate(r.DataSaida)
	if err != nil {
		return parceiro.Dados{}, err
	}

	return parceiro.Dados{
		NomeAjustado:   r.NomeAjustado,
		Tipo:           parceiro.Tipo(r.Tipo),
		CNPJ:           r.CNPJ,
		NomeFantasia:   r.NomeFantasia,
		RazaoSocial:    r.RazaoSocial,
		Gestor:         r.Gestor,
		TelefoneGestor: r.TelefoneGestor,
		DataEntrada:    entrada,
		DataSaida:      saida,
	}, nil
}

// ToParceiroResponse converte um parceiro do domínio para DTO
func ToParceiroResponse(p *parceiro.Parceiro) *ParceiroResponse {
	var saida *string
	if p.DataSaida != nil {
		s := parceiro.FormatDate(*p.DataSaida)
		saida = &s
	}

	return &ParceiroResponse{
		ID:              p.ID,
		APIUserID:       p.APIUserID,
		NomeAjustado:    p.NomeAjustado,
		Tipo:            string(p.Tipo),
		CNPJ:            p.CNPJ,
		NomeFantasia:    p.NomeFantasia,
		RazaoSocial:     p.RazaoSocial,
		Gestor:          p.Gestor,
		TelefoneGestor:  p.TelefoneGestor,
		EmailGestor:     p.EmailGestor,
		DataEntrada:     parceiro.FormatDate(p.DataEntrada),
		DataSaida:       saida,
		Status:          p.Status,
		SenhaDefinida:   p.SenhaDefinida,
		DataAtualizacao: p.DataAtualizacao.Format(time.RFC3339),
	}
}

// ToParceiroListResponse converte uma lista de parceiros do domínio para DTO
func ToParceiroListResponse(parceiros []*parceiro.Parceiro, total, page, size int) *ParceiroListResponse {
	items := make([]ParceiroResponse, len(parceiros))
	for i, p := range parceiros {
		items[i] = *ToParceiroResponse(p)
	}

	return &ParceiroListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
