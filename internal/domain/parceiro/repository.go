package parceiro

import (
	"context"
	"time"
)

// Filter define os critérios de listagem de parceiros
type Filter struct {
	Tipo                Tipo
	Status              *bool // nil lista apenas ativos
	SenhaDefinida       *bool
	EntradaDe           *time.Time
	EntradaAte          *time.Time
	SaidaDe             *time.Time
	SaidaAte            *time.Time
	Nome                string // trecho de nome fantasia, nome ajustado ou razão social
	Busca               string // trecho de email do gestor ou CNPJ
	OrdenarPorExpiracao bool
	Limit               int
	Offset              int
}

// StatusOrDefault retorna o status filtrado, ativo por padrão
func (f Filter) StatusOrDefault() bool {
	if f.Status == nil {
		return true
	}
	return *f.Status
}

// Repository define a interface para operações de repositório de parceiros
type Repository interface {
	// Create insere um novo parceiro
	Create(ctx context.Context, p *Parceiro) error

	// FindByID busca um parceiro pelo ID
	FindByID(ctx context.Context, id string) (*Parceiro, error)

	// ExistsByEmail verifica se já existe parceiro com o email do gestor
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List lista os parceiros que atendem ao filtro
	List(ctx context.Context, filter Filter) ([]*Parceiro, error)

	// Count conta os parceiros que atendem ao filtro, ignorando paginação
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um parceiro existente
	Update(ctx context.Context, p *Parceiro) error

	// Delete remove um parceiro
	Delete(ctx context.Context, id string) error

	// UpdateStatus ativa ou desativa um parceiro
	UpdateStatus(ctx context.Context, id string, status bool) error

	// MarkSenhaDefinida marca que a senha do parceiro foi definida na API
	MarkSenhaDefinida(ctx context.Context, id string) error
}
