package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
)

// ParceiroService coordena o cadastro local com o usuário na API Embedded.
// O registro local só muda depois que a API confirmou a operação.
type ParceiroService struct {
	repo        parceiro.Repository
	provisioner *Provisioner
	logger      logger.Logger
	now         func() time.Time
}

// NewParceiroService cria um novo serviço de parceiros
func NewParceiroService(repo parceiro.Repository, provisioner *Provisioner, log logger.Logger) *ParceiroService {
	return &ParceiroService{
		repo:        repo,
		provisioner: provisioner,
		logger:      log,
		now:         time.Now,
	}
}

// Create valida os dados, provisiona o usuário na API e salva o parceiro
func (s *ParceiroService) Create(ctx context.Context, emailGestor string, dados parceiro.Dados) (*parceiro.Parceiro, error) {
	p, err := parceiro.NewParceiro(emailGestor, dados)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, p.EmailGestor)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar email do gestor: %w", err)
	}
	if exists {
		return nil, parceiro.ErrDuplicateEmail
	}

	remoteID, err := s.provisioner.Provision(ctx, UserFieldsFrom(p))
	if err != nil {
		return nil, err
	}
	p.SetAPIUserID(remoteID)

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("Erro ao salvar parceiro, revertendo usuário na API", "email", p.EmailGestor, "error", err)
		if rerr := s.provisioner.Revert(ctx, p.EmailGestor); rerr != nil {
			s.logger.Error("Usuário permanece na API sem registro local", "email", p.EmailGestor, "api_user_id", remoteID)
		}
		return nil, fmt.Errorf("erro ao salvar parceiro: %w", err)
	}

	s.logger.Info("Parceiro criado", "id", p.ID, "email", p.EmailGestor, "api_user_id", remoteID)
	return p, nil
}

// Get busca um parceiro pelo ID, ativo ou não
func (s *ParceiroService) Get(ctx context.Context, id string) (*parceiro.Parceiro, error) {
	return s.repo.FindByID(ctx, id)
}

// List lista os parceiros do filtro e o total sem paginação
func (s *ParceiroService) List(ctx context.Context, filter parceiro.Filter) ([]*parceiro.Parceiro, int, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar parceiros: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar parceiros: %w", err)
	}

	return items, total, nil
}

// ListExpiring lista os parceiros ativos cuja data de saída cai nos próximos dias
func (s *ParceiroService) ListExpiring(ctx context.Context, dias int) ([]*parceiro.Parceiro, error) {
	if dias < 0 {
		dias = 0
	}

	y, m, d := s.now().Date()
	hoje := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	limite := hoje.AddDate(0, 0, dias)
	ativo := true

	items, err := s.repo.List(ctx, parceiro.Filter{
		Status:              &ativo,
		SaidaDe:             &hoje,
		SaidaAte:            &limite,
		OrdenarPorExpiracao: true,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar parceiros expirando: %w", err)
	}
	return items, nil
}

// Update atualiza o usuário na API e, se der certo, o registro local
func (s *ParceiroService) Update(ctx context.Context, id string, dados parceiro.Dados) (*parceiro.Parceiro, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if err := updated.Update(dados); err != nil {
		return nil, err
	}

	if err := s.provisioner.Update(ctx, updated.GetAPIUserID(), UserFieldsFrom(&updated)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("erro ao atualizar parceiro: %w", err)
	}

	s.logger.Info("Parceiro atualizado", "id", id)
	return &updated, nil
}

// Delete remove o usuário da API e depois o registro local
func (s *ParceiroService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.provisioner.Delete(ctx, p.EmailGestor); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("erro ao excluir parceiro: %w", err)
	}

	s.logger.Info("Parceiro excluído", "id", id, "email", p.EmailGestor)
	return nil
}

// SetStatus ativa ou desativa o parceiro sem alterar o usuário na API
func (s *ParceiroService) SetStatus(ctx context.Context, id string, status bool) (*parceiro.Parceiro, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("erro ao alterar status do parceiro: %w", err)
	}

	if status {
		p.Activate()
	} else {
		p.Deactivate()
	}
	return p, nil
}

// ChangePassword define a senha do usuário na API e marca a senha como definida
func (s *ParceiroService) ChangePassword(ctx context.Context, id, senha string) (*parceiro.Parceiro, error) {
	if strings.TrimSpace(senha) == "" {
		return nil, parceiro.ErrEmptySenha
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.provisioner.ChangePassword(ctx, p.EmailGestor, senha); err != nil {
		return nil, err
	}

	if err := s.repo.MarkSenhaDefinida(ctx, id); err != nil {
		return nil, fmt.Errorf("erro ao marcar senha definida: %w", err)
	}

	p.MarcarSenhaDefinida()
	return p, nil
}
