package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/hugohenrick/parceiros-api/internal/infrastructure/embedded"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
)

// AccountClient define as chamadas de usuário da API Embedded usadas pelo provisionamento
type AccountClient interface {
	CreateAndFetchID(ctx context.Context, payload embedded.Payload) (string, error)
	LinkToGroup(ctx context.Context, email string) error
	Update(ctx context.Context, payload embedded.Payload) error
	Delete(ctx context.Context, email string) error
	DeleteForRollback(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, email, password string) error
}

// Stage identifica a etapa do provisionamento
type Stage string

const (
	StageStart          Stage = "start"
	StageCreating       Stage = "creating"
	StageCreated        Stage = "created"
	StageLinking        Stage = "linking"
	StageLinked         Stage = "linked"
	StageCreationFailed Stage = "creation_failed"
	StageLinkFailed     Stage = "link_failed"
	StageRollingBack    Stage = "rolling_back"
	StageRolledBack     Stage = "rolled_back"
)

// ProvisioningError é o erro de um provisionamento que não chegou ao fim
type ProvisioningError struct {
	Stage       Stage
	Err         error
	RolledBack  bool
	RollbackErr error
}

func (e *ProvisioningError) Error() string {
	if e.Stage == StageCreationFailed {
		return e.Err.Error()
	}
	if e.RolledBack {
		return fmt.Sprintf("Erro ao vincular usuário ao grupo: %s. O cadastro do usuário foi revertido.", e.Err)
	}
	return fmt.Sprintf("Erro ao vincular usuário ao grupo: %s. A reversão do cadastro falhou: %s", e.Err, e.RollbackErr)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// Provisioner cria, atualiza e remove o usuário do parceiro na API Embedded
type Provisioner struct {
	client AccountClient
	logger logger.Logger
}

// NewProvisioner cria um novo provisionador
func NewProvisioner(client AccountClient, log logger.Logger) *Provisioner {
	return &Provisioner{client: client, logger: log}
}

// Provision cria o usuário, obtém o ID e vincula ao grupo Parceiros.
// Se o vínculo falhar, o usuário criado é removido.
func (p *Provisioner) Provision(ctx context.Context, fields embedded.UserFields) (string, error) {
	p.logger.Info("Provisionando usuário", "email", fields.Email, "stage", StageStart)

	payload, err := embedded.BuildPayload(fields, "")
	if err != nil {
		return "", &ProvisioningError{Stage: StageCreationFailed, Err: err}
	}

	p.logger.Debug("Criando usuário", "email", fields.Email, "stage", StageCreating)
	remoteID, err := p.client.CreateAndFetchID(ctx, payload)
	if err != nil {
		p.logger.Error("Falha ao criar usuário na API", "email", fields.Email, "stage", StageCreationFailed, "error", err)
		if errors.Is(err, embedded.ErrInconsistentState) {
			p.logger.Warn("Usuário pode existir na API sem ID registrado", "email", fields.Email)
		}
		return "", &ProvisioningError{Stage: StageCreationFailed, Err: err}
	}
	p.logger.Debug("Usuário criado", "email", fields.Email, "api_user_id", remoteID, "stage", StageCreated)

	p.logger.Debug("Vinculando usuário ao grupo", "email", fields.Email, "stage", StageLinking)
	if err := p.client.LinkToGroup(ctx, payload.Email); err != nil {
		p.logger.Error("Falha ao vincular usuário ao grupo", "email", fields.Email, "stage", StageLinkFailed, "error", err)
		return "", p.rollback(ctx, payload.Email, err)
	}

	p.logger.Info("Usuário provisionado", "email", fields.Email, "api_user_id", remoteID, "stage", StageLinked)
	return remoteID, nil
}

func (p *Provisioner) rollback(ctx context.Context, email string, linkErr error) error {
	p.logger.Warn("Revertendo cadastro do usuário", "email", email, "stage", StageRollingBack)

	perr := &ProvisioningError{Stage: StageLinkFailed, Err: linkErr}
	if err := p.client.DeleteForRollback(ctx, email); err != nil {
		p.logger.Error("Falha ao reverter cadastro do usuário", "email", email, "error", err)
		perr.RollbackErr = err
		return perr
	}

	perr.RolledBack = true
	p.logger.Info("Cadastro do usuário revertido", "email", email, "stage", StageRolledBack)
	return perr
}

// Revert remove o usuário provisionado quando o registro local não pôde ser salvo
func (p *Provisioner) Revert(ctx context.Context, email string) error {
	if err := p.client.DeleteForRollback(ctx, email); err != nil {
		p.logger.Error("Falha ao reverter usuário após erro local", "email", email, "error", err)
		return err
	}
	return nil
}

// Update atualiza o usuário na API. Sem ID na API a chamada é ignorada.
func (p *Provisioner) Update(ctx context.Context, apiUserID string, fields embedded.UserFields) error {
	if apiUserID == "" {
		p.logger.Warn("Parceiro sem api_user_id, atualização na API ignorada", "email", fields.Email)
		return nil
	}

	payload, err := embedded.BuildPayload(fields, apiUserID)
	if err != nil {
		return err
	}

	if err := p.client.Update(ctx, payload); err != nil {
		p.logger.Error("Falha ao atualizar usuário na API", "api_user_id", apiUserID, "error", err)
		return err
	}
	return nil
}

// Delete remove o usuário da API. Sem email a chamada é ignorada.
func (p *Provisioner) Delete(ctx context.Context, email string) error {
	if email == "" {
		p.logger.Warn("Parceiro sem email, deleção na API ignorada")
		return nil
	}

	if err := p.client.Delete(ctx, email); err != nil {
		p.logger.Error("Falha ao deletar usuário na API", "email", email, "error", err)
		return err
	}
	return nil
}

// ChangePassword define a senha do usuário na API
func (p *Provisioner) ChangePassword(ctx context.Context, email, password string) error {
	if err := p.client.ChangePassword(ctx, email, password); err != nil {
		p.logger.Error("Falha ao alterar senha na API", "email", email, "error", err)
		return err
	}
	return nil
}

// UserFieldsFrom extrai do parceiro os campos enviados à API
func UserFieldsFrom(p *parceiro.Parceiro) embedded.UserFields {
	fields := embedded.UserFields{
		Email:        p.EmailGestor,
		NomeFantasia: p.NomeFantasia,
		Tipo:         string(p.Tipo),
	}
	if p.DataSaida != nil {
		fields.DataSaida = parceiro.FormatDate(*p.DataSaida)
	}
	return fields
}
