package jobs

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/hugohenrick/parceiros-api/pkg/metrics"
	"github.com/robfig/cron/v3"
)

const (
	DefaultExpiracaoSchedule = "0 8 * * *"
	DefaultExpiracaoDias     = 30

	runTimeout = time.Minute
)

// ExpiringLister lista parceiros ativos com data de saída próxima
type ExpiringLister interface {
	ListExpiring(ctx context.Context, dias int) ([]*parceiro.Parceiro, error)
}

// ExpiracaoJob verifica periodicamente os parceiros perto de perder o acesso
type ExpiracaoJob struct {
	lister   ExpiringLister
	logger   logger.Logger
	schedule string
	dias     int
}

// NewExpiracaoJob cria o job com a agenda e a janela lidas de EXPIRACAO_CRON e EXPIRACAO_DIAS
func NewExpiracaoJob(lister ExpiringLister, log logger.Logger) *ExpiracaoJob {
	schedule := os.Getenv("EXPIRACAO_CRON")
	if schedule == "" {
		schedule = DefaultExpiracaoSchedule
	}

	dias := DefaultExpiracaoDias
	if v, err := strconv.Atoi(os.Getenv("EXPIRACAO_DIAS")); err == nil && v >= 0 {
		dias = v
	}

	return &ExpiracaoJob{
		lister:   lister,
		logger:   log,
		schedule: schedule,
		dias:     dias,
	}
}

// Start agenda o job no runner
func (j *ExpiracaoJob) Start(runner *cron.Cron) error {
	if _, err := runner.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		_, _ = j.Run(ctx)
	}); err != nil {
		return fmt.Errorf("erro ao agendar verificação de expiração (%s): %w", j.schedule, err)
	}

	j.logger.Info("Verificação de expiração agendada", "cron", j.schedule, "dias", j.dias)
	return nil
}

// Run executa uma verificação e devolve os parceiros encontrados
func (j *ExpiracaoJob) Run(ctx context.Context) ([]*parceiro.Parceiro, error) {
	parceiros, err := j.lister.ListExpiring(ctx, j.dias)
	if err != nil {
		j.logger.Error("Erro ao verificar parceiros expirando", "error", err)
		return nil, err
	}

	metrics.SetParceirosExpirando(len(parceiros))

	for _, p := range parceiros {
		var saida string
		if p.DataSaida != nil {
			saida = parceiro.FormatDate(*p.DataSaida)
		}
		j.logger.Warn("Parceiro perto de expirar",
			"id", p.ID,
			"nome_fantasia", p.NomeFantasia,
			"email_gestor", p.EmailGestor,
			"data_saida", saida,
		)
	}
	j.logger.Info("Verificação de expiração concluída", "total", len(parceiros), "dias", j.dias)

	return parceiros, nil
}
