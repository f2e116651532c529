package jobs

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/hugohenrick/parceiros-api/internal/domain/parceiro"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/hugohenrick/parceiros-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	items []*parceiro.Parceiro
	err   error
	dias  int
}

func (f *fakeLister) ListExpiring(_ context.Context, dias int) ([]*parceiro.Parceiro, error) {
	f.dias = dias
	return f.items, f.err
}

func quiet() logger.Logger {
	return logger.New(io.Discard, "off")
}

func TestNewExpiracaoJobDefaults(t *testing.T) {
	t.Setenv("EXPIRACAO_CRON", "")
	t.Setenv("EXPIRACAO_DIAS", "abc")

	job := NewExpiracaoJob(&fakeLister{}, quiet())
	assert.Equal(t, DefaultExpiracaoSchedule, job.schedule)
	assert.Equal(t, DefaultExpiracaoDias, job.dias)
}

func TestNewExpiracaoJobFromEnv(t *testing.T) {
	t.Setenv("EXPIRACAO_CRON", "*/5 * * * *")
	t.Setenv("EXPIRACAO_DIAS", "7")

	job := NewExpiracaoJob(&fakeLister{}, quiet())
	assert.Equal(t, "*/5 * * * *", job.schedule)
	assert.Equal(t, 7, job.dias)
}

func TestRunUpdatesGauge(t *testing.T) {
	t.Setenv("EXPIRACAO_DIAS", "15")
	saida := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lister := &fakeLister{items: []*parceiro.Parceiro{
		{ID: "1", NomeFantasia: "Acme", DataSaida: &saida},
		{ID: "2", NomeFantasia: "Beta", DataSaida: &saida},
	}}

	job := NewExpiracaoJob(lister, quiet())
	items, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 15, lister.dias)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.ParceirosExpirando()))
}

func TestRunError(t *testing.T) {
	job := NewExpiracaoJob(&fakeLister{err: errors.New("banco fora")}, quiet())
	_, err := job.Run(context.Background())
	assert.Error(t, err)
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	t.Setenv("EXPIRACAO_CRON", "todo dia")
	job := NewExpiracaoJob(&fakeLister{}, quiet())

	assert.Error(t, job.Start(cron.New()))
}

func TestStartSchedules(t *testing.T) {
	t.Setenv("EXPIRACAO_CRON", "")
	runner := cron.New()
	job := NewExpiracaoJob(&fakeLister{}, quiet())

	require.NoError(t, job.Start(runner))
	assert.Len(t, runner.Entries(), 1)
}
