package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hugohenrick/parceiros-api/internal/adapter/repository"
	"github.com/hugohenrick/parceiros-api/internal/infrastructure/database"
	"github.com/hugohenrick/parceiros-api/internal/service"
	"github.com/hugohenrick/parceiros-api/internal/service/jobs"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.NewLogger()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Warn("Arquivo .env não encontrado", "error", err)
	}

	app := &cli.App{
		Name:  "parceiros-migration",
		Usage: "gerencia o schema do banco de parceiros",
		Commands: []*cli.Command{
			commandUp(log),
			commandDown(log),
			commandVersion(),
			commandExpirando(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("Erro ao executar comando", "error", err)
		os.Exit(1)
	}
}

func dbURL() string {
	return database.NewPostgresConfigFromEnv().URL()
}

func commandUp(log logger.Logger) *cli.Command {
	return &cli.Command{
		Name:  "up",
		Usage: "aplica as migrações pendentes",
		Action: func(c *cli.Context) error {
			if err := database.RunMigrations(dbURL()); err != nil {
				return err
			}
			log.Info("Migrações executadas com sucesso")
			return nil
		},
	}
}

func commandDown(log logger.Logger) *cli.Command {
	return &cli.Command{
		Name:  "down",
		Usage: "reverte as últimas migrações",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "steps",
				Value: 1,
				Usage: "quantidade de migrações a reverter",
			},
		},
		Action: func(c *cli.Context) error {
			steps := c.Int("steps")
			if err := database.RollbackMigrations(dbURL(), steps); err != nil {
				return err
			}
			log.Info("Migrações revertidas", "steps", steps)
			return nil
		},
	}
}

func commandVersion() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "mostra a versão atual do schema",
		Action: func(c *cli.Context) error {
			version, dirty, err := database.MigrationVersion(dbURL())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "versão: %d dirty: %t\n", version, dirty)
			return nil
		},
	}
}

func commandExpirando(log logger.Logger) *cli.Command {
	return &cli.Command{
		Name:  "expirando",
		Usage: "executa uma vez a verificação de parceiros perto de expirar",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := database.NewPostgresDB(ctx, database.NewPostgresConfigFromEnv())
			if err != nil {
				return err
			}
			defer db.Close()

			// consulta apenas o banco local, sem provisionamento
			svc := service.NewParceiroService(repository.NewParceiroRepository(db), nil, log)
			parceiros, err := jobs.NewExpiracaoJob(svc, log).Run(ctx)
			if err != nil {
				return err
			}

			for _, p := range parceiros {
				fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", p.ID, p.NomeFantasia, p.EmailGestor)
			}
			return nil
		},
	}
}
