package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/hugohenrick/parceiros-api/docs"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	log := logger.NewLogger()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Warn("Arquivo .env não encontrado", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, log)
	if err != nil {
		log.Error("Erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}

	// Iniciar o servidor
	if err := app.Start(ctx); err != nil {
		log.Error("Erro ao executar servidor", "error", err)
		os.Exit(1)
	}
}
