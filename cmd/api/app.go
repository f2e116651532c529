package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/controller"
	"github.com/hugohenrick/parceiros-api/internal/adapter/api/route"
	"github.com/hugohenrick/parceiros-api/internal/adapter/repository"
	"github.com/hugohenrick/parceiros-api/internal/infrastructure/database"
	"github.com/hugohenrick/parceiros-api/internal/infrastructure/embedded"
	"github.com/hugohenrick/parceiros-api/internal/service"
	"github.com/hugohenrick/parceiros-api/internal/service/jobs"
	"github.com/hugohenrick/parceiros-api/pkg/logger"
	"github.com/hugohenrick/parceiros-api/pkg/metrics"
	"github.com/hugohenrick/parceiros-api/pkg/middleware"
	"github.com/hugohenrick/parceiros-api/pkg/validators"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

const basePath = "/api/v1"

// App representa a aplicação e suas dependências
type App struct {
	logger             logger.Logger
	router             *gin.Engine
	server             *http.Server
	db                 *pgxpool.Pool
	cron               *cron.Cron
	parceiroController *controller.ParceiroController
	authController     *controller.AuthController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(ctx context.Context, log logger.Logger) (*App, error) {
	if err := validators.RegisterBindings(); err != nil {
		return nil, fmt.Errorf("erro ao registrar validações: %w", err)
	}

	// Configurar banco de dados
	dbConfig := database.NewPostgresConfigFromEnv()
	if getEnv("AUTO_MIGRATE", "true") == "true" {
		if err := database.RunMigrations(dbConfig.URL()); err != nil {
			return nil, err
		}
	}

	db, err := database.NewPostgresDB(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	// Cliente da API Embedded
	client, err := embedded.NewClient(embedded.NewConfigFromEnv(), log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao configurar API Embedded: %w", err)
	}

	// Criar repositórios e serviços
	parceiroRepo := repository.NewParceiroRepository(db)
	provisioner := service.NewProvisioner(client, log)
	parceiroService := service.NewParceiroService(parceiroRepo, provisioner, log)

	// Agendar verificação de expiração
	runner := cron.New()
	if err := jobs.NewExpiracaoJob(parceiroService, log).Start(runner); err != nil {
		db.Close()
		return nil, err
	}

	app := &App{
		logger:             log,
		db:                 db,
		cron:               runner,
		parceiroController: controller.NewParceiroController(parceiroService, log),
		authController:     controller.NewAuthController(controller.NewAdminCredentialsFromEnv(), log),
	}
	app.router = app.setupRouter()

	return app, nil
}

func (a *App) setupRouter() *gin.Engine {
	if getEnv("GIN_MODE", "") == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	rps, err := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	if err != nil || rps <= 0 {
		rps = 10
	}
	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	if err != nil {
		burst = 20
	}

	route.SetupSystemRoutes(router, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return a.db.Ping(ctx)
	})

	api := router.Group(basePath)
	api.Use(middleware.NewRateLimiter(rps, burst).Middleware())
	route.SetupAuthRoutes(api, a.authController)
	route.RegisterParceiroRoutes(api, a.parceiroController)

	return router
}

// Start inicia o servidor HTTP e o agendador, bloqueando até ctx ser cancelado
func (a *App) Start(ctx context.Context) error {
	a.server = &http.Server{
		Addr:              ":" + getEnv("PORT", "8080"),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.cron.Start()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("erro ao iniciar servidor: %w", err)
		}
	case <-ctx.Done():
	}

	return a.Shutdown()
}

// Shutdown encerra o servidor, aguarda os jobs em andamento e fecha o banco
func (a *App) Shutdown() error {
	a.logger.Info("Encerrando aplicação")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	if a.server != nil {
		err = a.server.Shutdown(ctx)
	}

	<-a.cron.Stop().Done()
	a.db.Close()

	return err
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
