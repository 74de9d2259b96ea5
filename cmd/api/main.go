package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hospital-role-service/internal/api/http"
	"github.com/spec-kit/hospital-role-service/internal/api/http/handlers"
	"github.com/spec-kit/hospital-role-service/internal/auth"
	"github.com/spec-kit/hospital-role-service/internal/config"
	"github.com/spec-kit/hospital-role-service/internal/events"
	"github.com/spec-kit/hospital-role-service/internal/observability"
	"github.com/spec-kit/hospital-role-service/internal/persistence"
	"github.com/spec-kit/hospital-role-service/internal/repository"
	"github.com/spec-kit/hospital-role-service/internal/service"
	"github.com/spec-kit/hospital-role-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting service",
		zap.String("name", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	employeeRepo := repository.NewEmployeeRepository(pool)
	auditRepo := repository.NewEvaluationAuditRepository(pool)

	employeeService := service.NewEmployeeService(employeeRepo, cfg.Auth.BcryptCost, logger)
	if pool != nil {
		if err := employeeService.EnsureFounder(ctx, cfg.Auth.BootstrapEmail, cfg.Auth.BootstrapPassword); err != nil {
			logger.Fatal("failed to provision founder account", zap.Error(err))
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, auditRepo, logger)

	revocations := service.NewRevocationStore(redis.Handle())
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		EmployeeRepo: employeeRepo,
		Revocations:  revocations,
		Dispatcher:   dispatcher,
	})
	directoryService := service.NewDirectoryService(employeeRepo, redis.Handle(), cfg.Cache.EmployeeTTL(), logger)
	evaluationService := service.NewEvaluationService(directoryService, dispatcher)
	menuService := service.NewMenuService()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), employeeRepo, revocations)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Employees:      handlers.NewEmployeesHandler(directoryService, employeeService, evaluationService),
		Hierarchy:      handlers.NewHierarchyHandler(evaluationService, auditRepo),
		Menu:           handlers.NewMenuHandler(menuService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
