package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cricket-app/internal/config"
	"cricket-app/internal/logging"
	"cricket-app/internal/store"
	"cricket-app/internal/web"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	inLambda := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
	if !inLambda {
		_ = godotenv.Load(".env", ".env.local")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.NewJSON(logging.LevelError).Error("load config", "error", err)
		return 1
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	appStore, err := openStore(context.Background(), cfg)
	if err != nil {
		logger.Error("open store", "driver", cfg.DBDriver, "error", err)
		return 1
	}
	defer func() {
		if err := appStore.Close(); err != nil {
			logger.Error("close store", "error", err)
		}
	}()

	server := web.NewServer(appStore, logger, web.Options{StrictPayloads: cfg.StrictPayloads})
	handler := server.Routes()

	if inLambda {
		logger.Info("starting in lambda mode", "driver", cfg.DBDriver)
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return 0
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serveErr:
		if ok {
			logger.Error("http server failed", "error", err)
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		return 1
	}

	logger.Info("http server stopped")
	return 0
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return store.NewPostgresStore(ctx, cfg.PostgresDSN)
	case config.DriverMemory:
		return store.NewMemoryStore(), nil
	default:
		return store.NewSQLiteStore(ctx, cfg.DBPath)
	}
}
