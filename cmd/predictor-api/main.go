package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/Predictor/internal/api"
	"github.com/shaiso/Predictor/internal/repo"
	"github.com/shaiso/Predictor/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting predictor-api", "version", version)

	// Выбираем хранилище: Postgres при заданном DB_URL,
	// иначе демонстрационное хранилище в памяти.
	var store api.PredictionStore
	if os.Getenv("DB_URL") != "" {
		pool, err := repo.NewPool(context.Background())
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("connected to database")

		store = repo.NewPredictionRepo(pool)
	} else {
		logger.Info("DB_URL not set, using in-memory store")
		store = repo.NewMemoryStore()
	}

	// Создаём API handler
	handler := api.NewHandler(api.Config{
		Store:   store,
		Logger:  logger,
		Version: version,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	// /metrics занят JSON-метриками протокола, Prometheus — отдельно.
	mux.Handle("GET /metrics/prometheus", promhttp.Handler())

	addr := ":8080"
	if v := os.Getenv("API_PORT"); v != "" {
		addr = ":" + v
	}

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
