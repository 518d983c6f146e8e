// Package main запускает HTTP-сервис записи учеников в школьные кружки
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activities-service/internal/auth"
	"activities-service/internal/config"
	httpapi "activities-service/internal/http"
	"activities-service/internal/repository"
	"activities-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 1. Учётные данные учителей
	creds, err := repository.LoadTeachers(cfg.TeachersFile)
	if err != nil {
		log.Fatalf("failed to load teachers: %v", err)
	}
	if creds.Len() == 0 {
		logger.Warn("no teacher credentials loaded, nobody can log in", slog.String("file", cfg.TeachersFile))
	} else {
		logger.Info("teacher credentials loaded", slog.Int("count", creds.Len()))
	}

	// 2. Реестр кружков
	activities, closeRegistry, err := newActivityRepository(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to init activity registry: %v", err)
	}
	defer closeRegistry()

	// 3. Токены и сервисы
	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("failed to init token service: %v", err)
	}
	authService := service.NewAuthService(creds, tokens, cfg.TokenTTL)
	activityService := service.NewActivityService(activities)

	// 4. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(authService, activityService, logger)
	handler.StaticDir = cfg.StaticDir
	handler.AllowedOrigins = cfg.AllowedOrigins

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}

// newActivityRepository выбирает хранилище реестра: PostgreSQL при заданном DB_DSN, иначе память.
func newActivityRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (service.ActivityRepository, func(), error) {
	seed := repository.SeedActivities()

	if !cfg.UsePostgres() {
		repo, err := repository.NewMemoryActivityRepo(seed)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using in-memory activity registry", slog.Int("activities", len(seed)))
		return repo, func() {}, nil
	}

	db, err := repository.NewPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Pool.Close()
		return nil, nil, err
	}
	if err := db.Seed(ctx, seed); err != nil {
		db.Pool.Close()
		return nil, nil, err
	}

	txManager := repository.NewTransactionManager(db)
	logger.Info("using postgres activity registry")
	return repository.NewActivityRepo(db, txManager), db.Pool.Close, nil
}
