// Package templatehub собирает приложение сервиса шаблонов документов:
// хранилище, миграции, кэш, сервисы и HTTP-сервер.
package templatehub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/template-hub/internal/cache"
	"github.com/magabrotheeeer/template-hub/internal/config"
	"github.com/magabrotheeeer/template-hub/internal/migrations"
	catalogservice "github.com/magabrotheeeer/template-hub/internal/services/catalog"
	documentservice "github.com/magabrotheeeer/template-hub/internal/services/document"
	purchaseservice "github.com/magabrotheeeer/template-hub/internal/services/purchase"
	userservice "github.com/magabrotheeeer/template-hub/internal/services/user"
	"github.com/magabrotheeeer/template-hub/internal/storage/repository"
)

// App хранит запущенный HTTP-сервер и его зависимости.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	storage *repository.Storage
}

// New подключает хранилище, применяет миграции, поднимает кэш
// и собирает HTTP-сервер со всеми маршрутами.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	storage, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(storage.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(storage); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	userService := userservice.New(storage, logger)
	catalogService := catalogservice.New(storage, cacheRedis, logger)
	documentService := documentservice.New(storage, logger)
	purchaseService := purchaseservice.New(storage, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, userService, catalogService, documentService, purchaseService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		storage: storage,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста
// с пятнадцатисекундным тайм-аутом на завершение активных запросов.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.storage.DB.Close()
		return err
	}
}
