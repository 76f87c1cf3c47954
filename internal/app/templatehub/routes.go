// Package templatehub предоставляет маршруты для основного приложения.
package templatehub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	catalogcategories "github.com/magabrotheeeer/template-hub/internal/http/handlers/catalog/categories"
	cataloglist "github.com/magabrotheeeer/template-hub/internal/http/handlers/catalog/list"
	catalogread "github.com/magabrotheeeer/template-hub/internal/http/handlers/catalog/read"
	documentcreate "github.com/magabrotheeeer/template-hub/internal/http/handlers/document/create"
	documentlist "github.com/magabrotheeeer/template-hub/internal/http/handlers/document/list"
	documentupdate "github.com/magabrotheeeer/template-hub/internal/http/handlers/document/update"
	"github.com/magabrotheeeer/template-hub/internal/http/handlers/health"
	purchasecreate "github.com/magabrotheeeer/template-hub/internal/http/handlers/purchase/create"
	usercreate "github.com/magabrotheeeer/template-hub/internal/http/handlers/user/create"
	userupdate "github.com/magabrotheeeer/template-hub/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/template-hub/internal/http/middlewarectx"
	catalogservice "github.com/magabrotheeeer/template-hub/internal/services/catalog"
	documentservice "github.com/magabrotheeeer/template-hub/internal/services/document"
	purchaseservice "github.com/magabrotheeeer/template-hub/internal/services/purchase"
	userservice "github.com/magabrotheeeer/template-hub/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	userService *userservice.Service,
	catalogService *catalogservice.Service,
	documentService *documentservice.Service,
	purchaseService *purchaseservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Get("/health", health.New(logger).ServeHTTP)

		r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
		r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)

		r.Get("/categories", catalogcategories.New(logger, catalogService).ServeHTTP)
		r.Get("/templates", cataloglist.New(logger, catalogService).ServeHTTP)
		r.Get("/templates/{id}", catalogread.New(logger, catalogService).ServeHTTP)

		r.Post("/documents", documentcreate.New(logger, documentService).ServeHTTP)
		r.Get("/documents", documentlist.New(logger, documentService).ServeHTTP)
		r.Put("/documents/{id}", documentupdate.New(logger, documentService).ServeHTTP)

		r.Post("/purchases", purchasecreate.New(logger, purchaseService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
