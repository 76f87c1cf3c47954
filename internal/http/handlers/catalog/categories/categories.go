// Package categories реализует HTTP-обработчик списка категорий шаблонов.
package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/template-hub/internal/http/response"
	"github.com/magabrotheeeer/template-hub/internal/lib/sl"
	"github.com/magabrotheeeer/template-hub/internal/models"
)

// Handler управляет HTTP-запросами на получение категорий каталога.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики получения категорий.
type Service interface {
	Categories(ctx context.Context) ([]*models.TemplateCategory, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить категории шаблонов
// @Description Возвращает все категории каталога, отсортированные по порядку отображения.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} response.Response "Список категорий"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении категорий"
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.categories"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	categories, err := h.service.Categories(r.Context())
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list categories"))
		return
	}

	log.Info("categories listed", slog.Int("count", len(categories)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":      len(categories),
		"categories": categories,
	}))
}
