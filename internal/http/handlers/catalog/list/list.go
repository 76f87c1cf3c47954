// Package list реализует HTTP-обработчик списка шаблонов выбранной категории.
//
// Handler читает идентификатор категории и параметры пагинации из строки запроса,
// вызывает бизнес-логику каталога и возвращает страницу шаблонов в JSON-формате.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/template-hub/internal/http/response"
	"github.com/magabrotheeeer/template-hub/internal/lib/sl"
	"github.com/magabrotheeeer/template-hub/internal/models"
)

// Handler управляет HTTP-запросами на получение шаблонов категории.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики получения шаблонов.
type Service interface {
	TemplatesByCategory(ctx context.Context, categoryID, limit, offset int) ([]*models.Template, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить шаблоны категории
// @Description Возвращает страницу шаблонов выбранной категории с пагинацией.
// @Tags Catalog
// @Produce  json
// @Param category_id query int true "ID категории"
// @Param limit query int false "Размер страницы (по умолчанию 20)"
// @Param offset query int false "Смещение от начала списка"
// @Success 200 {object} response.Response "Список шаблонов"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры запроса"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении шаблонов"
// @Router /templates [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	categoryID, err := strconv.Atoi(r.URL.Query().Get("category_id"))
	if err != nil {
		log.Error("failed to decode category_id from query", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode category_id from query"))
		return
	}

	limit, offset, err := paginationParams(r)
	if err != nil {
		log.Error("failed to decode pagination params", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode pagination params"))
		return
	}

	templates, err := h.service.TemplatesByCategory(r.Context(), categoryID, limit, offset)
	if err != nil {
		log.Error("failed to list templates", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list templates"))
		return
	}

	log.Info("templates listed",
		slog.Int("category_id", categoryID),
		slog.Int("count", len(templates)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":     len(templates),
		"templates": templates,
	}))
}

// paginationParams читает необязательные limit и offset из строки запроса.
// Отсутствующие параметры возвращаются нулями, сервис подставит значения по умолчанию.
func paginationParams(r *http.Request) (limit, offset int, err error) {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	return limit, offset, nil
}
