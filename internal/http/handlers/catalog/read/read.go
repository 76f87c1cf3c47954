// Package read реализует HTTP-обработчик чтения одного шаблона каталога.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/template-hub/internal/http/response"
	"github.com/magabrotheeeer/template-hub/internal/lib/sl"
	"github.com/magabrotheeeer/template-hub/internal/models"
	"github.com/magabrotheeeer/template-hub/internal/storage/repository"
)

// Handler управляет HTTP-запросами на чтение шаблона по идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики каталога
}

// Service описывает интерфейс бизнес-логики чтения шаблона.
type Service interface {
	TemplateByID(ctx context.Context, id int) (*models.Template, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить шаблон по ID
// @Description Возвращает один шаблон каталога вместе с его структурой данных.
// @Tags Catalog
// @Produce  json
// @Param id path int true "ID шаблона"
// @Success 200 {object} response.Response "Шаблон каталога"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Шаблон не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении шаблона"
// @Router /templates/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	template, err := h.service.TemplateByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("template not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("template not found"))
			return
		}
		log.Error("failed to read template", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read template"))
		return
	}

	log.Info("template read", slog.Int("id", template.ID))
	render.JSON(w, r, response.StatusOKWithData(template))
}
