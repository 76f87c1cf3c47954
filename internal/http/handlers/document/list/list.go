// Package list реализует HTTP-обработчик списка документов пользователя.
//
// Handler читает идентификатор пользователя, необязательные фильтры по статусу
// и избранности, а также параметры пагинации из строки запроса, и возвращает
// страницу документов в JSON-формате.
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

// Handler управляет HTTP-запросами на получение документов пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики документов
}

// Service описывает интерфейс бизнес-логики получения документов.
type Service interface {
	List(ctx context.Context, userID int, status *string, isFavorite *bool, limit, offset int) ([]*models.UserDocument, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить документы пользователя
// @Description Возвращает страницу документов пользователя с необязательными фильтрами по статусу и избранности.
// @Tags Documents
// @Produce  json
// @Param user_id query int true "ID пользователя"
// @Param status query string false "Фильтр по статусу (draft, completed, trashed)"
// @Param is_favorite query bool false "Фильтр по избранности"
// @Param limit query int false "Размер страницы (по умолчанию 50)"
// @Param offset query int false "Смещение от начала списка"
// @Success 200 {object} response.Response "Список документов"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры запроса"
// @Failure 422 {object} response.ErrorResponse "Недопустимое значение статуса"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении документов"
// @Router /documents [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.document.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil {
		log.Error("failed to decode user_id from query", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode user_id from query"))
		return
	}

	var status *string
	if raw := r.URL.Query().Get("status"); raw != "" {
		switch raw {
		case models.DocumentStatusDraft, models.DocumentStatusCompleted, models.DocumentStatusTrashed:
			status = &raw
		default:
			log.Error("unknown document status", slog.String("status", raw))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("unknown document status"))
			return
		}
	}

	var isFavorite *bool
	if raw := r.URL.Query().Get("is_favorite"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			log.Error("failed to decode is_favorite from query", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode is_favorite from query"))
			return
		}
		isFavorite = &parsed
	}

	limit, offset, err := paginationParams(r)
	if err != nil {
		log.Error("failed to decode pagination params", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode pagination params"))
		return
	}

	documents, err := h.service.List(r.Context(), userID, status, isFavorite, limit, offset)
	if err != nil {
		log.Error("failed to list documents", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list documents"))
		return
	}

	log.Info("documents listed",
		slog.Int("user_id", userID),
		slog.Int("count", len(documents)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":     len(documents),
		"documents": documents,
	}))
}

// paginationParams читает необязательные limit и offset из строки запроса.
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
