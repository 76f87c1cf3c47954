// Package create реализует HTTP-обработчик создания пользовательского документа.
//
// Handler принимает JSON-запрос с данными документа, валидирует их,
// вызывает бизнес-логику создания документа и возвращает созданную запись в JSON-формате.
// Ссылки на несуществующего пользователя или шаблон отклоняются с кодом 404.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/template-hub/internal/http/response"
	"github.com/magabrotheeeer/template-hub/internal/lib/sl"
	"github.com/magabrotheeeer/template-hub/internal/models"
	"github.com/magabrotheeeer/template-hub/internal/storage/repository"
)

// Handler управляет HTTP-запросами на создание документов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики документов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания документа.
type Service interface {
	Create(ctx context.Context, req models.CreateDocumentRequest) (*models.UserDocument, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать документ
// @Description Создает новый документ пользователя на основе шаблона. Возвращает созданную запись.
// @Tags Documents
// @Accept  json
// @Produce  json
// @Param request body models.CreateDocumentRequest true "Данные нового документа"
// @Success 200 {object} response.Response "Созданный документ"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пользователь или шаблон не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании документа"
// @Router /documents [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.document.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded",
		slog.Int("user_id", req.UserID),
		slog.Any("template_id", req.TemplateID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	doc, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("referenced entity not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to create document", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create document"))
		return
	}

	log.Info("document created", slog.Int("id", doc.ID))
	render.JSON(w, r, response.StatusOKWithData(doc))
}
