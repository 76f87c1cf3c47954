// Package document содержит бизнес-логику управления документами пользователей:
// создание по шаблону или из загруженного файла, выборку с фильтрами
// и частичное обновление, включая перемещение в корзину.
package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/template-hub/internal/models"
	"github.com/magabrotheeeer/template-hub/internal/storage/repository"
)

// Значение пагинации по умолчанию для списка документов.
const DefaultLimit = 50

// Repository определяет методы для работы с документами в хранилище.
type Repository interface {
	// UserExists проверяет существование пользователя.
	UserExists(ctx context.Context, id int) (bool, error)
	// TemplateExists проверяет существование шаблона.
	TemplateExists(ctx context.Context, id int) (bool, error)
	// CreateDocument сохраняет новый документ и возвращает созданную запись.
	CreateDocument(ctx context.Context, doc models.UserDocument) (*models.UserDocument, error)
	// ListDocuments возвращает документы пользователя по фильтру.
	ListDocuments(ctx context.Context, filter models.DocumentFilter) ([]*models.UserDocument, error)
	// UpdateDocument применяет частичное обновление и возвращает обновлённую запись.
	UpdateDocument(ctx context.Context, id int, patch models.DocumentPatch) (*models.UserDocument, error)
}

// Service реализует бизнес-логику работы с документами.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет новый документ пользователя. Пользователь и, если указан,
// исходный шаблон должны существовать. Статус по умолчанию draft,
// документ не является избранным, file_url не заполняется.
// Проверка прав доступа к премиум-шаблонам на сервере не выполняется.
func (s *Service) Create(ctx context.Context, req models.CreateDocumentRequest) (*models.UserDocument, error) {
	exists, err := s.repo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user with id %d: %w", req.UserID, repository.ErrNotFound)
	}

	if req.TemplateID != nil {
		exists, err = s.repo.TemplateExists(ctx, *req.TemplateID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("template with id %d: %w", *req.TemplateID, repository.ErrNotFound)
		}
	}

	status := req.Status
	if status == "" {
		status = models.DocumentStatusDraft
	}

	doc := models.UserDocument{
		UserID:       req.UserID,
		TemplateID:   req.TemplateID,
		Title:        req.Title,
		DocumentData: req.DocumentData,
		FileType:     req.FileType,
		Status:       status,
		IsFavorite:   false,
	}

	created, err := s.repo.CreateDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new document", slog.Int("id", created.ID), slog.Int("user_id", created.UserID))
	return created, nil
}

// List возвращает документы пользователя. Необязательные фильтры по статусу
// и признаку избранного применяются одновременно; для неизвестного
// пользователя возвращается пустой список.
func (s *Service) List(ctx context.Context, userID int, status *string, isFavorite *bool, limit, offset int) ([]*models.UserDocument, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	filter := models.DocumentFilter{
		UserID:     userID,
		Status:     status,
		IsFavorite: isFavorite,
		Limit:      limit,
		Offset:     offset,
	}
	result, err := s.repo.ListDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.UserDocument{}
	}
	return result, nil
}

// Update применяет частичное обновление документа. Обновляются только
// заданные поля, updated_at обновляется всегда. Перемещение в корзину —
// это обновление статуса на trashed, отдельной операции удаления нет.
func (s *Service) Update(ctx context.Context, id int, patch models.DocumentPatch) (*models.UserDocument, error) {
	updated, err := s.repo.UpdateDocument(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info("updated document", slog.Int("id", id))
	return updated, nil
}
