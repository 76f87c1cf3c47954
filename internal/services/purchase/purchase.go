// Package purchase содержит бизнес-логику фиксации покупок: подписки на сервис
// и отдельных шаблонов. Сервис только создаёт запись о попытке оплаты,
// подтверждение оплаты платёжным контуром находится вне его рамок.
package purchase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/template-hub/internal/models"
	"github.com/magabrotheeeer/template-hub/internal/storage/repository"
)

// Repository определяет методы для работы с покупками в хранилище.
type Repository interface {
	// UserExists проверяет существование пользователя.
	UserExists(ctx context.Context, id int) (bool, error)
	// TemplateExists проверяет существование шаблона.
	TemplateExists(ctx context.Context, id int) (bool, error)
	// CreatePurchase сохраняет новую покупку и возвращает созданную запись.
	CreatePurchase(ctx context.Context, purchase models.Purchase) (*models.Purchase, error)
}

// Service реализует бизнес-логику фиксации покупок.
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

// Create фиксирует новую покупку. Покупатель и, если указан, шаблон должны
// существовать. Статус оплаты всегда pending независимо от входных данных.
func (s *Service) Create(ctx context.Context, req models.CreatePurchaseRequest) (*models.Purchase, error) {
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

	purchase := models.Purchase{
		UserID:            req.UserID,
		TemplateID:        req.TemplateID,
		PurchaseType:      req.PurchaseType,
		Amount:            req.Amount,
		Currency:          req.Currency,
		PaymentStatus:     models.PaymentStatusPending,
		PaymentProvider:   req.PaymentProvider,
		PaymentProviderID: req.PaymentProviderID,
	}

	created, err := s.repo.CreatePurchase(ctx, purchase)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new purchase",
		slog.Int("id", created.ID),
		slog.Int("user_id", created.UserID),
		slog.String("purchase_type", created.PurchaseType))
	return created, nil
}
