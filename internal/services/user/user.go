// Package user содержит бизнес-логику управления пользователями:
// регистрацию с пробным периодом и частичное обновление подписки.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

// Длительность пробного периода нового пользователя.
const trialPeriod = 7 * 24 * time.Hour

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// UpdateUser применяет частичное обновление и возвращает обновлённую запись.
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)
}

// Service реализует бизнес-логику работы с пользователями.
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

// Create регистрирует нового пользователя. Тип подписки по умолчанию free,
// пробный период заканчивается через 7 дней с момента регистрации.
func (s *Service) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	subscriptionType := req.SubscriptionType
	if subscriptionType == "" {
		subscriptionType = models.SubscriptionFree
	}
	trialEndsAt := time.Now().Add(trialPeriod)

	user := models.User{
		Email:            req.Email,
		Name:             req.Name,
		AvatarURL:        req.AvatarURL,
		SubscriptionType: subscriptionType,
		TrialEndsAt:      &trialEndsAt,
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new user", slog.Int("id", created.ID))
	return created, nil
}

// Update применяет частичное обновление пользователя. Обновляются только
// заданные поля, updated_at обновляется всегда. Значения полей проверяются
// обработчиком до вызова сервиса.
func (s *Service) Update(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	updated, err := s.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info("updated user", slog.Int("id", id))
	return updated, nil
}
