// Package models содержит доменные структуры сервиса шаблонов документов:
// пользователей, категории и шаблоны каталога, документы пользователей и покупки,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Типы подписки пользователя.
const (
	SubscriptionFree    = "free"
	SubscriptionPremium = "premium"
)

// User представляет зарегистрированного пользователя сервиса.
// Поля SubscriptionExpiresAt и TrialEndsAt могут быть nil — это означает
// отсутствие оплаченной подписки или пробного периода соответственно.
type User struct {
	ID                    int        `json:"id"`                      // Уникальный идентификатор
	Email                 string     `json:"email"`                   // Электронная почта (уникальная)
	Name                  string     `json:"name"`                    // Имя пользователя
	AvatarURL             *string    `json:"avatar_url"`              // Ссылка на аватар
	SubscriptionType      string     `json:"subscription_type"`       // Тип подписки, free или premium
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at"` // Дата истечения оплаченной подписки
	TrialEndsAt           *time.Time `json:"trial_ends_at"`           // Дата истечения пробного периода
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// CreateUserRequest используется для приёма данных регистрации из JSON-запроса.
type CreateUserRequest struct {
	Email            string  `json:"email" validate:"required,email"`                        // Электронная почта
	Name             string  `json:"name" validate:"required"`                               // Имя пользователя
	AvatarURL        *string `json:"avatar_url" validate:"omitempty"`                        // Ссылка на аватар (опционально)
	SubscriptionType string  `json:"subscription_type" validate:"omitempty,oneof=free premium"` // Тип подписки (по умолчанию free)
}
