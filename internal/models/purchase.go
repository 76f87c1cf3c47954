package models

import "time"

// Типы покупок.
const (
	PurchaseTypeSubscription       = "subscription"
	PurchaseTypeIndividualDocument = "individual_document"
)

// Статусы оплаты. Обработчики сервиса создают покупку только в статусе pending;
// дальнейшие переходы выполняет внешний платёжный контур вне рамок сервиса.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

// Purchase представляет зафиксированную попытку оплаты: подписки на сервис
// либо отдельного шаблона. TemplateID nil для покупок подписки.
type Purchase struct {
	ID                int       `json:"id"`
	UserID            int       `json:"user_id"`
	TemplateID        *int      `json:"template_id"`
	PurchaseType      string    `json:"purchase_type"`  // subscription или individual_document
	Amount            float64   `json:"amount"`         // Сумма, numeric(10,2) в хранилище
	Currency          string    `json:"currency"`
	PaymentStatus     string    `json:"payment_status"` // Всегда pending при создании
	PaymentProvider   *string   `json:"payment_provider"`
	PaymentProviderID *string   `json:"payment_provider_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreatePurchaseRequest используется для приёма данных покупки из JSON-запроса.
type CreatePurchaseRequest struct {
	UserID            int      `json:"user_id" validate:"required,gt=0"`                                        // Покупатель
	TemplateID        *int     `json:"template_id" validate:"omitempty,gt=0"`                                   // Шаблон (nil для подписки)
	PurchaseType      string   `json:"purchase_type" validate:"required,oneof=subscription individual_document"` // Тип покупки
	Amount            float64  `json:"amount" validate:"required,gt=0"`                                         // Сумма (>0)
	Currency          string   `json:"currency" validate:"required"`                                            // Валюта
	PaymentProvider   *string  `json:"payment_provider" validate:"omitempty"`                                   // Платёжный провайдер (опционально)
	PaymentProviderID *string  `json:"payment_provider_id" validate:"omitempty"`                                // Идентификатор у провайдера (опционально)
}
