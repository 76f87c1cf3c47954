package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Opt оборачивает поле частичного обновления. Set равен true, только если
// поле присутствовало в JSON-запросе, что позволяет различать «поле не передано»
// и «поле передано со значением null» (для nullable-полей используется Opt
// с указателем, null даёт Set=true и nil-значение).
type Opt[T any] struct {
	Value T
	Set   bool
}

// UnmarshalJSON вызывается только для присутствующих в запросе полей,
// отсутствующие поля оставляют Set=false.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Set = true
	return nil
}

// UserPatch представляет частичное обновление пользователя.
// Применяются только поля с Set=true, updated_at обновляется всегда.
type UserPatch struct {
	Email                 Opt[string]     `json:"email"`
	Name                  Opt[string]     `json:"name"`
	AvatarURL             Opt[*string]    `json:"avatar_url"`
	SubscriptionType      Opt[string]     `json:"subscription_type"`
	SubscriptionExpiresAt Opt[*time.Time] `json:"subscription_expires_at"`
	TrialEndsAt           Opt[*time.Time] `json:"trial_ends_at"`
}

// Validate проверяет значения заданных полей. Валидатор структур не видит
// содержимое Opt, поэтому проверка выполняется вручную.
func (p UserPatch) Validate() error {
	if p.Email.Set && p.Email.Value == "" {
		return fmt.Errorf("field email must not be empty")
	}
	if p.Name.Set && p.Name.Value == "" {
		return fmt.Errorf("field name must not be empty")
	}
	if p.SubscriptionType.Set &&
		p.SubscriptionType.Value != SubscriptionFree &&
		p.SubscriptionType.Value != SubscriptionPremium {
		return fmt.Errorf("field subscription_type must be one of: free, premium")
	}
	return nil
}

// IsEmpty сообщает, что ни одно поле не задано.
func (p UserPatch) IsEmpty() bool {
	return !p.Email.Set && !p.Name.Set && !p.AvatarURL.Set &&
		!p.SubscriptionType.Set && !p.SubscriptionExpiresAt.Set && !p.TrialEndsAt.Set
}

// DocumentPatch представляет частичное обновление документа пользователя.
// Перемещение в корзину моделируется как Status со значением trashed.
type DocumentPatch struct {
	Title        Opt[string]         `json:"title"`
	DocumentData Opt[map[string]any] `json:"document_data"`
	Status       Opt[string]         `json:"status"`
	IsFavorite   Opt[bool]           `json:"is_favorite"`
}

// Validate проверяет значения заданных полей частичного обновления документа.
func (p DocumentPatch) Validate() error {
	if p.Title.Set && p.Title.Value == "" {
		return fmt.Errorf("field title must not be empty")
	}
	if p.Status.Set {
		switch p.Status.Value {
		case DocumentStatusDraft, DocumentStatusCompleted, DocumentStatusTrashed:
		default:
			return fmt.Errorf("field status must be one of: draft, completed, trashed")
		}
	}
	return nil
}

// IsEmpty сообщает, что ни одно поле не задано.
func (p DocumentPatch) IsEmpty() bool {
	return !p.Title.Set && !p.DocumentData.Set && !p.Status.Set && !p.IsFavorite.Set
}
