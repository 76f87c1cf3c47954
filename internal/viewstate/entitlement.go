package viewstate

import (
	"time"

	"github.com/magabrotheeeer/template-hub/internal/models"
)

// HasPremiumAccess сообщает, доступны ли пользователю премиум-шаблоны:
// оформлена премиум-подписка либо ещё не истёк пробный период.
// Проверка выполняется только на клиенте, сервер при сохранении документа
// права доступа не перепроверяет.
func HasPremiumAccess(u models.User, now time.Time) bool {
	if u.SubscriptionType == models.SubscriptionPremium {
		return true
	}
	return u.TrialEndsAt != nil && u.TrialEndsAt.After(now)
}

// CanUseTemplate сообщает, может ли пользователь заполнить шаблон без оплаты.
// Бесплатные шаблоны доступны всем; премиум-шаблоны требуют HasPremiumAccess,
// иначе клиент предлагает подписку или разовую покупку перед сохранением.
func CanUseTemplate(u models.User, t models.Template, now time.Time) bool {
	if !t.IsPremium {
		return true
	}
	return HasPremiumAccess(u, now)
}
