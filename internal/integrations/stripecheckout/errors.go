package stripecheckout

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан секретный ключ или секрет вебхука
	ErrNotConfigured = errors.New("stripecheckout: configuration missing")

	// ErrUnavailable возвращается при ошибке обращения к Stripe
	ErrUnavailable = errors.New("stripecheckout: service unavailable")

	// ErrInvalidResponse возвращается, когда Stripe вернул сессию без ссылки на оплату
	ErrInvalidResponse = errors.New("stripecheckout: invalid response")

	// ErrInvalidSignature возвращается, когда подпись вебхука не прошла проверку
	ErrInvalidSignature = errors.New("stripecheckout: invalid webhook signature")

	// ErrInvalidPayload возвращается, когда тело события не удалось разобрать
	ErrInvalidPayload = errors.New("stripecheckout: invalid webhook payload")
)
