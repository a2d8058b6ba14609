package googlecalendar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// fallbackKeyFiles файлы сервисного аккаунта, которые ищутся в рабочей директории,
// если путь не задан явно
var fallbackKeyFiles = []string{
	"service-account.json",
	"google-service-account.json",
}

// Credentials учетные данные сервисного аккаунта и идентификатор календаря
type Credentials struct {
	CalendarID string
	Email      string
	PrivateKey []byte
}

// CredentialsSource источники учетных данных из конфигурации
type CredentialsSource struct {
	CalendarID   string
	Email        string
	PrivateKey   string
	JSONPath     string
	SearchFolder string // директория для поиска fallbackKeyFiles; пустая - текущая
}

// LoadCredentials собирает учетные данные: сначала пара email + ключ, затем JSON файл.
// Без идентификатора календаря или ключа возвращает ErrNotConfigured.
func LoadCredentials(src CredentialsSource) (*Credentials, error) {
	calendarID := strings.TrimSpace(src.CalendarID)
	if calendarID == "" {
		return nil, fmt.Errorf("%w: calendar id is empty", ErrNotConfigured)
	}

	email := strings.TrimSpace(src.Email)
	key := strings.TrimSpace(src.PrivateKey)
	if email != "" && key != "" {
		return &Credentials{
			CalendarID: calendarID,
			Email:      email,
			PrivateKey: []byte(normalizePrivateKey(key)),
		}, nil
	}

	candidates := make([]string, 0, len(fallbackKeyFiles)+1)
	if path := strings.TrimSpace(src.JSONPath); path != "" {
		candidates = append(candidates, path)
	}
	for _, name := range fallbackKeyFiles {
		candidates = append(candidates, filepath.Join(src.SearchFolder, name))
	}

	for _, path := range candidates {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		conf, err := google.JWTConfigFromJSON(raw, calendar.CalendarScope)
		if err != nil || conf.Email == "" || len(conf.PrivateKey) == 0 {
			continue
		}
		return &Credentials{
			CalendarID: calendarID,
			Email:      conf.Email,
			PrivateKey: conf.PrivateKey,
		}, nil
	}

	return nil, fmt.Errorf("%w: service account email/private key not found", ErrNotConfigured)
}

// TokenSource источник OAuth2 токенов по JWT сервисного аккаунта
func (c *Credentials) TokenSource(ctx context.Context, scopes ...string) oauth2.TokenSource {
	conf := &jwt.Config{
		Email:      c.Email,
		PrivateKey: c.PrivateKey,
		Scopes:     scopes,
		TokenURL:   google.JWTTokenURL,
	}
	return conf.TokenSource(ctx)
}

// ClientOptions опции для calendar.NewService
func (c *Credentials) ClientOptions(ctx context.Context) []option.ClientOption {
	return []option.ClientOption{
		option.WithTokenSource(c.TokenSource(ctx, calendar.CalendarScope)),
	}
}

// normalizePrivateKey ключ из переменной окружения часто содержит экранированные переводы строк
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
