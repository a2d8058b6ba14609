package suggest_address

import (
	"context"

	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/nominatim"
)

// Geocoder поиск адресов
type Geocoder interface {
	Search(ctx context.Context, query string) ([]nominatim.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
