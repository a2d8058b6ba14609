package get_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
)

// validateRequest валидирует входные данные и возвращает конфигурацию пакета
func validateRequest(req *Request) (domain.PackConfig, error) {
	pack := strings.TrimSpace(req.Pack)
	if pack == "" {
		return domain.PackConfig{}, fmt.Errorf("%w: pack is required", ErrInvalidInput)
	}

	config, ok := domain.LookupPack(pack)
	if !ok {
		return domain.PackConfig{}, fmt.Errorf("%w: %q", ErrPackNotBookable, pack)
	}

	return config, nil
}
