package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Normalize убирает пробелы по краям и обрезает заметки до MaxNotesLength символов
func (c ContactDetails) Normalize() ContactDetails {
	notes := strings.TrimSpace(c.Notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		notes = string([]rune(notes)[:MaxNotesLength])
	}

	return ContactDetails{
		VehicleModel:  strings.TrimSpace(c.VehicleModel),
		Phone:         strings.TrimSpace(c.Phone),
		Address:       strings.TrimSpace(c.Address),
		HouseNumber:   strings.TrimSpace(c.HouseNumber),
		Notes:         notes,
		CustomerEmail: strings.TrimSpace(c.CustomerEmail),
	}
}

// Validate проверяет обязательные поля формы бронирования
func (c ContactDetails) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"vehicleModel", c.VehicleModel},
		{"phone", c.Phone},
		{"address", c.Address},
		{"houseNumber", c.HouseNumber},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
		if utf8.RuneCountInString(f.value) > MaxFieldLength {
			return fmt.Errorf("%s is longer than %d characters", f.name, MaxFieldLength)
		}
	}

	return nil
}
