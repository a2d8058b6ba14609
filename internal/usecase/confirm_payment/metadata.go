package confirm_payment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"
)

// Значения по умолчанию для пустых полей metadata
const (
	defaultPack         = "Pack"
	defaultVehicleModel = "Vehicule"
)

// parseMetadata восстанавливает запрос на резервирование из metadata сессии оплаты.
// Обязательны только начало слота (RFC3339) и положительная длительность.
func parseMetadata(checkout *stripecheckout.CheckoutCompleted) (*domain.ReservationRequest, error) {
	meta := checkout.Metadata

	rawStart := strings.TrimSpace(meta[stripecheckout.MetaTimeSlot])
	if rawStart == "" {
		return nil, fmt.Errorf("metadata %s is empty", stripecheckout.MetaTimeSlot)
	}
	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return nil, fmt.Errorf("metadata %s %q is not RFC3339: %v", stripecheckout.MetaTimeSlot, rawStart, err)
	}

	rawDuration := strings.TrimSpace(meta[stripecheckout.MetaDurationMinutes])
	minutes, err := strconv.Atoi(rawDuration)
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("metadata %s %q is not a positive number", stripecheckout.MetaDurationMinutes, rawDuration)
	}

	return &domain.ReservationRequest{
		Pack:     valueOr(meta[stripecheckout.MetaPack], defaultPack),
		Start:    start,
		Duration: time.Duration(minutes) * time.Minute,
		Contact: domain.ContactDetails{
			VehicleModel:  valueOr(meta[stripecheckout.MetaVehicleModel], defaultVehicleModel),
			Phone:         meta[stripecheckout.MetaPhone],
			Address:       meta[stripecheckout.MetaAddress],
			HouseNumber:   meta[stripecheckout.MetaHouseNumber],
			Notes:         meta[stripecheckout.MetaNotes],
			CustomerEmail: checkout.CustomerEmail,
		}.Normalize(),
	}, nil
}

func valueOr(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
