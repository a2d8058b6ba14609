package stripecheckout

// Ключи metadata checkout-сессии
const (
	MetaPack            = "pack"
	MetaVehicleModel    = "vehicleModel"
	MetaPhone           = "phone"
	MetaAddress         = "address"
	MetaHouseNumber     = "houseNumber"
	MetaDate            = "date"
	MetaTimeSlot        = "timeSlot"
	MetaTimeSlotLabel   = "timeSlotLabel"
	MetaDurationMinutes = "durationMinutes"
	MetaNotes           = "notes"
)

// EventCheckoutCompleted тип события об успешном оформлении checkout-сессии
const EventCheckoutCompleted = "checkout.session.completed"

// DepositSession данные для создания сессии оплаты аванса
type DepositSession struct {
	Pack          string
	VehicleModel  string
	Phone         string
	Address       string
	HouseNumber   string
	Date          string
	TimeSlot      string // RFC3339, начало слота
	TimeSlotLabel string
	Notes         string
	// Длительность услуги, передается в metadata для создания события после оплаты
	DurationMinutes int
	DepositCents    int64
}

// Session созданная checkout-сессия
type Session struct {
	ID  string
	URL string
}

// Event проверенное событие вебхука
type Event struct {
	ID       string
	Type     string
	Checkout *CheckoutCompleted // заполнено только для checkout.session.completed
}

// CheckoutCompleted данные завершенной checkout-сессии
type CheckoutCompleted struct {
	SessionID     string
	Paid          bool
	Metadata      map[string]string
	CustomerEmail string
}
