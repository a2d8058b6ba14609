package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-DetailingBooking/internal/domain"
	"github.com/m04kA/SMC-DetailingBooking/pkg/tzclock"
)

// Config конфигурация сервиса (config.toml)
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	Database       DatabaseConfig       `toml:"database"`
	Booking        BookingConfig        `toml:"booking"`
	GoogleCalendar GoogleCalendarConfig `toml:"google_calendar"`
	Stripe         StripeConfig         `toml:"stripe"`
	AddressSuggest AddressSuggestConfig `toml:"address_suggest"`
	RateLimit      RateLimitConfig      `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig база журнала сверки (опционально)
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingConfig политика расписания. Нулевые значения заменяются значениями по умолчанию.
type BookingConfig struct {
	TimeZone             string `toml:"time_zone"`
	OpenHour             int    `toml:"open_hour"`
	CloseHour            int    `toml:"close_hour"`
	SlotStepMinutes      int    `toml:"slot_step_minutes"`
	MinNoticeMinutes     *int   `toml:"min_notice_minutes"`
	TransitBufferMinutes *int   `toml:"transit_buffer_minutes"`
	LookaheadDays        *int   `toml:"lookahead_days"`
	MaxDaysReturned      int    `toml:"max_days_returned"`
}

// SchedulePolicy собирает доменную политику расписания
func (b BookingConfig) SchedulePolicy() domain.SchedulePolicy {
	policy := domain.DefaultSchedulePolicy()

	if b.TimeZone != "" {
		policy.TimeZone = b.TimeZone
	}
	if b.OpenHour != 0 {
		policy.OpenHour = b.OpenHour
	}
	if b.CloseHour != 0 {
		policy.CloseHour = b.CloseHour
	}
	if b.SlotStepMinutes != 0 {
		policy.SlotStepMinutes = b.SlotStepMinutes
	}
	// 0 - допустимое значение, поэтому отличаем его от отсутствия через указатель
	if b.MinNoticeMinutes != nil {
		policy.MinNoticeMinutes = *b.MinNoticeMinutes
	}
	if b.TransitBufferMinutes != nil {
		policy.TransitBufferMinutes = *b.TransitBufferMinutes
	}
	if b.LookaheadDays != nil {
		policy.LookaheadDays = *b.LookaheadDays
	}
	if b.MaxDaysReturned != 0 {
		policy.MaxDaysReturned = b.MaxDaysReturned
	}

	return policy
}

type GoogleCalendarConfig struct {
	CalendarID             string `toml:"calendar_id"`
	ServiceAccountEmail    string `toml:"service_account_email"`
	ServiceAccountKey      string `toml:"service_account_private_key"`
	ServiceAccountJSONPath string `toml:"service_account_json_path"`
	Timeout                int    `toml:"timeout"` // секунды
}

type StripeConfig struct {
	SecretKey     string `toml:"secret_key"`
	WebhookSecret string `toml:"webhook_secret"`
	SiteURL       string `toml:"site_url"`
	Currency      string `toml:"currency"`
	Timeout       int    `toml:"timeout"` // секунды
}

type AddressSuggestConfig struct {
	URL           string  `toml:"url"`
	UserAgent     string  `toml:"user_agent"`
	CountryCodes  string  `toml:"country_codes"`
	Limit         int     `toml:"limit"`
	CenterLat     float64 `toml:"center_lat"`
	CenterLon     float64 `toml:"center_lon"`
	MaxRadiusKm   float64 `toml:"max_radius_km"`
	RatePerSecond float64 `toml:"rate_per_second"`
	Timeout       int     `toml:"timeout"` // секунды
}

// RateLimitConfig ограничение частоты запросов от одного клиента на публичные POST
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerMinute float64 `toml:"requests_per_minute"`
	Burst             int     `toml:"burst"`
}

// Load читает конфигурацию из файла, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	policy := c.Booking.SchedulePolicy()
	if err := policy.Validate(); err != nil {
		return fmt.Errorf("config: invalid [booking]: %w", err)
	}
	if _, err := tzclock.New(policy.TimeZone); err != nil {
		return fmt.Errorf("config: invalid [booking]: %w", err)
	}
	if c.Database.Enabled && c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required when database is enabled")
	}
	return nil
}

// applyEnv секреты из окружения имеют приоритет над файлом
func (c *Config) applyEnv() {
	overrideFromEnv(&c.GoogleCalendar.CalendarID, "GOOGLE_CALENDAR_ID")
	overrideFromEnv(&c.GoogleCalendar.ServiceAccountEmail, "GOOGLE_SERVICE_ACCOUNT_EMAIL")
	overrideFromEnv(&c.GoogleCalendar.ServiceAccountKey, "GOOGLE_SERVICE_ACCOUNT_PRIVATE_KEY")
	overrideFromEnv(&c.GoogleCalendar.ServiceAccountJSONPath, "GOOGLE_SERVICE_ACCOUNT_JSON_PATH")
	overrideFromEnv(&c.Stripe.SecretKey, "STRIPE_SECRET_KEY")
	overrideFromEnv(&c.Stripe.WebhookSecret, "STRIPE_WEBHOOK_SECRET")
	overrideFromEnv(&c.Stripe.SiteURL, "SITE_URL")
	overrideFromEnv(&c.Database.Password, "DB_PASSWORD")
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 30)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "detailing_booking"
	}

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 5)
	setDefault(&c.Database.MaxIdleConns, 2)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	setDefault(&c.GoogleCalendar.Timeout, 10)

	setDefault(&c.Stripe.Timeout, 15)
	if c.Stripe.Currency == "" {
		c.Stripe.Currency = "eur"
	}
	c.Stripe.SiteURL = strings.TrimSuffix(c.Stripe.SiteURL, "/")

	if c.AddressSuggest.URL == "" {
		c.AddressSuggest.URL = "https://nominatim.openstreetmap.org/search"
	}
	if c.AddressSuggest.UserAgent == "" {
		c.AddressSuggest.UserAgent = "LN-Autoshine/1.0 (contact@lnautoshine.be)"
	}
	if c.AddressSuggest.CountryCodes == "" {
		c.AddressSuggest.CountryCodes = "be"
	}
	setDefault(&c.AddressSuggest.Limit, 6)
	if c.AddressSuggest.CenterLat == 0 && c.AddressSuggest.CenterLon == 0 {
		c.AddressSuggest.CenterLat = 50.51888
		c.AddressSuggest.CenterLon = 5.2408
	}
	if c.AddressSuggest.MaxRadiusKm == 0 {
		c.AddressSuggest.MaxRadiusKm = 20
	}
	if c.AddressSuggest.RatePerSecond == 0 {
		c.AddressSuggest.RatePerSecond = 1
	}
	setDefault(&c.AddressSuggest.Timeout, 5)

	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 20
	}
	setDefault(&c.RateLimit.Burst, 5)
}

func overrideFromEnv(target *string, key string) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		*target = value
	}
}

func setDefault(target *int, value int) {
	if *target == 0 {
		*target = value
	}
}
