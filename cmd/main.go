package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-DetailingBooking/internal/api/handlers"
	createCheckoutHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/create_checkout"
	getAvailabilityHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/get_availability"
	reserveSlotHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/reserve_slot"
	stripeWebhookHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/stripe_webhook"
	suggestAddressHandler "github.com/m04kA/SMC-DetailingBooking/internal/api/handlers/suggest_address"
	"github.com/m04kA/SMC-DetailingBooking/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingBooking/internal/config"
	reconciliationRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/reconciliation"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/googlecalendar"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/nominatim"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/stripecheckout"
	"github.com/m04kA/SMC-DetailingBooking/internal/service/reservation"
	confirmPaymentUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/confirm_payment"
	createCheckoutUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/create_checkout"
	getAvailabilityUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/get_availability"
	reserveSlotUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/reserve_slot"
	suggestAddressUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/suggest_address"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
	"github.com/m04kA/SMC-DetailingBooking/pkg/metrics"
	"github.com/m04kA/SMC-DetailingBooking/pkg/tzclock"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-DetailingBooking...")
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Метрики собираются всегда, endpoint публикуется только если включен
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	policy := cfg.Booking.SchedulePolicy()
	clock := tzclock.MustNew(policy.TimeZone)
	log.Info("Schedule policy: zone=%s, hours=%02d-%02d, step=%dm, notice=%dm, buffer=%dm, lookahead=%dd, max_days=%d",
		policy.TimeZone, policy.OpenHour, policy.CloseHour, policy.SlotStepMinutes, policy.MinNoticeMinutes,
		policy.TransitBufferMinutes, policy.LookaheadDays, policy.MaxDaysReturned)

	// Журнал сверки (опционально)
	var journal confirmPaymentUC.Journal
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		journal = reconciliationRepo.NewRepository(db)
	} else {
		log.Warn("Database disabled: reconciliation entries are written to the log only")
		journal = reconciliationRepo.NewLogJournal(log)
	}

	// Инициализируем интеграционных клиентов
	calendarClient, calendarID := googlecalendar.Connect(ctx, googlecalendar.CredentialsSource{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Email:      cfg.GoogleCalendar.ServiceAccountEmail,
		PrivateKey: cfg.GoogleCalendar.ServiceAccountKey,
		JSONPath:   cfg.GoogleCalendar.ServiceAccountJSONPath,
	}, time.Duration(cfg.GoogleCalendar.Timeout)*time.Second, metricsCollector, log)

	var checkoutClient createCheckoutUC.CheckoutProvider
	if cfg.Stripe.SecretKey != "" {
		checkoutClient = stripecheckout.NewClient(
			cfg.Stripe.SecretKey,
			cfg.Stripe.Currency,
			cfg.Stripe.SiteURL,
			time.Duration(cfg.Stripe.Timeout)*time.Second,
			nil,
			log,
		)
		log.Info("Stripe client initialized (site=%s, currency=%s)", cfg.Stripe.SiteURL, cfg.Stripe.Currency)
	} else {
		log.Warn("Stripe disabled: STRIPE_SECRET_KEY is empty")
		checkoutClient = stripecheckout.NewDisabledClient()
	}
	webhookVerifier := stripecheckout.NewWebhookVerifier(cfg.Stripe.WebhookSecret)

	geocoder := nominatim.NewClient(nominatim.Config{
		URL:           cfg.AddressSuggest.URL,
		UserAgent:     cfg.AddressSuggest.UserAgent,
		CountryCodes:  cfg.AddressSuggest.CountryCodes,
		Limit:         cfg.AddressSuggest.Limit,
		RatePerSecond: cfg.AddressSuggest.RatePerSecond,
		Timeout:       time.Duration(cfg.AddressSuggest.Timeout) * time.Second,
	}, log)

	// Инициализируем сервисы
	guard := reservation.NewGuard(calendarClient, calendarID, policy, metricsCollector, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(calendarClient, calendarID, policy, clock, metricsCollector, log)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(guard, log)
	createCheckoutUseCase := createCheckoutUC.NewUseCase(guard, checkoutClient, clock, log)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(guard, journal, log)
	suggestAddressUseCase := suggestAddressUC.NewUseCase(geocoder, suggestAddressUC.ServiceArea{
		CenterLat:   cfg.AddressSuggest.CenterLat,
		CenterLon:   cfg.AddressSuggest.CenterLon,
		MaxRadiusKm: cfg.AddressSuggest.MaxRadiusKm,
	}, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	createCheckout := createCheckoutHandler.NewHandler(createCheckoutUseCase, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(webhookVerifier, confirmPaymentUseCase, log)
	suggestAddress := suggestAddressHandler.NewHandler(suggestAddressUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Чтение
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/address-suggestions", suggestAddress.Handle).Methods(http.MethodGet)

	// Вебхук провайдера оплаты: без ограничения частоты, подлинность проверяется подписью
	api.HandleFunc("/webhooks/stripe", stripeWebhook.Handle).Methods(http.MethodPost)

	// Публичные формы
	forms := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, 10*time.Minute, log)
		go limiter.Run(ctx)
		forms.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %.0f req/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	forms.HandleFunc("/reservations", reserveSlot.Handle).Methods(http.MethodPost)
	forms.HandleFunc("/checkout-sessions", createCheckout.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
