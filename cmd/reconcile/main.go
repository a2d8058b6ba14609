// Команда сверки: ищет пересекающиеся события календаря и выводит открытые записи журнала.
// Запускается по расписанию (cron) или вручную для закрытия записи после разбора.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-DetailingBooking/internal/config"
	reconciliationRepo "github.com/m04kA/SMC-DetailingBooking/internal/infra/storage/reconciliation"
	"github.com/m04kA/SMC-DetailingBooking/internal/integrations/googlecalendar"
	reconcileCalendarUC "github.com/m04kA/SMC-DetailingBooking/internal/usecase/reconcile_calendar"
	"github.com/m04kA/SMC-DetailingBooking/pkg/logger"
	"github.com/m04kA/SMC-DetailingBooking/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	resolve := flag.String("resolve", "", "mark the journal entry with this transaction id as resolved and exit")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	policy := cfg.Booking.SchedulePolicy()

	var journal reconcileCalendarUC.Journal
	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		journal = reconciliationRepo.NewRepository(db)
	} else {
		log.Warn("Database disabled: overlaps are written to the log only")
		journal = reconciliationRepo.NewLogJournal(log)
	}

	// Метрики в разовом запуске не публикуются, но клиент календаря их пишет
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)

	calendarClient, calendarID := googlecalendar.Connect(ctx, googlecalendar.CredentialsSource{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Email:      cfg.GoogleCalendar.ServiceAccountEmail,
		PrivateKey: cfg.GoogleCalendar.ServiceAccountKey,
		JSONPath:   cfg.GoogleCalendar.ServiceAccountJSONPath,
	}, time.Duration(cfg.GoogleCalendar.Timeout)*time.Second, metricsCollector, log)

	useCase := reconcileCalendarUC.NewUseCase(calendarClient, calendarID, journal, policy, log)

	if *resolve != "" {
		if err := useCase.Resolve(ctx, *resolve); err != nil {
			log.Fatal("Failed to resolve %s: %v", *resolve, err)
		}
		return
	}

	resp, err := useCase.Execute(ctx)
	if err != nil {
		log.Fatal("Reconciliation failed: %v", err)
	}

	if len(resp.Overlaps) > 0 {
		log.Warn("Reconciliation finished: %d overlapping pairs need attention", len(resp.Overlaps))
		return
	}
	log.Info("Reconciliation finished: calendar is consistent")
}
