package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"katiba/internal/config"
	"katiba/internal/form"
	"katiba/internal/handler"
	"katiba/internal/input"
	"katiba/internal/middleware"
	"katiba/internal/notify"
	"katiba/internal/repository/postgres"
	"katiba/internal/service"
	"katiba/internal/session"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logConfig := zap.NewProductionConfig()
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Katiba Events Bot")

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("Unknown log level, keeping info", zap.String("log_level", cfg.LogLevel))
	} else {
		logConfig.Level.SetLevel(level)
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Failed to load time zone", zap.String("timezone", cfg.TimeZone), zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("timezone", cfg.TimeZone),
		zap.Int("list_limit", cfg.ListLimit),
		zap.Duration("session_idle_timeout", cfg.SessionIdleTimeout),
	)

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	memberRepo := postgres.NewMemberRepo(db)
	orderRepo := postgres.NewOrderRepo(db)

	// Initialize services
	memberService := service.NewMemberService(memberRepo)
	orderService := service.NewOrderService(orderRepo, loc, cfg.ListLimit)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:       cfg.BotToken,
		Poller:      &tele.LongPoller{Timeout: 10 * time.Second},
		Synchronous: true,
		OnError: func(err error, c tele.Context) {
			logger.Error("Unhandled bot error", zap.String("trace_id", middleware.TraceID(c)), zap.Error(err))
		},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Forms and notifications
	sessions := session.NewMemoryStore()
	menu := input.NewMenuDetector(handler.MenuLabels()...)
	notifier := notify.NewNotifier(memberRepo, handler.NewTelegramSender(bot), logger)
	engine := form.NewEngine(sessions, orderRepo, memberRepo, notifier, menu, loc, logger)

	// Initialize handler
	bot.Use(
		middleware.LoggingMiddleware(logger),
		middleware.MemberMiddleware(memberService, logger),
	)
	h := handler.NewHandler(bot, engine, orderService, memberService, menu, loc, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start session sweeper in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := session.NewSweeper(sessions, cfg.SessionIdleTimeout, logger)
	go sweeper.Run(ctx, sweepInterval(cfg.SessionIdleTimeout))

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sqlx.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db.DB, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// sweepInterval picks how often idle sessions are checked
func sweepInterval(idle time.Duration) time.Duration {
	interval := idle / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}
