package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/BlockBooker/internal/config"
	"github.com/stpnv0/BlockBooker/internal/handler"
	"github.com/stpnv0/BlockBooker/internal/lock"
	"github.com/stpnv0/BlockBooker/internal/middleware"
	"github.com/stpnv0/BlockBooker/internal/notification"
	"github.com/stpnv0/BlockBooker/internal/repository"
	"github.com/stpnv0/BlockBooker/internal/router"
	"github.com/stpnv0/BlockBooker/internal/scheduler"
	"github.com/stpnv0/BlockBooker/internal/service"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BlockBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initLocker picks the redsync lock when Redis is configured, the in-process
// one otherwise.
func (a *App) initLocker() (ports.Locker, error) {
	if !a.cfg.Redis.Enabled() {
		a.log.Warn("redis addr is empty, allocation locks are process-local")
		return lock.NewLocalLocker(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return lock.NewRedisLocker(client, lock.Options{
		Expiry:     a.cfg.Redis.LockExpiry,
		Tries:      a.cfg.Redis.LockTries,
		RetryDelay: a.cfg.Redis.LockRetryDelay,
	}, a.log), nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	blockRepo := repository.NewRoomBlockRepo(a.db)
	inventoryRepo := repository.NewInventoryRepo(a.db)
	ruleRepo := repository.NewRuleRepo(a.db)
	guestRepo := repository.NewGuestRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	activity := repository.NewActivityRepo(a.db, a.log)

	locker, err := a.initLocker()
	if err != nil {
		return fmt.Errorf("init locker: %w", err)
	}

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		notification.BreakerSettings{
			MaxFailures: a.cfg.Breaker.MaxFailures,
			OpenTimeout: a.cfg.Breaker.OpenTimeout,
		},
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	ledger := service.NewInventoryLedger(inventoryRepo, a.cfg.Booking.ReserveAttempts, a.log)
	discounts := service.NewDiscountResolver(eventRepo, ruleRepo, inventoryRepo)

	eventService := service.NewEventService(eventRepo, blockRepo, activity)
	guestService := service.NewGuestService(guestRepo, eventRepo)
	bookingService := service.NewBookingService(
		bookingRepo, eventRepo, blockRepo, guestRepo,
		ledger, discounts, activity, a.log,
	)
	attritionService := service.NewAttritionService(eventRepo, blockRepo, ruleRepo, activity, a.log)
	allocationService := service.NewAllocationService(eventRepo, blockRepo, guestRepo, locker, activity, a.log)
	estimateService := service.NewEstimateService(eventRepo, blockRepo, ruleRepo)

	if a.cfg.Scheduler.Enabled {
		a.scheduler = scheduler.New(
			eventService,
			attritionService,
			n,
			a.cfg.Scheduler.Interval,
			a.log,
		)
	}

	h := handler.NewHandler(handler.Services{
		Events:     eventService,
		Guests:     guestService,
		Bookings:   bookingService,
		Discounts:  discounts,
		Attrition:  attritionService,
		Allocation: allocationService,
		Estimates:  estimateService,
		Notifier:   n,
	}, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connection closed")
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
