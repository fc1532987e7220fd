package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	"storefront/internal/infra/fakestore"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	//.envは任意
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	//リモートストア
	client := fakestore.NewClient(cfg.StoreBaseURL, cfg.StoreTimeout, logger)
	products := fakestore.NewProductStore(client)
	carts := fakestore.NewCartStore(client)
	users := fakestore.NewUserStore(client)
	authStore := fakestore.NewAuthStore(client)

	//監査ログ（DBがあれば）
	audit := auditRepository(cfg, logger)

	//usecaseに渡す部品
	idGen := usecase.NewUUIDGenerator()
	clock := usecase.NewRealClock()

	scheduler := usecase.NewRealScheduler()

	registry := usecase.NewRegistry(clock, logger)
	defer registry.Close()

	//放置された画面を定期的に外す
	if cfg.ScreenIdleTTL > 0 {
		janitor := registry.StartJanitor(scheduler, time.Minute, cfg.ScreenIdleTTL)
		defer janitor.Stop()
	}

	factory := usecase.NewScreenFactory(usecase.ScreenDeps{
		Products:    products,
		Carts:       carts,
		Users:       users,
		Scheduler:   scheduler,
		IDGen:       idGen,
		CartID:      cfg.CartID,
		UserID:      cfg.ProfileUserID,
		BannerCount: cfg.BannerCount,
	}, logger)

	authUC := usecase.NewAuthUsecase(authStore, users, audit, validator.NewAuthValidator(), idGen, clock, logger)

	//Handler生成
	e := server.New(logger,
		handler.NewFeedHandler(registry, factory),
		handler.NewCartHandler(registry, factory),
		handler.NewProductHandler(registry, factory),
		handler.NewProfileHandler(registry, factory),
		handler.NewOffersHandler(registry, factory),
		handler.NewScreenHandler(registry),
		handler.NewAuthHandler(authUC),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr(), logger); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
}

func auditRepository(cfg config.Config, logger zerolog.Logger) repository.AuthAuditLogRepository {
	if !cfg.AuditDBEnabled() {
		logger.Info().Msg("auth audit log disabled (no database configured)")
		return infraRepo.NewNoopAuthAuditLogRepository()
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect audit database")
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("migrate audit database")
	}
	return infraRepo.NewAuthAuditLogGormRepository(gormDB)
}
