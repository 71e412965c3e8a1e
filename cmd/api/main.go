package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shelftrack/reading-tracker/internal/api"
	"github.com/shelftrack/reading-tracker/internal/core/service"
	"github.com/shelftrack/reading-tracker/internal/infrastructure/config"
	mongodb "github.com/shelftrack/reading-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/shelftrack/reading-tracker/internal/infrastructure/db/redis"
	"github.com/shelftrack/reading-tracker/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New("reading-tracker", logger.Options{})
		bootLog.Fatal().Err(err).Msg("configuration")
	}

	log := logger.New("reading-tracker", logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer func() { _ = rdb.Close() }()

	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	entryRepo := mongodb.NewReadingEntryRepository(db)

	for _, ensure := range []func(context.Context) error{
		userRepo.EnsureIndexes,
		bookRepo.EnsureIndexes,
		entryRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("ensure indexes")
		}
	}

	// --- Services ---
	tokens := service.NewTokenIssuer(service.TokenConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.JWT.TTL,
	})
	authService := service.NewAuthService(
		userRepo,
		tokens,
		redisdb.NewRevocationStore(rdb),
		service.ProviderConfig{
			JWTSecret: cfg.Provider.JWTSecret,
			Audience:  cfg.Provider.Audience,
		},
		log,
	)

	e := api.NewRouter(cfg, log, db, rdb, api.Services{
		Auth:    authService,
		Users:   service.NewUserService(userRepo, log),
		Books:   service.NewBookService(bookRepo, log),
		Entries: service.NewReadingEntryService(entryRepo, userRepo, bookRepo, log),
	})

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
		os.Exit(1)
	}
}
