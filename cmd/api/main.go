package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opsdesk/business-ops/internal/api"
	"github.com/opsdesk/business-ops/internal/core/ports"
	mongodb "github.com/opsdesk/business-ops/internal/infrastructure/db/mongo"
	redisdb "github.com/opsdesk/business-ops/internal/infrastructure/db/redis"
	"github.com/opsdesk/business-ops/internal/pkg/config"
	"github.com/opsdesk/business-ops/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := bootstrap(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("database bootstrap failed")
	}

	e := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		MaxAttempts:    cfg.Throttle.MaxAttempts,
		ThrottleWindow: cfg.Throttle.Window,
		Log:            log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// bootstrap creates indexes and raises the quote sequence counter past any
// pre-counter data, so atomic allocation continues the existing numbering.
func bootstrap(ctx context.Context, db *mongo.Database) error {
	userRepo := mongodb.NewUserRepository(db)
	ruleRepo := mongodb.NewLoginRuleRepository(db)
	auditRepo := mongodb.NewAuditLogRepository(db)
	businessRepo := mongodb.NewBusinessRepository(db)
	quoteRepo := mongodb.NewQuoteRepository(db)
	seqRepo := mongodb.NewSequenceRepository(db)

	for _, ensure := range []func(context.Context) error{
		userRepo.EnsureIndexes,
		ruleRepo.EnsureIndexes,
		auditRepo.EnsureIndexes,
		businessRepo.EnsureIndexes,
		quoteRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return err
		}
	}

	floor, err := quoteRepo.MaxQSIDNumber(ctx)
	if err != nil {
		return err
	}
	return seqRepo.Seed(ctx, ports.SequenceQuotes, floor)
}
