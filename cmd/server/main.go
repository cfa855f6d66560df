package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/paktrade/holdings-api/internal/api"
	"github.com/paktrade/holdings-api/internal/core/service"
	mongodb "github.com/paktrade/holdings-api/internal/infrastructure/db/mongo"
	redisdb "github.com/paktrade/holdings-api/internal/infrastructure/db/redis"
	"github.com/paktrade/holdings-api/internal/infrastructure/queue"
	"github.com/paktrade/holdings-api/internal/pkg/config"
	"github.com/paktrade/holdings-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") != "production",
	})

	cfg, err := config.Load(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("configuration failed")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
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

	if err := mongodb.NewAccountRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("account indexes failed")
	}
	if err := mongodb.NewHoldingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("holding indexes failed")
	}
	if err := mongodb.NewOrderRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("order indexes failed")
	}

	auditService := service.NewAuditService(mongodb.NewAuditRepository(db), log)
	audit := queue.NewDispatcher(0, auditService, log)
	audit.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, audit, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting holdings API")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
