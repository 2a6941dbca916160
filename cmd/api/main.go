package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/talentbridge/recruitment-crm/internal/ai/gemini"
	"github.com/talentbridge/recruitment-crm/internal/api"
	"github.com/talentbridge/recruitment-crm/internal/infrastructure/config"
	mongodb "github.com/talentbridge/recruitment-crm/internal/infrastructure/db/mongo"
	"github.com/talentbridge/recruitment-crm/internal/infrastructure/db/postgres"
	redisdb "github.com/talentbridge/recruitment-crm/internal/infrastructure/db/redis"
	"github.com/talentbridge/recruitment-crm/internal/infrastructure/queue"
	"github.com/talentbridge/recruitment-crm/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Recruitment CRM API
// @version      1.0
// @description  Recruitment platform backend: candidates, companies, jobs, applications and AI-assisted matching.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Postgres ---
	pool, err := postgres.Connect(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pool.Close()

	if cfg.Postgres.RunMigrations {
		if err := postgres.RunMigrations(ctx, pool, cfg.Postgres.MigrationsDir, log); err != nil {
			log.Fatal().Err(err).Msg("postgres migrations")
		}
	}

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	for name, idx := range map[string]interface{ EnsureIndexes(context.Context) error }{
		"cv_documents":      mongodb.NewCVRepository(db),
		"messages":          mongodb.NewMessageRepository(db),
		"notifications":     mongodb.NewNotificationRepository(db),
		"match_assessments": mongodb.NewMatchRepository(db),
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("mongo indexes")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	// --- Gemini matcher ---
	generator, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini client")
	}
	matcher := gemini.NewMatcher(generator, log, cfg.Gemini.MinScore)

	// --- Notification dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, mongodb.NewNotificationRepository(db), log)
	dispatcher.Start(ctx)

	e := api.NewRouter(pool, db, rdb, matcher, dispatcher, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
