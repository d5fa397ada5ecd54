// Command hirehive runs the HireHive API: authentication, role authorization
// and the job board resources behind them.
//
// @title                       HireHive API
// @version                     1.0
// @description                 Authentication, role authorization and job board resources for HireHive.
// @host                        localhost:8080
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirehive/hirehive-api/internal/api"
	"github.com/hirehive/hirehive-api/internal/api/handler"
	"github.com/hirehive/hirehive-api/internal/core/ports"
	"github.com/hirehive/hirehive-api/internal/core/service"
	mongostore "github.com/hirehive/hirehive-api/internal/infrastructure/db/mongo"
	redisstore "github.com/hirehive/hirehive-api/internal/infrastructure/db/redis"
	sqlstore "github.com/hirehive/hirehive-api/internal/infrastructure/db/sql"
	"github.com/hirehive/hirehive-api/internal/infrastructure/queue"
	"github.com/hirehive/hirehive-api/internal/infrastructure/security"
	"github.com/hirehive/hirehive-api/internal/pkg/config"
	"github.com/hirehive/hirehive-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "hirehive-api",
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SecretGenerated {
		log.Warn().Msg("JWT_SECRET not set, using a random per-process secret; tokens will not survive a restart")
	}

	// --- Credential store ---
	db, err := sqlstore.Connect(ctx, sqlstore.Config{
		Driver:          cfg.SQL.Driver,
		DSN:             cfg.SQL.DSN,
		MaxOpenConns:    cfg.SQL.MaxOpenConns,
		ConnMaxLifetime: cfg.SQL.ConnMaxLifetime,
	}, logger.Component("gorm"))
	if err != nil {
		return err
	}
	defer func() { _ = sqlstore.Close(db) }()

	accounts := sqlstore.NewAccountRepository(db)
	if err := accounts.EnsureSchema(ctx); err != nil {
		return err
	}
	jobs := sqlstore.NewJobRepository(db)
	if err := jobs.EnsureSchema(ctx); err != nil {
		return err
	}
	checks := []handler.DependencyCheck{handler.SQLCheck(db)}

	// --- Token deny-list (optional) ---
	var revocations ports.RevocationStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
		revocations = redisstore.NewRevocationStore(rdb)
		checks = append(checks, handler.RedisCheck(rdb))
	} else {
		log.Warn().Msg("REDIS_ADDR not set, token revocation disabled")
	}

	// --- Activity log (optional) ---
	var (
		activity   ports.ActivityRecorder = queue.NopRecorder{}
		dispatcher *queue.Dispatcher
	)
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		repo := mongostore.NewActivityRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("activity index creation failed")
		}
		dispatcher = queue.NewDispatcher(cfg.Activity.Workers, repo, logger.Component("activity"))
		dispatcher.Start(workerCtx)
		activity = dispatcher
		checks = append(checks, handler.MongoCheck(mdb))
	} else {
		log.Info().Msg("MONGO_URI not set, activity log disabled")
	}

	// --- Security ---
	tokens, err := security.NewJWTManager(security.JWTConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		Issuer: cfg.Auth.JWTIssuer,
		TTL:    security.DefaultTokenTTL,
	})
	if err != nil {
		return err
	}
	hasher := security.NewBcryptHasher(security.DefaultBcryptCost)
	sessions := service.NewSessionVerifier(tokens, revocations, logger.Component("session"))

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Log:            log,
		AuthService:    service.NewAuthService(accounts, hasher, tokens, tokens, revocations, activity, logger.Component("auth")),
		AccountService: service.NewAccountService(accounts),
		JobService:     service.NewJobService(jobs, activity, logger.Component("jobs")),
		Sessions:       sessions,
		HealthChecks:   checks,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	if dispatcher != nil {
		stopWorkers()
		dispatcher.Wait()
	}
	log.Info().Msg("server stopped cleanly")
	return nil
}
