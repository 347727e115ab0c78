// @title        BloodConnect API
// @version      1.0
// @description  Donor and hospital registration, claim-token authentication and blood availability search.
// @BasePath     /
//
// @securityDefinitions.apikey  ClaimToken
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bloodconnect/donor-match-api/internal/api"
	"github.com/bloodconnect/donor-match-api/internal/api/handler"
	"github.com/bloodconnect/donor-match-api/internal/core/service"
	"github.com/bloodconnect/donor-match-api/internal/infrastructure/crypto"
	mongostore "github.com/bloodconnect/donor-match-api/internal/infrastructure/db/mongo"
	redisstore "github.com/bloodconnect/donor-match-api/internal/infrastructure/db/redis"
	"github.com/bloodconnect/donor-match-api/internal/infrastructure/token"
	"github.com/bloodconnect/donor-match-api/internal/pkg/config"
	"github.com/bloodconnect/donor-match-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(rootCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "bloodconnect-api",
		Env:     cfg.Env,
	})

	// ---- MongoDB ----
	mongoClient, db, err := mongostore.Connect(rootCtx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
	}()
	if err := mongostore.EnsureIndexes(rootCtx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes failed")
	}
	log.Info().Str("db", cfg.Mongo.Database).Msg("mongo connected")

	// ---- Redis ----
	rdb, err := redisstore.Connect(rootCtx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// ---- Services ----
	donorRepo := mongostore.NewDonorRepository(db)
	hospitalRepo := mongostore.NewHospitalRepository(db)
	cache := redisstore.NewMatchCache(rdb, cfg.Redis.MatchCacheTTL)
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	e := api.NewRouter(api.Deps{
		Donors:    service.NewDonorService(donorRepo, hasher, tokens, cache, log),
		Hospitals: service.NewHospitalService(hospitalRepo, hasher, tokens, cache, log),
		Matches:   service.NewMatchService(donorRepo, hospitalRepo, cache, log),
		Tokens:    tokens,
		Health: []handler.Dependency{
			{Name: "mongodb", Ping: func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }},
			{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		},
		Log:       log,
		PublicDir: cfg.PublicDir,
	})

	// ---- HTTP server ----
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("http server listening")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-rootCtx.Done()
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
