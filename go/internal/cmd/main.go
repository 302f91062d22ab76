package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pick6/go/internal/auth"
	"github.com/mcdev12/pick6/go/internal/events"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	cfg, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runMigrations(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	pool, err := setupDatabase(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	eventsCfg := events.DefaultConfig()
	eventsCfg.URL = getEnv("NATS_URL", cfg.NATS.URL)
	eventsCfg.SubjectPrefix = cfg.NATS.SubjectPrefix
	publisher, err := events.NewPublisher(eventsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to NATS")
	}
	defer publisher.Close()

	ttl, err := cfg.TokenTTLDuration()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid auth.token_ttl")
	}
	authn := auth.NewAuthenticator([]byte(secret), cfg.Auth.Issuer, ttl, clockwork.NewRealClock())

	services, err := setupServices(pool, publisher, authn, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to wire services")
	}

	go services.Manager.Start(ctx)
	if err := services.Consumer.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start gateway consumer")
	}
	defer services.Consumer.Stop()

	go services.Refresher.Run(ctx)

	srv := setupServer(cfg, services, authn)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
