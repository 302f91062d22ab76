package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/pick6/go/internal/auth"
)

func setupServer(cfg *Config, services *Services, authn *auth.Authenticator) *http.Server {
	mux := http.NewServeMux()

	// Public routes: login and health live outside the auth middleware.
	services.Users.RegisterPublic(mux)
	setupHealthCheck(mux)

	// Everything else requires a bearer token.
	protected := http.NewServeMux()
	services.Users.Register(protected)
	services.Leagues.Register(protected)
	services.Draft.Register(protected)
	services.Standings.Register(protected)
	services.Games.Register(protected)
	services.Schools.Register(protected)
	services.Gateway.Register(protected)
	mux.Handle("/", authn.Middleware(protected))

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(mux)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", getEnv("PORT", cfg.Server.Port)),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
