package main

import (
	"filmorate/proj/internal/config"
	"filmorate/proj/internal/lib/decoder"
	"filmorate/proj/internal/lib/ratelimit"
	"filmorate/proj/internal/lib/validator"
	"filmorate/proj/internal/services"
	"log/slog"
)

type Application struct {
	cfg      *config.Config
	log      *slog.Logger
	Http     *Http
	services *services.Services
	query    *decoder.QueryDecoder
	// nil when rate limiting is disabled
	limiter ratelimit.Limiter
}

func NewApplication(cfg *config.Config, log *slog.Logger, storage services.Storage, limiter ratelimit.Limiter) *Application {
	return &Application{
		cfg:      cfg,
		log:      log,
		services: services.New(log, validator.New(), storage),
		query:    decoder.New(),
		limiter:  limiter,
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
}
