package main

import (
	"context"
	"errors"
	"flag"
	"filmorate/proj/internal/config"
	"filmorate/proj/internal/lib/logger"
	"filmorate/proj/internal/lib/ratelimit"
	"filmorate/proj/internal/services"
	"filmorate/proj/internal/storage/memory"
	"filmorate/proj/internal/storage/postgres"
	pgmodels "filmorate/proj/internal/storage/postgres/models"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	storage, closeStorage, err := setupStorage(cfg, log)
	if err != nil {
		log.Error("failed to set up storage", "storage", cfg.Storage, "reason", err.Error())
		os.Exit(1)
	}
	defer closeStorage()

	limiter, closeLimiter, err := setupLimiter(cfg, log)
	if err != nil {
		log.Error("failed to set up rate limiter", "reason", err.Error())
		os.Exit(1)
	}
	defer closeLimiter()

	app := NewApplication(cfg, log, storage, limiter)
	if err := app.serve(); err != nil {
		app.log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}

func setupStorage(cfg *config.Config, log *slog.Logger) (services.Storage, func(), error) {
	if cfg.Storage == config.StorageMemory {
		log.Info("using in-memory storage, data is lost on restart")
		return services.MemoryStorage(memory.New(cfg.DB.Seed)), func() {}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		return services.Storage{}, nil, err
	}
	if err := db.Init(ctx, cfg.DB.Seed); err != nil {
		db.Close()
		return services.Storage{}, nil, err
	}
	log.Info("database connection established")
	return services.PostgresStorage(pgmodels.New(db)), db.Close, nil
}

func setupLimiter(cfg *config.Config, log *slog.Logger) (ratelimit.Limiter, func(), error) {
	lc := cfg.Limiter
	if !lc.Enabled {
		return nil, func() {}, nil
	}
	if lc.Redis.Addr == "" {
		local := ratelimit.NewLocal(lc.Rps, lc.Burst)
		return local, local.Stop, nil
	}
	rl, err := ratelimit.NewRedis(context.Background(), ratelimit.RedisOptions{
		Addr:     lc.Redis.Addr,
		Password: lc.Redis.Password,
		DB:       lc.Redis.DB,
		Prefix:   lc.Redis.Prefix,
		TTL:      lc.Redis.TTL,
	}, lc.Rps, lc.Burst)
	if err != nil {
		return nil, nil, err
	}
	log.Info("rate limiting through redis", "addr", lc.Redis.Addr)
	return rl, func() { rl.Close() }, nil
}
