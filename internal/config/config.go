package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Debug   bool    `yaml:"debug" env:"FILMORATE_DEBUG"`
	Storage string  `yaml:"storage" env:"FILMORATE_STORAGE" env-default:"postgres"`
	Limiter Limiter `yaml:"limiter"`
	Server  Server  `yaml:"server"`
	DB      DB      `yaml:"db"`
}

type Limiter struct {
	Enabled bool    `yaml:"enabled" env:"FILMORATE_LIMITER_ENABLED"`
	Rps     float64 `yaml:"rps" env-default:"20"`
	Burst   int     `yaml:"burst" env-default:"5"`
	Redis   Redis   `yaml:"redis"`
}

// Redis is optional. With an empty Addr requests are limited in process.
type Redis struct {
	Addr     string        `yaml:"addr" env:"FILMORATE_REDIS_ADDR"`
	Password string        `yaml:"password" env:"FILMORATE_REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	Prefix   string        `yaml:"prefix" env-default:"filmorate:ratelimit:"`
	TTL      time.Duration `yaml:"ttl" env-default:"1m"`
}

type Server struct {
	Port string `yaml:"port" env:"FILMORATE_PORT" env-default:"8080"`
	Host string `yaml:"host" env:"FILMORATE_HOST" env-default:"localhost"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"20s"`
}

type DB struct {
	Dsn             string        `yaml:"dsn" env:"FILMORATE_DB_DSN"`
	MaxConns        int           `yaml:"max_conns" env-default:"25"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env-default:"10m"`
	Seed            bool          `yaml:"seed" env-default:"true"`
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DB.Dsn == "" {
			return fmt.Errorf("db.dsn is required for %q storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.Limiter.Enabled && (c.Limiter.Rps <= 0 || c.Limiter.Burst <= 0) {
		return fmt.Errorf("limiter rps and burst should be positive")
	}
	return nil
}

func MustLoad(configPath string) *Config {
	var cfg Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic(fmt.Errorf("config file %s not found", configPath))
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return &cfg
}
