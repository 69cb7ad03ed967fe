package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Cache    *Cache
	Auth     *Auth
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

// Cache configures the optional dashboard statistics cache. An empty address
// disables it.
type Cache struct {
	Addr     string `env:"REDIS_ADDRESS"`
	StatsTTL int    `env:"STATS_CACHE_TTL"`
}

// Auth carries the hex-encoded PASETO V4 symmetric key shared with the
// token issuer. When empty a per-process key is generated.
type Auth struct {
	TokenKey string `env:"TOKEN_KEY"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var cache Cache
	var authConf Auth
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&cache.Addr, "c", "", "Redis address for the stats cache")
	flag.IntVar(&cache.StatsTTL, "t", 30, "Stats cache TTL, seconds")
	flag.StringVar(&authConf.TokenKey, "k", "", "Token key, hex")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&cache)
	if err != nil {
		return nil, fmt.Errorf("error parsing cache config: %w", err)
	}
	err = env.Parse(&authConf)
	if err != nil {
		return nil, fmt.Errorf("error parsing auth config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Cache:    &cache,
		Auth:     &authConf,
		App:      &app,
	}

	return &config, nil
}
