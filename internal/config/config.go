package config

import (
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Reddit Reddit `yaml:"reddit"`
	Log    Log    `yaml:"log"`
}

// Reddit holds collector settings
type Reddit struct {
	Mode            string        `yaml:"mode" env:"COLLECTOR_MODE" env-default:"public"`
	BaseURL         string        `yaml:"base_url" env:"REDDIT_BASE_URL" env-default:"https://www.reddit.com"`
	UserAgent       string        `yaml:"user_agent" env:"REDDIT_USER_AGENT" env-default:"go:reddit-hotwalk:v1.0 (by /u/hotwalk)"`
	Timeout         time.Duration `yaml:"timeout" env:"REDDIT_TIMEOUT" env-default:"10s"`
	RequestInterval time.Duration `yaml:"request_interval" env:"REDDIT_REQUEST_INTERVAL" env-default:"1s"`

	// Only used in api mode
	ClientID     string `yaml:"client_id" env:"REDDIT_CLIENT_ID"`
	ClientSecret string `yaml:"client_secret" env:"REDDIT_CLIENT_SECRET"`
	Username     string `yaml:"username" env:"REDDIT_USERNAME"`
	Password     string `yaml:"password" env:"REDDIT_PASSWORD"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// SlogLevel parses Level, falling back to info
func (l Log) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Load reads .env (if present) and the environment
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file, environment overrides it
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
