package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the backend base URL baked in at build time:
//
//	go build -ldflags "-X github.com/jask/quizboard/internal/config.DefaultAPIURL=http://10.0.0.5/api"
var DefaultAPIURL = "http://BACKEND_IP/api"

// Config holds application configuration.
type Config struct {
	API APIConfig
	Log LogConfig
	Web WebConfig
}

// APIConfig points at the quiz backend.
type APIConfig struct {
	URL     string
	Timeout time.Duration
}

// LogConfig controls logrus output. Path is only used by the terminal UI,
// which owns stdout and stderr while running.
type LogConfig struct {
	Level string
	Path  string
}

// WebConfig holds the HTML front end's listen address.
type WebConfig struct {
	Addr string
}

// Load reads configuration from defaults, an optional TOML file and the
// environment. Env var overrides use prefix QUIZBOARD_. A .env file in the
// working directory is loaded first when present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("api.url", DefaultAPIURL)
	v.SetDefault("api.timeout", "0s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "quizboard", "quizboard.log"))
	v.SetDefault("web.addr", ":8080")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("QUIZBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "quizboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUIZBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.API.URL = strings.TrimRight(strings.TrimSpace(c.API.URL), "/")
	if c.API.URL == "" {
		return Config{}, fmt.Errorf("api.url is empty")
	}
	return c, nil
}

// Save writes cfg to the config file, creating its directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("QUIZBOARD_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "quizboard", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.url", cfg.API.URL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("web.addr", cfg.Web.Addr)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
