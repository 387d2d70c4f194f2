package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/logger"
	"github.com/spf13/viper"
)

const (
	EnvPrefix        = "MLB_GAMEDATA"
	ConfigName       = "mlb-gamedata"
	DefaultUserAgent = "mlb-gamedata/1.0 (github.com/pfrederiksen/mlb-gamedata)"

	keyBaseURL   = "base_url"
	keyUserAgent = "user_agent"
	keyTimeout   = "timeout"
	keyLogLevel  = "log_level"
	keyStripMode = "strip_mode"
)

// Config holds runtime configuration for a single run.
type Config struct {
	BaseURL   string
	UserAgent string
	// Timeout of 0 leaves the HTTP client without a deadline.
	Timeout   time.Duration
	LogLevel  logger.Level
	StripMode gameday.StripMode
}

// Load reads .env, an optional config file and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := newViper()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/" + ConfigName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return fromViper(v)
}

// LoadFile reads configuration from an explicit file plus the environment.
func LoadFile(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(keyBaseURL, gameday.DefaultBaseURL)
	v.SetDefault(keyUserAgent, DefaultUserAgent)
	v.SetDefault(keyTimeout, time.Duration(0))
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyStripMode, gameday.StripPerRecord.String())
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	timeout := v.GetDuration(keyTimeout)
	if timeout < 0 {
		return Config{}, fmt.Errorf("invalid %s: %s (must not be negative)", keyTimeout, timeout)
	}

	level, err := logger.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}

	mode, err := gameday.ParseStripMode(v.GetString(keyStripMode))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", keyStripMode, err)
	}

	baseURL := v.GetString(keyBaseURL)
	if baseURL == "" {
		baseURL = gameday.DefaultBaseURL
	}

	return Config{
		BaseURL:   baseURL,
		UserAgent: v.GetString(keyUserAgent),
		Timeout:   timeout,
		LogLevel:  level,
		StripMode: mode,
	}, nil
}
