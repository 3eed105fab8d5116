package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	envHost              = "SNAKE_HOST"
	envPort              = "SNAKE_PORT"
	envHostKeyPath       = "SNAKE_HOST_KEY_PATH"
	envMaxConnsPerIP     = "SNAKE_MAX_CONNECTIONS_PER_IP"
	envDBPath            = "SNAKE_DB_PATH"
	envLogLevel          = "SNAKE_LOG_LEVEL"
	envLogFile           = "SNAKE_LOG_FILE"
	envAutopilot         = "SNAKE_AUTOPILOT"
	envFoodAvoidsSnake   = "SNAKE_FOOD_AVOIDS_SNAKE"
	envSeed              = "SNAKE_SEED"
	defaultEnvFile       = ".env"
	defaultHostKeyPath   = ".ssh/id_ed25519"
	defaultMaxConnsPerIP = 2
)

type Config struct {
	Host                string
	Port                string
	HostKeyPath         string
	MaxConnectionsPerIP int
	// DBPath enables the leaderboard when set.
	DBPath          string
	LogLevel        log.Level
	LogFile         string
	Autopilot       string
	FoodAvoidsSnake bool
	Seed            int64
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", defaultEnvFile, err)
	}
	return LoadFrom(os.Getenv)
}

// LoadFrom builds a Config from getenv, applying defaults for unset keys.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Config{
		Host:        getEnv(getenv, envHost, "0.0.0.0"),
		Port:        getEnv(getenv, envPort, "6996"),
		HostKeyPath: getEnv(getenv, envHostKeyPath, defaultHostKeyPath),
		DBPath:      getenv(envDBPath),
		LogFile:     getEnv(getenv, envLogFile, "snake.log"),
		Autopilot:   getenv(envAutopilot),
	}

	var err error
	if cfg.MaxConnectionsPerIP, err = getInt(getenv, envMaxConnsPerIP, defaultMaxConnsPerIP); err != nil {
		return Config{}, err
	}
	if cfg.MaxConnectionsPerIP < 1 {
		return Config{}, fmt.Errorf("%s must be at least 1, got %d", envMaxConnsPerIP, cfg.MaxConnectionsPerIP)
	}

	if cfg.LogLevel, err = log.ParseLevel(getEnv(getenv, envLogLevel, "info")); err != nil {
		return Config{}, fmt.Errorf("%s: %w", envLogLevel, err)
	}

	if raw := getenv(envFoodAvoidsSnake); raw != "" {
		if cfg.FoodAvoidsSnake, err = strconv.ParseBool(raw); err != nil {
			return Config{}, fmt.Errorf("%s: %w", envFoodAvoidsSnake, err)
		}
	}

	if raw := getenv(envSeed); raw != "" {
		if cfg.Seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
	}

	return cfg, nil
}

// Address is the SSH listen address.
func (c Config) Address() string {
	return c.Host + ":" + c.Port
}

func getEnv(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(getenv func(string) string, key string, def int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
