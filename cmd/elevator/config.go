package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"elevator_dispatch/internal/dispatch"
	"elevator_dispatch/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ELEVATOR"

// appConfig is everything main needs after config.yml, .env and the
// environment have been merged.
type appConfig struct {
	Port     string
	DBPath   string
	LogLevel string
	Auth     service.AuthConfig
	Dispatch dispatch.Config
	Tick     time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "elevator.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("elevator.min_floor", 0)
	v.SetDefault("elevator.max_floor", 9)
	v.SetDefault("elevator.initial_floor", 0)
	v.SetDefault("elevator.dwell", 3*time.Second)
	v.SetDefault("elevator.travel_per_floor", time.Second)
	v.SetDefault("elevator.tick", 100*time.Millisecond)
}

// loadDotEnv exports variables from an optional .env file. Variables that
// are already set in the process win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig reads configs/config.yml (optional) under configDir with
// ELEVATOR_* environment overrides.
func loadConfig(configDir string) (appConfig, error) {
	v := viper.New()
	v.AddConfigPath(configDir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return appConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := appConfig{
		Port:     v.GetString("port"),
		DBPath:   v.GetString("db.path"),
		LogLevel: v.GetString("log.level"),
		Auth: service.AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		Dispatch: dispatch.Config{
			MinFloor:           v.GetInt("elevator.min_floor"),
			MaxFloor:           v.GetInt("elevator.max_floor"),
			InitialFloor:       v.GetInt("elevator.initial_floor"),
			DwellDuration:      v.GetDuration("elevator.dwell"),
			TravelTimePerFloor: v.GetDuration("elevator.travel_per_floor"),
		},
		Tick: v.GetDuration("elevator.tick"),
	}
	if cfg.Auth.SigningKey == "" {
		return appConfig{}, errors.New("auth.signing_key is required (set ELEVATOR_AUTH_SIGNING_KEY)")
	}
	if cfg.Tick <= 0 {
		return appConfig{}, fmt.Errorf("elevator.tick must be positive, got %v", cfg.Tick)
	}
	return cfg, nil
}
