package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ELEVATOR_"

// Load builds a Config from the defaults, then the YAML file at path, then
// the .env file at envFile, then the process environment. Empty paths are
// skipped. The result is validated before it is returned.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	env := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, fmt.Errorf("read env file: %w", err)
		}
		env = fileEnv
	}
	if err := applyEnv(&cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := env[key]
		return v, ok
	}); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"CARS", &cfg.Cars},
		{"MAX_FLOORS", &cfg.MaxFloors},
		{"MAX_CAPACITY", &cfg.MaxCapacity},
		{"EVENT_BUFFER", &cfg.EventBuffer},
	}
	for _, f := range ints {
		raw, ok := lookup(envPrefix + f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, f.key, err)
		}
		*f.dst = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"MOVEMENT_DELAY", &cfg.MovementDelay},
		{"DOOR_DWELL", &cfg.DoorDwell},
		{"DOOR_CLOSE_DELAY", &cfg.DoorCloseDelay},
	}
	for _, f := range durations {
		raw, ok := lookup(envPrefix + f.key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, f.key, err)
		}
		*f.dst = d
	}

	if raw, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = raw
	}
	return nil
}
