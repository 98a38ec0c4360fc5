package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load .env (if present) into the process environment
//  2. Read the YAML file, expanding {{.VAR}} environment references
//  3. Unmarshal over the built-in defaults
//  4. Validate the result
//
// path may be empty; the engine then runs on defaults plus environment.
func Initialize(path string) (*Config, error) {
	// Ignore a missing .env; deployments usually inject real env vars.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("config file not found: %s", path)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		data = ExpandEnv(data)
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration initialized",
		"config_file", path,
		"llm_provider", cfg.LLM.Provider,
		"workers", cfg.Workers.WorkerCount,
		"server_port", cfg.Server.Port)
	return cfg, nil
}
