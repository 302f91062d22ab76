package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the non-secret service settings. Secrets (JWT_SECRET,
// CFBD_API_KEY, DB_PASSWORD) come from the environment only.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Auth struct {
		Issuer   string `yaml:"issuer"`
		TokenTTL string `yaml:"token_ttl"`
	} `yaml:"auth"`
	NATS struct {
		URL           string `yaml:"url"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"nats"`
	Standings struct {
		RefreshInterval string `yaml:"refresh_interval"`
	} `yaml:"standings"`
}

func defaultConfig() *Config {
	var config Config
	config.Server.Port = "8080"
	config.Auth.Issuer = "pick6"
	config.Auth.TokenTTL = "720h"
	config.NATS.URL = "nats://localhost:4222"
	config.NATS.SubjectPrefix = "leagues.events"
	config.Standings.RefreshInterval = "5m"
	return &config
}

// loadConfig reads the YAML config at path, falling back to defaults for
// anything unset. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// TokenTTLDuration parses the configured token lifetime.
func (c *Config) TokenTTLDuration() (time.Duration, error) {
	return time.ParseDuration(c.Auth.TokenTTL)
}

// RefreshIntervalDuration parses the standings refresh cadence.
func (c *Config) RefreshIntervalDuration() (time.Duration, error) {
	return time.ParseDuration(c.Standings.RefreshInterval)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
