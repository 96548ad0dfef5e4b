// Package config loads server settings from an optional YAML file with
// environment-variable overrides for the database connection.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Database selects the SQL driver and its connection string.
type Database struct {
	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// Config holds all server settings.
type Config struct {
	Addr       string   `yaml:"addr"`
	PublicDir  string   `yaml:"public_dir"`
	Database   Database `yaml:"database"`
	SessionTTL string   `yaml:"session_ttl"`
}

// Default returns the configuration used when no file or environment
// overrides are present: an embedded sqlite database next to the binary.
func Default() Config {
	return Config{
		Addr:      ":3000",
		PublicDir: "public",
		Database: Database{
			Driver: "sqlite",
			DSN:    "accountability.db",
		},
		SessionTTL: "24h",
	}
}

// Load reads the YAML file at path (skipped when path is empty), then
// applies environment overrides. DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and
// DB_NAME together switch the store to Postgres.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	if _, err := cfg.TTL(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TTL parses the session lifetime.
func (c Config) TTL() (time.Duration, error) {
	ttl, err := time.ParseDuration(c.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid session_ttl %q: %w", c.SessionTTL, err)
	}
	return ttl, nil
}

func applyEnv(cfg *Config) {
	if addr := os.Getenv("ACCOUNTABILITY_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	if host != "" && port != "" && user != "" && password != "" && name != "" {
		cfg.Database.Driver = "postgres"
		cfg.Database.DSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, name)
	}
}
