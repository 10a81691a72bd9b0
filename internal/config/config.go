// Package config loads service settings from defaults, an optional YAML file,
// a .env file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// ConfigPathEnv names an explicit YAML config file.
	ConfigPathEnv = "FLIGHTS_CONFIG"
	// DefaultConfigFile is read when present and no explicit path is given.
	DefaultConfigFile = "config.yaml"

	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	DatabaseURL      string `koanf:"database_url"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUser     string `koanf:"postgres_user"`
	PostgresPassword string `koanf:"postgres_password"`
	PostgresHost     string `koanf:"postgres_host"`
	PostgresPort     int    `koanf:"postgres_port"`
	DBMaxOpenConns   int    `koanf:"db_max_open_conns"`

	Port        string `koanf:"port"`
	Environment string `koanf:"environment"`
	Store       string `koanf:"store"`

	HighOccupancyThreshold float64 `koanf:"high_occupancy_threshold"`
	MinAltitude            int     `koanf:"min_altitude"`
	ImportBatchSize        int     `koanf:"import_batch_size"`
}

func defaults() map[string]any {
	return map[string]any{
		"database_url":             "",
		"postgres_db":              "flights",
		"postgres_user":            "flights",
		"postgres_password":        "",
		"postgres_host":            "localhost",
		"postgres_port":            5432,
		"db_max_open_conns":        10,
		"port":                     "8080",
		"environment":              "development",
		"store":                    StorePostgres,
		"high_occupancy_threshold": 0.85,
		"min_altitude":             1000,
		"import_batch_size":        50,
	}
}

// Load resolves the configuration. path may be empty, in which case
// $FLIGHTS_CONFIG and then ./config.yaml are tried.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	k := koanf.New(".")
	known := defaults()

	if err := k.Load(confmap.Provider(known, "."), nil); err != nil {
		return nil, fmt.Errorf("load config: defaults: %w", err)
	}

	if path = findConfigFile(path); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config: read %q: %w", path, err)
		}
	}

	// DATABASE_URL -> database_url; variables outside the known key set are ignored.
	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if _, ok := known[key]; !ok {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("load config: env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	fallback := ""
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		fallback = DefaultConfigFile
	}
	return Get(ConfigPathEnv, fallback)
}

func (c *Config) Validate() error {
	if c.HighOccupancyThreshold <= 0 || c.HighOccupancyThreshold > 1 {
		return fmt.Errorf("high_occupancy_threshold must be in (0, 1], got %v", c.HighOccupancyThreshold)
	}
	if c.MinAltitude < 0 {
		return fmt.Errorf("min_altitude must be non-negative, got %d", c.MinAltitude)
	}
	if c.ImportBatchSize < 1 {
		return fmt.Errorf("import_batch_size must be positive, got %d", c.ImportBatchSize)
	}
	if c.Store != StorePostgres && c.Store != StoreMemory {
		return fmt.Errorf("store must be %q or %q, got %q", StorePostgres, StoreMemory, c.Store)
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port is required")
	}
	return nil
}

// DatabaseDSN returns DATABASE_URL, or a postgres URL assembled from the
// POSTGRES_* settings when it is unset.
func (c *Config) DatabaseDSN() string {
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:   c.PostgresHost + ":" + strconv.Itoa(c.PostgresPort),
		Path:   "/" + c.PostgresDB,
	}
	return u.String()
}
