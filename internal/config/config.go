package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvCredentials names the variable holding the JSON service-account key for
// the document store.
const EnvCredentials = "FIREBASE_SERVICE_ACCOUNT_KEY"

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// TransportConfig selects between the HTTP server and the MCP stdio server.
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// StorageConfig selects and configures the item store.
type StorageConfig struct {
	// Driver is one of auto, firestore, sqlite, postgres, memory.
	Driver string `yaml:"driver"`
	// Credentials is the raw service-account JSON. Usually supplied through
	// FIREBASE_SERVICE_ACCOUNT_KEY rather than the file.
	Credentials string          `yaml:"credentials"`
	Firestore   FirestoreConfig `yaml:"firestore"`
	SQLite      SQLiteConfig    `yaml:"sqlite"`
	Postgres    PostgresConfig  `yaml:"postgres"`
}

type FirestoreConfig struct {
	// Project overrides the project id found in the credentials.
	Project    string `yaml:"project"`
	Collection string `yaml:"collection"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Storage: StorageConfig{
			Driver: "auto",
			Firestore: FirestoreConfig{
				Collection: "items",
			},
			SQLite: SQLiteConfig{
				Path: "itemboard.db",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("ITEMBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("ITEMBOARD_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ITEMBOARD_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ITEMBOARD_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("ITEMBOARD_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if driver := os.Getenv("ITEMBOARD_STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if creds := os.Getenv(EnvCredentials); creds != "" {
		cfg.Storage.Credentials = creds
	}
	if project := os.Getenv("ITEMBOARD_FIRESTORE_PROJECT"); project != "" {
		cfg.Storage.Firestore.Project = project
	}
	if collection := os.Getenv("ITEMBOARD_FIRESTORE_COLLECTION"); collection != "" {
		cfg.Storage.Firestore.Collection = collection
	}
	if path := os.Getenv("ITEMBOARD_SQLITE_PATH"); path != "" {
		cfg.Storage.SQLite.Path = path
	}
	if dsn := os.Getenv("ITEMBOARD_POSTGRES_DSN"); dsn != "" {
		cfg.Storage.Postgres.DSN = dsn
	}
	if level := os.Getenv("ITEMBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("ITEMBOARD_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Transport.Mode = strings.ToLower(strings.TrimSpace(c.Transport.Mode))
	switch c.Transport.Mode {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = "auto"
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
