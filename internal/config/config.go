package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Order    OrderConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type OrderConfig struct {
	// Store selects the order backend: "memory" or "mysql".
	Store             string
	PaymentBaseURL    string
	Retention         time.Duration
	RetentionSchedule string
}

type CatalogConfig struct {
	// File is an optional YAML file replacing the built-in demo catalog.
	File string
}

const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

// Load reads configuration from the environment, an optional .env file and an optional
// config file named by CONFIG_FILE. Environment variables win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "10s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "checkout")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "checkout")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ORDER_STORE", StoreMemory)
	v.SetDefault("PAYMENT_BASE_URL", "https://payment.example.com/pay")
	v.SetDefault("ORDER_RETENTION", "24h")
	v.SetDefault("ORDER_RETENTION_SCHEDULE", "@every 10m")
	v.SetDefault("CATALOG_FILE", "")

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	durations := map[string]time.Duration{}
	for _, key := range []string{"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "DB_CONN_MAX_LIFETIME", "ORDER_RETENTION"} {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", key, err)
		}
		durations[key] = d
	}

	store := v.GetString("ORDER_STORE")
	if store != StoreMemory && store != StoreMySQL {
		return nil, fmt.Errorf("unsupported ORDER_STORE %q", store)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetInt("SERVER_PORT"),
			ReadTimeout:     durations["SERVER_READ_TIMEOUT"],
			WriteTimeout:    durations["SERVER_WRITE_TIMEOUT"],
			ShutdownTimeout: durations["SERVER_SHUTDOWN_TIMEOUT"],
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: durations["DB_CONN_MAX_LIFETIME"],
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Order: OrderConfig{
			Store:             store,
			PaymentBaseURL:    v.GetString("PAYMENT_BASE_URL"),
			Retention:         durations["ORDER_RETENTION"],
			RetentionSchedule: v.GetString("ORDER_RETENTION_SCHEDULE"),
		},
		Catalog: CatalogConfig{
			File: v.GetString("CATALOG_FILE"),
		},
	}

	return cfg, nil
}
