package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Database holds the connection settings for the relational store.
type Database struct {
	Driver   string `env:"DB_DRIVER" envDefault:"mysql"`
	User     string `env:"DB_USER" envDefault:"root"`
	Password string `env:"DB_PASSWORD" envDefault:"password"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"3306"`
	Name     string `env:"DB_NAME" envDefault:"blog_db"`
}

// Config is the full process configuration, sourced from environment variables.
type Config struct {
	Port     int `env:"PORT" envDefault:"8080"`
	Database Database
}

// Load parses configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN builds the driver-specific connection string.
func (d Database) DSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			d.Host, d.User, d.Password, d.Name, d.Port)
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Name)
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
