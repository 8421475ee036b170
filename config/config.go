// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported DB_DRIVER values.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverLibSQL   = "libsql"
)

// Config holds all application configuration.
type Config struct {
	// Store – DB_DRIVER selects the backend. For postgres either set
	// DatabaseURL directly, or the individual fields.
	DBDriver    string
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// StoreTimeout bounds every store round trip.
	StoreTimeout time.Duration

	// Admin shared secret, plaintext or bcrypt hash.
	AdminPassword     string
	AdminPasswordHash string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	// Contest
	RosterFile       string
	DisplayTZ        string
	Collation        string
	GatePollInterval time.Duration
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	cfg := FromViper(newViper())
	if err := cfg.validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// LoadStore is Load for operator tools: only the store settings must be valid.
func LoadStore() *Config {
	cfg := FromViper(newViper())
	if err := cfg.validateStore(); err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// FromViper builds a Config from v after applying defaults. It does not validate.
func FromViper(v *viper.Viper) *Config {
	// Defaults
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_USER", "speedtip")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "speedtip")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)
	v.SetDefault("DISPLAY_TZ", "Europe/Prague")
	v.SetDefault("COLLATION", "cs")
	v.SetDefault("GATE_POLL_INTERVAL", "5s")

	return &Config{
		DBDriver:          strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		DBUser:            v.GetString("DB_USER"),
		DBPass:            v.GetString("DB_PASS"),
		DBHost:            v.GetString("DB_HOST"),
		DBPort:            v.GetString("DB_PORT"),
		DBName:            v.GetString("DB_NAME"),
		DBSSLMode:         v.GetString("DB_SSLMODE"),
		StoreTimeout:      v.GetDuration("STORE_TIMEOUT"),
		AdminPassword:     v.GetString("ADMIN_PASSWORD"),
		AdminPasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		Debug:             v.GetBool("DEBUG"),
		Port:              v.GetString("PORT"),
		TLSDomains:        splitTrimmed(v.GetString("TLS_DOMAINS")),
		RosterFile:        v.GetString("ROSTER_FILE"),
		DisplayTZ:         v.GetString("DISPLAY_TZ"),
		Collation:         v.GetString("COLLATION"),
		GatePollInterval:  v.GetDuration("GATE_POLL_INTERVAL"),
	}
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	switch c.DBDriver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	case DriverSQLite:
		return "file:speedtip.db?_pragma=busy_timeout(5000)"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// DisplayLocation resolves DISPLAY_TZ, falling back to the local zone.
func (c *Config) DisplayLocation() *time.Location {
	if c.DisplayTZ == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.DisplayTZ)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) validate() error {
	if err := c.validateStore(); err != nil {
		return err
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		return errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}
	if c.GatePollInterval <= 0 {
		return errors.New("GATE_POLL_INTERVAL must be positive")
	}
	if !c.Debug && len(c.TLSDomains) == 0 {
		return errors.New("TLS_DOMAINS must be set outside debug mode")
	}
	return nil
}

func (c *Config) validateStore() error {
	switch c.DBDriver {
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" && c.DBPass == "" {
			return errors.New("DATABASE_URL or DB_PASS must be set")
		}
	case DriverLibSQL:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL must be set for libsql")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.StoreTimeout <= 0 {
		return errors.New("STORE_TIMEOUT must be positive")
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
