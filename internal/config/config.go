package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"srfibrowse/internal/validation"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string

	// Server
	ServerAddr string

	// Data sources: http(s) URLs or local paths
	InfoSource   string
	SymbolSource string
	DataDir      string // served at /srfi-map.json and /srfi-to-symbol-map.json when set

	FetchTimeout        time.Duration // 0 disables the timeout
	SourceCheckInterval time.Duration // 0 disables the background checker

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Rate limiting
	RedisURL     string // shared limiter storage; in-memory when empty
	RateLimitMax int    // requests per minute per IP

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "SRFI Browse"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		ServerAddr:          getEnv("SERVER_ADDR", ":3000"),
		InfoSource:          getEnv("INFO_SOURCE", "data/srfi-map.json"),
		SymbolSource:        getEnv("SYMBOL_SOURCE", "data/srfi-to-symbol-map.json"),
		DataDir:             getEnv("DATA_DIR", ""),
		FetchTimeout:        getDuration("FETCH_TIMEOUT", 0),
		SourceCheckInterval: getDuration("SOURCE_CHECK_INTERVAL", 0),
		TLSEnabled:          getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:         getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:          getEnv("TLS_KEY_FILE", ""),
		RedisURL:            getEnv("REDIS_URL", ""),
		RateLimitMax:        getInt("RATE_LIMIT_MAX", 100),
		CORSOrigins:         getEnv("CORS_ORIGINS", ""),

		SiteTitle:   getEnv("SITE_TITLE", "SRFI Browse"),
		SiteTagline: getEnv("SITE_TAGLINE", "Symbols defined by each Scheme Request for Implementation"),
		SiteFooter:  getEnv("SITE_FOOTER", "SRFI Browse"),
	}
}

// Validate checks the values that Load cannot default safely.
func (c *Config) Validate() error {
	if c.InfoSource == "" {
		return fmt.Errorf("INFO_SOURCE is required")
	}
	if c.SymbolSource == "" {
		return fmt.Errorf("SYMBOL_SOURCE is required")
	}
	for name, loc := range map[string]string{"INFO_SOURCE": c.InfoSource, "SYMBOL_SOURCE": c.SymbolSource} {
		if valid, msg := validation.ValidateSourceLocation(loc); !valid {
			return fmt.Errorf("%s: %s", name, msg)
		}
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("FETCH_TIMEOUT cannot be negative")
	}
	if c.SourceCheckInterval < 0 {
		return fmt.Errorf("SOURCE_CHECK_INTERVAL cannot be negative")
	}
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE are required when TLS_ENABLED is set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
