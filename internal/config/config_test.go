package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"INFO_SOURCE", "SYMBOL_SOURCE", "FETCH_TIMEOUT", "RATE_LIMIT_MAX", "SERVER_ADDR"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want :3000", cfg.ServerAddr)
	}
	if cfg.InfoSource != "data/srfi-map.json" {
		t.Errorf("InfoSource = %q", cfg.InfoSource)
	}
	if cfg.FetchTimeout != 0 {
		t.Errorf("FetchTimeout = %v, want no timeout", cfg.FetchTimeout)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INFO_SOURCE", "https://example.org/srfi-map.json")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("SOURCE_CHECK_INTERVAL", "not-a-duration")
	t.Setenv("RATE_LIMIT_MAX", "20")

	cfg := Load()
	if cfg.InfoSource != "https://example.org/srfi-map.json" {
		t.Errorf("InfoSource = %q", cfg.InfoSource)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.FetchTimeout)
	}
	if cfg.SourceCheckInterval != 0 {
		t.Errorf("invalid duration should fall back to 0, got %v", cfg.SourceCheckInterval)
	}
	if cfg.RateLimitMax != 20 {
		t.Errorf("RateLimitMax = %d, want 20", cfg.RateLimitMax)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			InfoSource:   "data/srfi-map.json",
			SymbolSource: "https://example.org/srfi-to-symbol-map.json",
			RateLimitMax: 100,
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing info source", func(c *Config) { c.InfoSource = "" }, true},
		{"unsupported scheme", func(c *Config) { c.SymbolSource = "ftp://example.org/x.json" }, true},
		{"http without host", func(c *Config) { c.InfoSource = "http:///x.json" }, true},
		{"zero rate limit", func(c *Config) { c.RateLimitMax = 0 }, true},
		{"negative timeout", func(c *Config) { c.FetchTimeout = -time.Second }, true},
		{"tls without cert", func(c *Config) { c.TLSEnabled = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestYAMLConfigApply(t *testing.T) {
	y, err := ParseYAMLConfig([]byte(`
sources:
  info: https://example.org/srfi-map.json
  data_dir: /srv/srfi
site:
  title: Scheme Index
`))
	if err != nil {
		t.Fatalf("ParseYAMLConfig() error: %v", err)
	}

	cfg := &Config{
		InfoSource:   "data/srfi-map.json",
		SymbolSource: "data/srfi-to-symbol-map.json",
		SiteTitle:    "SRFI Browse",
		SiteFooter:   "footer",
	}
	y.Apply(cfg)

	if cfg.InfoSource != "https://example.org/srfi-map.json" {
		t.Errorf("InfoSource = %q", cfg.InfoSource)
	}
	if cfg.SymbolSource != "data/srfi-to-symbol-map.json" {
		t.Errorf("SymbolSource should be unchanged, got %q", cfg.SymbolSource)
	}
	if cfg.DataDir != "/srv/srfi" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.SiteTitle != "Scheme Index" || cfg.SiteFooter != "footer" {
		t.Errorf("unexpected branding: %q %q", cfg.SiteTitle, cfg.SiteFooter)
	}
}

func TestLoadYAMLConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", t.TempDir()+"/absent.yaml")

	y, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if y != nil {
		t.Errorf("expected nil config, got %+v", y)
	}
	// Apply on nil is a no-op.
	y.Apply(&Config{})
}
