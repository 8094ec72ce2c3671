package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Values set here override the environment.
type YAMLConfig struct {
	Sources SourcesConfig `yaml:"sources"`
	Site    SiteConfig    `yaml:"site"`
}

// SourcesConfig locates the two datasets.
type SourcesConfig struct {
	Info    string `yaml:"info"`
	Symbols string `yaml:"symbols"`
	DataDir string `yaml:"data_dir,omitempty"`
}

// SiteConfig defines branding shown on every page.
type SiteConfig struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	Footer  string `yaml:"footer"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	return ParseYAMLConfig(data)
}

// ParseYAMLConfig decodes a config file body.
func ParseYAMLConfig(data []byte) (*YAMLConfig, error) {
	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply copies every non-empty value onto cfg.
func (y *YAMLConfig) Apply(cfg *Config) {
	if y == nil {
		return
	}
	setIfNotEmpty(&cfg.InfoSource, y.Sources.Info)
	setIfNotEmpty(&cfg.SymbolSource, y.Sources.Symbols)
	setIfNotEmpty(&cfg.DataDir, y.Sources.DataDir)
	setIfNotEmpty(&cfg.SiteTitle, y.Site.Title)
	setIfNotEmpty(&cfg.SiteTagline, y.Site.Tagline)
	setIfNotEmpty(&cfg.SiteFooter, y.Site.Footer)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
