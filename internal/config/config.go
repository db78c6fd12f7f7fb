package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CatalogConfig locates the course catalog sources.
type CatalogConfig struct {
	// StoreDir is the precomputed store directory (manifest + rows + vectors).
	StoreDir string `mapstructure:"store-dir"`
	// CSVPath is the raw tabular fallback source.
	CSVPath string `mapstructure:"csv-path"`
	// Normalize embeds unit-length vectors when building the store.
	Normalize bool `mapstructure:"normalize"`
}

// Config is the in-memory representation of skillmatch.yaml, with SKILLMATCH_*
// environment variables taking precedence.
type Config struct {
	Listen         string        `mapstructure:"listen"`
	CORSOrigins    []string      `mapstructure:"cors-origins"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	DefaultTopN    int           `mapstructure:"default-top-n"`
	FuzzyThreshold int           `mapstructure:"fuzzy-threshold"`
	// Vocabulary is an optional path to a vocabulary YAML file; empty means
	// the embedded default.
	Vocabulary string        `mapstructure:"vocabulary"`
	Catalog    CatalogConfig `mapstructure:"catalog"`
}

// SkillmatchDir returns the absolute path to ~/.skillmatch/.
func SkillmatchDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".skillmatch"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// SetDefaults registers defaults for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("listen", ":8000")
	v.SetDefault("cors-origins", []string{"http://localhost:3000"})
	v.SetDefault("request-timeout", 30*time.Second)
	v.SetDefault("default-top-n", 10)
	v.SetDefault("fuzzy-threshold", 85)
	v.SetDefault("catalog.store-dir", "~/.skillmatch/catalog")
	v.SetDefault("catalog.normalize", true)
}

// Load unmarshals the effective configuration from v and expands paths.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var err error
	if cfg.Catalog.StoreDir, err = ExpandPath(cfg.Catalog.StoreDir); err != nil {
		return nil, err
	}
	if cfg.Catalog.CSVPath, err = ExpandPath(cfg.Catalog.CSVPath); err != nil {
		return nil, err
	}
	if cfg.Vocabulary, err = ExpandPath(cfg.Vocabulary); err != nil {
		return nil, err
	}
	return &cfg, nil
}
