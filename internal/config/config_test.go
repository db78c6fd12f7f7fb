package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":8000" {
		t.Fatalf("unexpected listen: %q", cfg.Listen)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected request timeout: %v", cfg.RequestTimeout)
	}
	if cfg.DefaultTopN != 10 || cfg.FuzzyThreshold != 85 {
		t.Fatalf("unexpected defaults: top-n=%d fuzzy=%d", cfg.DefaultTopN, cfg.FuzzyThreshold)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSOrigins)
	}
	if !cfg.Catalog.Normalize {
		t.Fatal("normalize should default to true")
	}
}

func TestLoad_ExpandsStorePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := filepath.Join(home, ".skillmatch", "catalog")
	if cfg.Catalog.StoreDir != want {
		t.Fatalf("store dir = %q, want %q", cfg.Catalog.StoreDir, want)
	}
}

func TestLoad_ConfigFileOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "skillmatch.yaml")
	body := "listen: \":9100\"\nfuzzy-threshold: 90\ncatalog:\n  csv-path: /data/courses.csv\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Listen != ":9100" {
		t.Fatalf("unexpected listen: %q", cfg.Listen)
	}
	if cfg.FuzzyThreshold != 90 {
		t.Fatalf("unexpected fuzzy threshold: %d", cfg.FuzzyThreshold)
	}
	if cfg.Catalog.CSVPath != "/data/courses.csv" {
		t.Fatalf("unexpected csv path: %q", cfg.Catalog.CSVPath)
	}
	if cfg.DefaultTopN != 10 {
		t.Fatalf("defaults should survive partial config: %d", cfg.DefaultTopN)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.skillmatch/catalog")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, ".skillmatch", "catalog") {
		t.Fatalf("unexpected expansion: %q", got)
	}

	got, err = ExpandPath("/abs/path")
	if err != nil || got != "/abs/path" {
		t.Fatalf("absolute path should pass through: %q %v", got, err)
	}

	got, err = ExpandPath("")
	if err != nil || got != "" {
		t.Fatalf("empty path should pass through: %q %v", got, err)
	}
}
