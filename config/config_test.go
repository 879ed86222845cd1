package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"))
	def := Default()
	if cfg.IntervalSec != def.IntervalSec || cfg.PageSize != def.PageSize {
		t.Fatalf("missing file should yield defaults, got %+v", cfg)
	}
	if cfg.Server.Port != 13001 {
		t.Fatalf("default server port = %d, want 13001", cfg.Server.Port)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"interval_sec": 5,
		"source": {"url": "http://scada.local:13001"},
		"server": {"port": 8080, "cors_allowed_origins": ["http://ui.local"]},
		"theme": {"critical": "#ef4444"}
	}`
	if err := os.WriteFile(p, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(p)
	if cfg.IntervalSec != 5 {
		t.Errorf("IntervalSec = %d, want 5", cfg.IntervalSec)
	}
	if cfg.Source.URL != "http://scada.local:13001" {
		t.Errorf("Source.URL = %q", cfg.Source.URL)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if len(cfg.Server.CORSAllowedOrigins) != 1 || cfg.Server.CORSAllowedOrigins[0] != "http://ui.local" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.Server.CORSAllowedOrigins)
	}
	if cfg.Theme.Critical != "#ef4444" {
		t.Errorf("Theme.Critical = %q", cfg.Theme.Critical)
	}
	// Untouched fields keep their defaults.
	if cfg.PageSize != Default().PageSize {
		t.Errorf("PageSize = %d, want default %d", cfg.PageSize, Default().PageSize)
	}
}

func TestLoadMalformedFileKeepsDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(p, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg := Load(p)
	if cfg.PageSize != Default().PageSize {
		t.Fatalf("malformed config should keep defaults, got %+v", cfg)
	}
}
