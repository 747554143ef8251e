package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" || cfg.DBDriver != "memory" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS defaults: %+v", cfg.CORSOrigins)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" || cfg.DBDriver != "sqlite" {
		t.Fatalf("env override not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example.com" {
		t.Fatalf("csv parsing failed: %+v", cfg.CORSOrigins)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_driver: postgres\ndb_dsn: postgres://db/exams\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DBDriver != "postgres" || cfg.DBDSN != "postgres://db/exams" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	// fields absent from the file keep their env values
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("env value lost: %+v", cfg)
	}
}

func TestLoadMissingPathIsEnvOnly(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if cfg.DBDriver != "memory" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
