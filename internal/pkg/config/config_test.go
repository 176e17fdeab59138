package config

import (
	"os"
	"testing"
)

func TestLoad_MissingRequired(t *testing.T) {
	// t.Setenv registers the restore; unset afterwards so the vars are truly absent.
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("MONGO_URI")
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when MONGO_URI and JWT_SECRET are absent")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Mongo.Database != "finance_tracker" {
		t.Fatalf("expected default database, got %s", cfg.Mongo.Database)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "cache:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Redis.Addr != "cache:6379" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
