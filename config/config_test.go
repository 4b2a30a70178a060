package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("App.Port = %q, want 8080", cfg.App.Port)
	}
	if cfg.DB.Port != "5432" {
		t.Errorf("DB.Port = %q, want 5432", cfg.DB.Port)
	}
	if cfg.Redis.Port != "6379" {
		t.Errorf("Redis.Port = %q, want 6379", cfg.Redis.Port)
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("JWT.AccessExpiry = %v, want 15m", cfg.JWT.AccessExpiry)
	}
	if cfg.JWT.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("JWT.RefreshExpiry = %v, want 168h", cfg.JWT.RefreshExpiry)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("APP_PORT", "9155")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.App.Port != "9155" {
		t.Errorf("App.Port = %q, want 9155", cfg.App.Port)
	}
	if cfg.JWT.AccessExpiry != 30*time.Minute {
		t.Errorf("JWT.AccessExpiry = %v, want 30m", cfg.JWT.AccessExpiry)
	}
}
