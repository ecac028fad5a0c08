package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 70000}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 5000},
		Logging: LoggingConfig{Level: "verbose"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestValidate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"", "debug", "info", "warn", "error"} {
		t.Run("level="+level, func(t *testing.T) {
			cfg := Config{
				HTTP:    HTTPConfig{Port: 5000},
				Logging: LoggingConfig{Level: level},
			}
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error for valid level %q: %v", level, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 5000 {
		t.Errorf("expected Port=5000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Model.Dir != "models" {
		t.Errorf("expected Model.Dir='models', got %q", cfg.Model.Dir)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("expected wildcard CORS origin, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:  HTTPConfig{Port: 9000, ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Model: ModelConfig{Dir: "/var/lib/shelfwise/models"},
		CORS:  CORSConfig{AllowedOrigins: []string{"https://shelfwise.example"}},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 9000 {
		t.Errorf("expected Port=9000, got %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Model.Dir != "/var/lib/shelfwise/models" {
		t.Errorf("expected Model.Dir kept, got %q", cfg.Model.Dir)
	}
	if cfg.CORS.AllowedOrigins[0] != "https://shelfwise.example" {
		t.Errorf("expected CORS origins kept, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestExpandEnvVars(t *testing.T) {
	if err := os.Setenv("SHELFWISE_TEST_PORT", "8123"); err != nil {
		t.Fatalf("setenv: %v", err)
	}
	defer func() { _ = os.Unsetenv("SHELFWISE_TEST_PORT") }()

	got := string(expandEnvVars([]byte("port: ${SHELFWISE_TEST_PORT}\ndir: ${SHELFWISE_TEST_DIR:-models}")))
	want := "port: 8123\ndir: models"
	if got != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", got, want)
	}
}
