package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8090" {
		t.Errorf("Expected Port to be 8090, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.AlphaVantage.BaseURL != "https://www.alphavantage.co/query" {
		t.Errorf("Unexpected Alpha Vantage base URL: %s", cfg.AlphaVantage.BaseURL)
	}

	if cfg.Search.PerDay != 100 {
		t.Errorf("Expected Search.PerDay to be 100, got %d", cfg.Search.PerDay)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("DATA_GO_SERVICE_KEY", "test-key")
	os.Setenv("SEARCH_RATE_PER_DAY", "50")
	os.Setenv("LOG_LEVEL", "info")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("DATA_GO_SERVICE_KEY")
		os.Unsetenv("SEARCH_RATE_PER_DAY")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.DataGo.ServiceKey != "test-key" {
		t.Errorf("Expected DataGo.ServiceKey to be test-key, got %s", cfg.DataGo.ServiceKey)
	}

	if cfg.Search.PerDay != 50 {
		t.Errorf("Expected Search.PerDay to be 50, got %d", cfg.Search.PerDay)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected LogLevel to be info, got %s", cfg.LogLevel)
	}
}

func TestLoadMissingCredentialsIsNotAnError(t *testing.T) {
	// Credentials are resolved lazily by the provider adapters; an empty
	// key must not fail config loading.
	os.Unsetenv("DATA_GO_SERVICE_KEY")
	os.Unsetenv("ALPHA_VANTAGE_API_KEY")
	os.Unsetenv("OPENAI_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DataGo.ServiceKey != "" {
		t.Errorf("Expected empty DataGo.ServiceKey, got %s", cfg.DataGo.ServiceKey)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "invalid")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error for invalid ENV, got nil")
	}
}

func TestValidateInvalidRateCeiling(t *testing.T) {
	os.Setenv("SEARCH_RATE_PER_SECOND", "0")
	defer os.Unsetenv("SEARCH_RATE_PER_SECOND")

	// getEnvAsInt falls back to the default on parse errors, so only an
	// explicit non-positive value can reach validation.
	_, err := Load()
	if err == nil {
		t.Error("Expected error for zero SEARCH_RATE_PER_SECOND, got nil")
	}
}
