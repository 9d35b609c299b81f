package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets the environment overrides used by every test
func setupTestEnv() {
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("BACKEND_BASE_URL", "http://backend.test")
	os.Setenv("STORAGE_DRIVER", "memory")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	for _, key := range []string{
		"APP_ENV",
		"APP_PORT",
		"BACKEND_BASE_URL",
		"BACKEND_TIMEOUT",
		"BACKEND_CATALOG_TIMEOUT",
		"STORAGE_DRIVER",
		"VISITOR_IDLE_TIMEOUT",
		"DASHBOARD_LATEST_ORDERS",
	} {
		os.Unsetenv(key)
	}
}

// TestConfigFileValuesUnmarshal tests that values from config.yaml reach the Config struct
func TestConfigFileValuesUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Backend.CatalogTimeout != 10 {
		t.Errorf("Expected Backend.CatalogTimeout to be 10, got %d", cfg.Backend.CatalogTimeout)
	}

	if cfg.Visitor.CookieName != "visitor_id" {
		t.Errorf("Expected Visitor.CookieName to be visitor_id, got %s", cfg.Visitor.CookieName)
	}

	if cfg.Storage.Namespace != "storefront" {
		t.Errorf("Expected Storage.Namespace to be storefront, got %s", cfg.Storage.Namespace)
	}
}

// TestEnvironmentOverridesConfigFile tests that env vars win over config.yaml
func TestEnvironmentOverridesConfigFile(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("BACKEND_TIMEOUT", "45")
	os.Setenv("VISITOR_IDLE_TIMEOUT", "15")
	os.Setenv("DASHBOARD_LATEST_ORDERS", "5")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.App.Port != "8080" {
		t.Errorf("Expected App.Port to be 8080, got %s", cfg.App.Port)
	}

	if cfg.Backend.BaseURL != "http://backend.test" {
		t.Errorf("Expected Backend.BaseURL to be http://backend.test, got %s", cfg.Backend.BaseURL)
	}

	if cfg.Backend.Timeout != 45 {
		t.Errorf("Expected Backend.Timeout to be 45, got %d", cfg.Backend.Timeout)
	}

	if cfg.Visitor.IdleTimeout != 15 {
		t.Errorf("Expected Visitor.IdleTimeout to be 15, got %d", cfg.Visitor.IdleTimeout)
	}

	if cfg.Dashboard.LatestOrders != 5 {
		t.Errorf("Expected Dashboard.LatestOrders to be 5, got %d", cfg.Dashboard.LatestOrders)
	}
}

// TestZeroValuesPassThrough tests that zero values are left for the wiring layer to default
func TestZeroValuesPassThrough(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("BACKEND_CATALOG_TIMEOUT", "0")
	os.Setenv("VISITOR_IDLE_TIMEOUT", "0")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Backend.CatalogTimeout != 0 {
		t.Errorf("Expected Backend.CatalogTimeout to be 0, got %d", cfg.Backend.CatalogTimeout)
	}

	if cfg.Visitor.IdleTimeout != 0 {
		t.Errorf("Expected Visitor.IdleTimeout to be 0, got %d", cfg.Visitor.IdleTimeout)
	}
}
