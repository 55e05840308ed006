package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	if value := GetString("server.http_port"); value != "8080" {
		t.Errorf("Expected default http_port to be 8080, got %s", value)
	}
	if value := GetString("palette.mode"); value != "monochromatic" {
		t.Errorf("Expected default mode to be monochromatic, got %s", value)
	}
	if value := GetInt("palette.steps"); value != 11 {
		t.Errorf("Expected default steps to be 11, got %d", value)
	}
	if !GetBool("palette.preserve_accessibility") {
		t.Error("Expected accessibility repair on by default")
	}
	if value := GetDuration("ratelimit.interval"); value != time.Minute {
		t.Errorf("Expected ratelimit interval 1m, got %s", value)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("palette.steps", 7)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if value := GetInt("palette.steps"); value != 7 {
		t.Errorf("Expected steps to be 7, got %d", value)
	}

	// Re-reading the file picks up the saved value
	if err := InitConfig(configPath); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if value := GetInt("palette.steps"); value != 7 {
		t.Errorf("Expected persisted steps to be 7, got %d", value)
	}
}

func TestDefaultPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	if got := DefaultPath(); got != "/tmp/custom.yaml" {
		t.Errorf("Expected env path, got %s", got)
	}
}

func TestInitDefaults(t *testing.T) {
	InitDefaults()
	if value := GetString("log.level"); value != "info" {
		t.Errorf("Expected log level info, got %s", value)
	}
	if GetAll() == nil {
		t.Error("Expected settings map")
	}
	if !IsSet("render.swatch_width") {
		t.Error("Expected render.swatch_width default")
	}
}
