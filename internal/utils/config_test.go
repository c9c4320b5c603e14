package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateHome points $HOME at an empty directory so no user config is picked up
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaultConfig(t *testing.T) {
	isolateHome(t)

	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig() error = %v", err)
	}

	if config.LogLevel != "warn" {
		t.Errorf("Expected default log_level=warn, got: %s", config.LogLevel)
	}
	if config.LogFormat != "text" {
		t.Errorf("Expected default log_format=text, got: %s", config.LogFormat)
	}
	if config.OutputFormat != OutputFormatText {
		t.Errorf("Expected default output_format=text, got: %s", config.OutputFormat)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	isolateHome(t)

	configFile := filepath.Join(t.TempDir(), "elf-header.yaml")
	content := `
log_level: debug
log_format: json
output_format: json
`
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfigFromFile(configFile)
	if err != nil {
		t.Fatalf("LoadConfigFromFile() error = %v", err)
	}

	if config.LogLevel != "debug" {
		t.Errorf("Expected log_level=debug, got: %s", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("Expected log_format=json, got: %s", config.LogFormat)
	}
	if config.OutputFormat != OutputFormatJSON {
		t.Errorf("Expected output_format=json, got: %s", config.OutputFormat)
	}
}

func TestLoadConfig_HomeDirectory(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".elf-header")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output_format: json\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig() error = %v", err)
	}
	if config.OutputFormat != OutputFormatJSON {
		t.Errorf("Expected output_format=json from home config, got: %s", config.OutputFormat)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	isolateHome(t)

	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("ELFHDR_LOG_LEVEL", "error")
	t.Setenv("ELFHDR_LOG_FORMAT", "json")
	t.Setenv("ELFHDR_OUTPUT_FORMAT", "JSON")

	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("LoadDefaultConfig() error = %v", err)
	}

	if config.LogLevel != "error" {
		t.Errorf("Expected log_level=error from env, got: %s", config.LogLevel)
	}
	if config.LogFormat != "json" {
		t.Errorf("Expected log_format=json from env, got: %s", config.LogFormat)
	}
	if config.OutputFormat != OutputFormatJSON {
		t.Errorf("Expected output_format=json from env, got: %s", config.OutputFormat)
	}
}

func TestConfigManager_SetConfigValue(t *testing.T) {
	isolateHome(t)

	manager := NewConfigManager()
	manager.SetLogger(NewLogger(LoggerConfig{Level: LogLevelError, Output: os.Stderr}))
	manager.SetConfigValue("output_format", "json")
	if err := manager.LoadConfig(""); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if got := manager.GetConfig().OutputFormat; got != OutputFormatJSON {
		t.Errorf("Expected output_format=json from override, got: %s", got)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr string
	}{
		{"log_level", "invalid", "invalid log_level"},
		{"log_format", "xml", "invalid log_format"},
		{"output_format", "yaml", "invalid output_format"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolateHome(t)

			manager := NewConfigManager()
			manager.SetConfigValue(tt.key, tt.value)
			err := manager.LoadConfig("")
			if err == nil {
				t.Fatalf("Expected error for %s=%s, got nil", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error to contain %q, got: %s", tt.wantErr, err.Error())
			}
		})
	}
}

func TestConfig_LoggerConfig(t *testing.T) {
	config := &Config{LogLevel: "warning", LogFormat: "JSON"}
	lc := config.LoggerConfig()

	if lc.Level != LogLevelWarn {
		t.Errorf("Expected level warn, got: %s", lc.Level)
	}
	if lc.Format != LogFormatJSON {
		t.Errorf("Expected format json, got: %s", lc.Format)
	}
}

func TestGetVersionString(t *testing.T) {
	got := GetVersionString()
	if !strings.Contains(got, Version) || !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Unexpected version string: %s", got)
	}
}
