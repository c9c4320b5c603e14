package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ELFHDR_LOG_LEVEL
const EnvPrefix = "ELFHDR"

// Output formats for the header report
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Config represents the application configuration
type Config struct {
	LogLevel     string `mapstructure:"log_level"`
	LogFormat    string `mapstructure:"log_format"`
	OutputFormat string `mapstructure:"output_format"`
}

// LoggerConfig returns the logger settings carried by the configuration
func (c *Config) LoggerConfig() LoggerConfig {
	level, _ := ParseLogLevel(c.LogLevel)
	return LoggerConfig{
		Level:  level,
		Format: ParseLogFormat(c.LogFormat),
	}
}

// ConfigManager handles configuration loading and management
type ConfigManager struct {
	config *Config
	viper  *viper.Viper
	logger *Logger
}

// NewConfigManager creates a new configuration manager
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		config: &Config{},
		viper:  viper.New(),
		logger: NewDefaultLogger(),
	}
}

// LoadConfig loads configuration from defaults, an optional file and the environment
func (c *ConfigManager) LoadConfig(configFile string) error {
	c.setDefaults()

	c.viper.SetConfigType("yaml")
	c.viper.SetEnvPrefix(EnvPrefix)
	c.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.viper.AutomaticEnv()

	if configFile != "" {
		c.viper.SetConfigFile(configFile)
		if err := c.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
	} else {
		c.viper.SetConfigName("config")
		c.viper.AddConfigPath("$HOME/.elf-header")

		if err := c.viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			c.logger.WithComponent("config").Debug("No config file found, using defaults and environment variables")
		} else {
			c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
		}
	}

	if err := c.viper.Unmarshal(c.config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := c.validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values
func (c *ConfigManager) setDefaults() {
	c.viper.SetDefault("log_level", string(LogLevelWarn))
	c.viper.SetDefault("log_format", string(LogFormatText))
	c.viper.SetDefault("output_format", OutputFormatText)
}

// validateConfig validates the loaded configuration
func (c *ConfigManager) validateConfig() error {
	validLogLevels := []string{"debug", "info", "warn", "warning", "error"}
	if !contains(validLogLevels, strings.ToLower(c.config.LogLevel)) {
		return fmt.Errorf("invalid log_level: %s (valid: %v)", c.config.LogLevel, validLogLevels)
	}

	validFormats := []string{"text", "json"}
	if !contains(validFormats, strings.ToLower(c.config.LogFormat)) {
		return fmt.Errorf("invalid log_format: %s (valid: %v)", c.config.LogFormat, validFormats)
	}
	if !contains(validFormats, strings.ToLower(c.config.OutputFormat)) {
		return fmt.Errorf("invalid output_format: %s (valid: %v)", c.config.OutputFormat, validFormats)
	}
	c.config.OutputFormat = strings.ToLower(c.config.OutputFormat)

	return nil
}

// GetConfig returns the loaded configuration
func (c *ConfigManager) GetConfig() *Config {
	return c.config
}

// SetLogger sets the logger for the config manager
func (c *ConfigManager) SetLogger(logger *Logger) {
	c.logger = logger
}

// SetConfigValue overrides a configuration key before loading
func (c *ConfigManager) SetConfigValue(key string, value interface{}) {
	c.viper.Set(key, value)
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// LoadDefaultConfig loads configuration without an explicit file
func LoadDefaultConfig() (*Config, error) {
	return LoadConfigFromFile("")
}

// LoadConfigFromFile loads configuration from a specific file
func LoadConfigFromFile(filename string) (*Config, error) {
	manager := NewConfigManager()
	if err := manager.LoadConfig(filename); err != nil {
		return nil, err
	}
	return manager.GetConfig(), nil
}
