package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"awsprofile-cli/internal/interfaces"
	"github.com/spf13/viper"
)

// Manager implements the SettingsManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
}

// NewManager creates a new settings manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("AWSPROFILE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// setDefaults sets the default settings values
func setDefaults(v *viper.Viper) {
	v.SetDefault("aws_config_path", "~/.aws/config")
	v.SetDefault("state_file", "~/.aws/current-profile")
	v.SetDefault("page_size", 10)
	v.SetDefault("number_select", false)
}

// Load loads settings from the specified path
func (m *Manager) Load(path string) (*interfaces.Settings, error) {
	if path == "" {
		// Use default settings path
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", "awsprofile", "config.toml")
	}

	path = expandPath(path)

	// Check if settings file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Settings file doesn't exist, use defaults
		return m.getSettingsFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	return m.getSettingsFromViper(), nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > config > defaults)
func (m *Manager) Resolve() (*interfaces.Settings, error) {
	settings := m.getSettingsFromViper()

	// Apply flag overrides (highest precedence)
	m.applyFlagOverrides(settings)

	return settings, nil
}

// applyFlagOverrides applies flag values over the settings
func (m *Manager) applyFlagOverrides(settings *interfaces.Settings) {
	if val, exists := m.flags["aws_config_path"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			settings.AWSConfigPath = expandPath(str)
		}
	}

	if val, exists := m.flags["state_file"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			settings.StateFile = expandPath(str)
		}
	}

	if val, exists := m.flags["page_size"]; exists && val != nil {
		if n, ok := val.(int); ok && n > 0 {
			settings.PageSize = n
		}
	}

	if val, exists := m.flags["number_select"]; exists && val != nil {
		if b, ok := val.(bool); ok && b {
			settings.NumberSelect = true
		}
	}
}

// Validate validates the settings values
func (m *Manager) Validate(settings *interfaces.Settings) error {
	if settings == nil {
		return fmt.Errorf("settings cannot be nil")
	}

	if settings.AWSConfigPath == "" {
		return fmt.Errorf("aws_config_path cannot be empty")
	}

	if settings.StateFile == "" {
		return fmt.Errorf("state_file cannot be empty")
	}

	if settings.PageSize < 1 {
		return fmt.Errorf("invalid page_size: %d (must be at least 1)", settings.PageSize)
	}

	return nil
}

// getSettingsFromViper converts viper state to a Settings struct.
// This handles env > config > defaults precedence (flags are applied separately)
func (m *Manager) getSettingsFromViper() *interfaces.Settings {
	return &interfaces.Settings{
		AWSConfigPath: expandPath(m.v.GetString("aws_config_path")),
		StateFile:     expandPath(m.v.GetString("state_file")),
		PageSize:      m.v.GetInt("page_size"),
		NumberSelect:  m.v.GetBool("number_select"),
	}
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path // Return original path if we can't get home dir
	}

	return filepath.Join(homeDir, path[2:])
}
