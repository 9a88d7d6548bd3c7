package interfaces

// Settings represents the tool configuration
type Settings struct {
	AWSConfigPath string `toml:"aws_config_path"`
	StateFile     string `toml:"state_file"`
	PageSize      int    `toml:"page_size"`
	NumberSelect  bool   `toml:"number_select"`
}

// SettingsManager handles settings loading and resolution
type SettingsManager interface {
	// Load loads settings from the specified path
	Load(path string) (*Settings, error)

	// Resolve applies precedence rules (flags > env > config > defaults)
	Resolve() (*Settings, error)

	// Validate validates the settings values
	Validate(settings *Settings) error
}
