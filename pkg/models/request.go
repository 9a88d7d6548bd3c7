package models

// SelectRequest represents the application state for one profile selection run
type SelectRequest struct {
	ActivateProfile string // --activate: direct name match against the config
	NewProfile      string // --new: free-form name, config is not consulted
	Deactivate      bool   // --deactivate: clear the persisted selection
	CurrentShell    bool   // --current: emit a shell command instead of persisting
	CopyToClipboard bool   // --copy: also place the emitted command on the clipboard
	NumberSelect    bool   // --numbers: number-key selection instead of the list widget
	SettingsPath    string // --config: tool settings file override
}

// NewSelectRequest creates a request with defaults
func NewSelectRequest() *SelectRequest {
	return &SelectRequest{}
}
