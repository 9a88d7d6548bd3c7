package orchestrator

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for different categories of failures
var (
	ErrSettingsInvalid = errors.New("settings error")
	ErrConfigLoad      = errors.New("config load error")
	ErrProfileNotFound = errors.New("profile not found")
	ErrSelectionFailed = errors.New("selection error")
	ErrStateWrite      = errors.New("state error")
	ErrOutputFailed    = errors.New("output error")
)

// SelectorError represents a structured error with actionable guidance
type SelectorError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *SelectorError) Error() string {
	if e.Guidance != "" {
		return fmt.Sprintf("%s: %s\n\nSuggestion: %s", e.Type, e.Message, e.Guidance)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *SelectorError) Unwrap() error {
	return e.Cause
}

func (e *SelectorError) Is(target error) bool {
	return errors.Is(e.Type, target)
}

// Error constructors with actionable guidance

func NewSettingsError(message string, cause error) *SelectorError {
	guidance := "Check your settings file syntax. Use 'awsprofile --config /path/to/config.toml' " +
		"to point at a different settings file."

	if strings.Contains(message, "permission") {
		guidance = "Check file permissions for ~/.config/awsprofile/ and ensure you have read access."
	}

	return &SelectorError{
		Type:     ErrSettingsInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewConfigLoadError(path string, cause error) *SelectorError {
	message := fmt.Sprintf("failed to load AWS config from '%s'", path)
	guidance := fmt.Sprintf("Ensure '%s' exists and is readable. Profiles are defined as "+
		"[profile name] sections in the AWS config file.", path)

	if cause != nil && (strings.Contains(cause.Error(), "not found") ||
		strings.Contains(cause.Error(), "no such file")) {
		guidance = fmt.Sprintf("The AWS config file '%s' does not exist. Create it with at least "+
			"one [profile name] section, or use 'awsprofile --new NAME' to stage a profile "+
			"before configuring it.", path)
	}

	return &SelectorError{
		Type:     ErrConfigLoad,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewProfileNotFoundError(name string, available []string) *SelectorError {
	message := fmt.Sprintf("profile '%s' not found in AWS config", name)

	var guidance string
	if len(available) == 0 {
		guidance = "No profiles are configured. Add a [profile name] section to your AWS config file."
	} else {
		guidance = fmt.Sprintf("Available profiles:\n  %s", strings.Join(available, "\n  "))
	}

	return &SelectorError{
		Type:     ErrProfileNotFound,
		Message:  message,
		Guidance: guidance,
		Cause:    nil,
	}
}

func NewSelectionError(cause error) *SelectorError {
	return &SelectorError{
		Type:     ErrSelectionFailed,
		Message:  "interactive selection failed",
		Guidance: "Ensure you are running in an interactive terminal, or use 'awsprofile --activate NAME' to select directly.",
		Cause:    cause,
	}
}

func NewStateError(path string, cause error) *SelectorError {
	message := fmt.Sprintf("failed to update state file '%s'", path)
	guidance := fmt.Sprintf("Check that the directory containing '%s' exists and is writable.", path)

	return &SelectorError{
		Type:     ErrStateWrite,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewOutputError(target string, cause error) *SelectorError {
	message := fmt.Sprintf("failed to write to %s", target)
	guidance := "Check that the output target is available."

	if target == "clipboard" {
		guidance = "Clipboard access failed. Ensure you're running in a graphical environment, " +
			"or drop the --copy flag."
	}

	return &SelectorError{
		Type:     ErrOutputFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}
