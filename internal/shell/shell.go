package shell

import (
	"fmt"
	"os"
	"strings"
)

// Detect returns the user's shell from the SHELL environment variable.
// An unset variable yields an empty string, which formats as posix syntax.
func Detect() string {
	return os.Getenv("SHELL")
}

// ExportCommand returns the command that activates the profile in the given
// shell, suitable for eval in the current session.
func ExportCommand(shell, name string) string {
	switch {
	case strings.Contains(shell, "nu"):
		return fmt.Sprintf("$env.AWS_PROFILE = %q", name)
	case strings.Contains(shell, "fish"):
		return fmt.Sprintf("set -gx AWS_PROFILE %q", name)
	default: // bash, zsh, POSIX
		return fmt.Sprintf("export AWS_PROFILE=%q", name)
	}
}

// UnsetCommand returns the command that deactivates the profile in the given shell
func UnsetCommand(shell string) string {
	switch {
	case strings.Contains(shell, "nu"):
		return "hide-env AWS_PROFILE"
	case strings.Contains(shell, "fish"):
		return "set -e AWS_PROFILE"
	default:
		return "unset AWS_PROFILE"
	}
}
