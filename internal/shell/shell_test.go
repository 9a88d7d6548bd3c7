package shell

import "testing"

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name     string
		shell    string
		profile  string
		expected string
	}{
		{
			name:     "bash",
			shell:    "/bin/bash",
			profile:  "dev",
			expected: `export AWS_PROFILE="dev"`,
		},
		{
			name:     "zsh",
			shell:    "/usr/bin/zsh",
			profile:  "prod",
			expected: `export AWS_PROFILE="prod"`,
		},
		{
			name:     "fish",
			shell:    "/usr/bin/fish",
			profile:  "dev",
			expected: `set -gx AWS_PROFILE "dev"`,
		},
		{
			name:     "nushell",
			shell:    "/usr/bin/nu",
			profile:  "dev",
			expected: `$env.AWS_PROFILE = "dev"`,
		},
		{
			name:     "unknown shell falls back to posix",
			shell:    "",
			profile:  "dev",
			expected: `export AWS_PROFILE="dev"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportCommand(tt.shell, tt.profile); got != tt.expected {
				t.Errorf("ExportCommand(%q, %q) = %q, want %q", tt.shell, tt.profile, got, tt.expected)
			}
		})
	}
}

func TestUnsetCommand(t *testing.T) {
	tests := []struct {
		name     string
		shell    string
		expected string
	}{
		{name: "bash", shell: "/bin/bash", expected: "unset AWS_PROFILE"},
		{name: "fish", shell: "/usr/bin/fish", expected: "set -e AWS_PROFILE"},
		{name: "nushell", shell: "/usr/bin/nu", expected: "hide-env AWS_PROFILE"},
		{name: "empty", shell: "", expected: "unset AWS_PROFILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnsetCommand(tt.shell); got != tt.expected {
				t.Errorf("UnsetCommand(%q) = %q, want %q", tt.shell, got, tt.expected)
			}
		})
	}
}
