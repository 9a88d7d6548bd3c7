package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"awsprofile-cli/internal/app"
	"awsprofile-cli/internal/orchestrator"
	"awsprofile-cli/pkg/models"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "awsprofile",
	Short: "Interactive AWS profile selector",
	Long: `awsprofile reads the [profile ...] sections of ~/.aws/config and lets you
pick one: directly by name with --activate, interactively from a filterable
list, or as a free-form name with --new for profiles not yet in the config.

The selection is persisted to ~/.aws/current-profile for shell hooks to pick
up. With --current the matching shell command (export/set -gx/$env.) is
printed instead, for use with eval:

  eval "$(awsprofile --activate dev --current)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check if version flag is set
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			versionCmd.Run(cmd, args)
			return nil
		}

		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Run(request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("awsprofile version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available AWS profiles",
	Long:  "List the profile names found in the AWS config file, one per line, marking the active one with an asterisk.",
	RunE: func(cmd *cobra.Command, args []string) error {
		request := models.NewSelectRequest()

		// Get settings path from flag
		if settingsPath, err := cmd.Flags().GetString("config"); err == nil {
			request.SettingsPath = settingsPath
		}

		return app.ListProfiles(request)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "settings file path (default ~/.config/awsprofile/config.toml)")
	rootCmd.PersistentFlags().BoolP("version", "v", false, "print version information")

	// Main command flags
	rootCmd.Flags().StringP("activate", "a", "", "activate a specific profile by name (skips interactive selection)")
	rootCmd.Flags().BoolP("deactivate", "d", false, "deactivate AWS_PROFILE")
	rootCmd.Flags().StringP("new", "n", "", "set a profile name that is not available in the list")
	rootCmd.Flags().BoolP("current", "c", false, "output the shell command only (for eval in the current shell)")
	rootCmd.Flags().Bool("copy", false, "also copy the shell command to the clipboard")
	rootCmd.Flags().Bool("numbers", false, "enable number key selection instead of the list widget")
}

// buildRequestFromFlags constructs a SelectRequest from command flags
func buildRequestFromFlags(cmd *cobra.Command) (*models.SelectRequest, error) {
	request := models.NewSelectRequest()

	// Extract flags
	var err error

	if request.SettingsPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if request.ActivateProfile, err = cmd.Flags().GetString("activate"); err != nil {
		return nil, fmt.Errorf("invalid activate flag: %w", err)
	}

	if request.NewProfile, err = cmd.Flags().GetString("new"); err != nil {
		return nil, fmt.Errorf("invalid new flag: %w", err)
	}

	if request.Deactivate, err = cmd.Flags().GetBool("deactivate"); err != nil {
		return nil, fmt.Errorf("invalid deactivate flag: %w", err)
	}

	if request.CurrentShell, err = cmd.Flags().GetBool("current"); err != nil {
		return nil, fmt.Errorf("invalid current flag: %w", err)
	}

	if request.CopyToClipboard, err = cmd.Flags().GetBool("copy"); err != nil {
		return nil, fmt.Errorf("invalid copy flag: %w", err)
	}

	if request.NumberSelect, err = cmd.Flags().GetBool("numbers"); err != nil {
		return nil, fmt.Errorf("invalid numbers flag: %w", err)
	}

	// Validate mutually exclusive modes
	if request.ActivateProfile != "" && request.NewProfile != "" {
		return nil, fmt.Errorf("cannot use both --activate and --new flags")
	}
	if request.Deactivate && (request.ActivateProfile != "" || request.NewProfile != "") {
		return nil, fmt.Errorf("cannot combine --deactivate with --activate or --new")
	}

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		// Cancellation already printed its outcome; exit nonzero quietly.
		if !errors.Is(err, orchestrator.ErrNoSelection) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
