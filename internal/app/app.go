package app

import (
	"fmt"

	"awsprofile-cli/internal/awsconfig"
	"awsprofile-cli/internal/config"
	"awsprofile-cli/internal/interactive"
	"awsprofile-cli/internal/interfaces"
	"awsprofile-cli/internal/orchestrator"
	"awsprofile-cli/internal/state"
	"awsprofile-cli/pkg/models"
)

// Run executes the main application logic
func Run(request *models.SelectRequest) error {
	settings, err := loadSettings(request)
	if err != nil {
		return err
	}

	// Wire the collaborators: the survey-backed widget, the state file and
	// the stdout/clipboard emitter.
	selector := interactive.NewSelector(settings.PageSize, settings.NumberSelect)
	store := state.NewStore(settings.StateFile)
	output := orchestrator.NewOutputHandler()

	orch := orchestrator.New(selector, store, output)
	return orch.Execute(request, settings)
}

// ListProfiles prints the available profile names, one per line
func ListProfiles(request *models.SelectRequest) error {
	settings, err := loadSettings(request)
	if err != nil {
		return err
	}

	profiles, err := awsconfig.Load(settings.AWSConfigPath)
	if err != nil {
		return orchestrator.NewConfigLoadError(settings.AWSConfigPath, err)
	}

	// Mark the currently active profile, if any selection is persisted.
	current, err := state.NewStore(settings.StateFile).Read()
	if err != nil {
		current = ""
	}

	for _, p := range profiles {
		if p.Name == current {
			fmt.Printf("* %s\n", p.Name)
		} else {
			fmt.Printf("  %s\n", p.Name)
		}
	}

	return nil
}

// loadSettings loads, resolves and validates the tool settings, applying the
// request's flag overrides with the highest precedence.
func loadSettings(request *models.SelectRequest) (*interfaces.Settings, error) {
	manager := config.NewManager()

	if _, err := manager.Load(request.SettingsPath); err != nil {
		return nil, orchestrator.NewSettingsError("failed to load settings", err)
	}

	if request.NumberSelect {
		manager.SetFlag("number_select", true)
	}

	settings, err := manager.Resolve()
	if err != nil {
		return nil, orchestrator.NewSettingsError("failed to resolve settings", err)
	}

	if err := manager.Validate(settings); err != nil {
		return nil, orchestrator.NewSettingsError(err.Error(), err)
	}

	return settings, nil
}
