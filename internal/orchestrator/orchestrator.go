package orchestrator

import (
	"errors"
	"fmt"

	"awsprofile-cli/internal/awsconfig"
	"awsprofile-cli/internal/interfaces"
	"awsprofile-cli/internal/shell"
	"awsprofile-cli/pkg/models"
)

// ErrNoSelection signals that the user cancelled the interactive prompt.
// The CLI surface turns it into a nonzero exit without an error report.
var ErrNoSelection = errors.New("no profile selected")

// Orchestrator coordinates profile loading, selection and result emission
type Orchestrator struct {
	selector interfaces.ProfileSelector
	store    interfaces.StateStore
	output   interfaces.OutputHandler
}

// New creates a new orchestrator with the injected collaborators
func New(selector interfaces.ProfileSelector, store interfaces.StateStore, output interfaces.OutputHandler) *Orchestrator {
	return &Orchestrator{
		selector: selector,
		store:    store,
		output:   output,
	}
}

// Execute runs one selection flow. Mode precedence mirrors the flag surface:
// deactivate, then free-form new, then direct activation, then interactive.
func (o *Orchestrator) Execute(request *models.SelectRequest, settings *interfaces.Settings) error {
	if request.Deactivate {
		return o.deactivate(request)
	}

	name, selected, err := o.resolveProfileName(request, settings)
	if err != nil {
		return err
	}
	if !selected {
		// Cancellation is a normal outcome, but nothing was chosen.
		fmt.Println("No profile selected")
		return ErrNoSelection
	}

	return o.activate(request, name)
}

// resolveProfileName produces the chosen profile name, or selected=false when
// the user cancelled the interactive prompt.
func (o *Orchestrator) resolveProfileName(request *models.SelectRequest, settings *interfaces.Settings) (string, bool, error) {
	// Free-form mode: the config file is not consulted at all, so a name can
	// be staged before it is added to the config.
	if request.NewProfile != "" {
		return request.NewProfile, true, nil
	}

	profiles, err := awsconfig.Load(settings.AWSConfigPath)
	if err != nil {
		return "", false, NewConfigLoadError(settings.AWSConfigPath, err)
	}

	if len(profiles) == 0 {
		return "", false, NewConfigLoadError(settings.AWSConfigPath,
			fmt.Errorf("no [profile ...] sections found"))
	}

	// Direct mode: exact membership check against the loaded collection.
	if request.ActivateProfile != "" {
		for _, p := range profiles {
			if p.Name == request.ActivateProfile {
				return p.Name, true, nil
			}
		}
		names := make([]string, len(profiles))
		for i, p := range profiles {
			names[i] = p.Name
		}
		return "", false, NewProfileNotFoundError(request.ActivateProfile, names)
	}

	// Interactive mode.
	labels := make([]string, len(profiles))
	for i, p := range profiles {
		labels[i] = p.DisplayLabel()
	}

	index, err := o.selector.Select("Select AWS Profile:", labels)
	if err != nil {
		if errors.Is(err, interfaces.ErrSelectionCancelled) {
			return "", false, nil
		}
		return "", false, NewSelectionError(err)
	}

	return profiles[index].Name, true, nil
}

// activate persists or emits the chosen name according to the request
func (o *Orchestrator) activate(request *models.SelectRequest, name string) error {
	command := shell.ExportCommand(shell.Detect(), name)

	if request.CurrentShell {
		if err := o.output.WriteToStdout(command); err != nil {
			return NewOutputError("stdout", err)
		}
	} else {
		if err := o.store.Write(name); err != nil {
			return NewStateError(o.store.Path(), err)
		}
		fmt.Printf("AWS profile activated: %s\n", name)
	}

	if request.CopyToClipboard {
		if err := o.output.WriteToClipboard(command); err != nil {
			return NewOutputError("clipboard", err)
		}
	}

	return nil
}

// deactivate clears the persisted selection or emits the unset command
func (o *Orchestrator) deactivate(request *models.SelectRequest) error {
	command := shell.UnsetCommand(shell.Detect())

	if request.CurrentShell {
		if err := o.output.WriteToStdout(command); err != nil {
			return NewOutputError("stdout", err)
		}
	} else {
		existed, err := o.store.Remove()
		if err != nil {
			return NewStateError(o.store.Path(), err)
		}
		if existed {
			fmt.Println("AWS profile deactivated")
		} else {
			fmt.Println("No active AWS profile to deactivate")
		}
	}

	if request.CopyToClipboard {
		if err := o.output.WriteToClipboard(command); err != nil {
			return NewOutputError("clipboard", err)
		}
	}

	return nil
}
