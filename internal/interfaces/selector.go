package interfaces

import "errors"

// ErrSelectionCancelled is returned by a ProfileSelector when the user
// cancels or interrupts the prompt. It is a normal outcome, not a failure.
var ErrSelectionCancelled = errors.New("selection cancelled")

// ProfileSelector presents an ordered list of choices and reports which one
// the user picked. Injecting it keeps the selection flow testable without a
// real terminal.
type ProfileSelector interface {
	// Select presents the choices and returns the chosen index, or
	// ErrSelectionCancelled when the user backs out
	Select(message string, choices []string) (int, error)
}
