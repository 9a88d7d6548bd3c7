package orchestrator

import (
	"fmt"

	"awsprofile-cli/internal/interfaces"
	"github.com/atotto/clipboard"
)

// OutputHandler implements the OutputHandler interface
type OutputHandler struct{}

// NewOutputHandler creates a new output handler
func NewOutputHandler() interfaces.OutputHandler {
	return &OutputHandler{}
}

// WriteToStdout writes content to standard output
func (h *OutputHandler) WriteToStdout(content string) error {
	_, err := fmt.Println(content)
	return err
}

// WriteToClipboard copies content to the system clipboard
func (h *OutputHandler) WriteToClipboard(content string) error {
	return clipboard.WriteAll(content)
}
