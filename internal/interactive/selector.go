package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"awsprofile-cli/internal/interfaces"
	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// Selector implements the ProfileSelector interface on top of survey
type Selector struct {
	pageSize     int
	numberSelect bool
}

// NewSelector creates a new interactive selector
func NewSelector(pageSize int, numberSelect bool) *Selector {
	return &Selector{
		pageSize:     pageSize,
		numberSelect: numberSelect,
	}
}

// Select presents the choices and returns the chosen index. A user
// cancellation (escape, ctrl-c) surfaces as ErrSelectionCancelled.
func (s *Selector) Select(message string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, interfaces.ErrSelectionCancelled
	}

	if s.numberSelect {
		return s.selectWithNumbers(message, choices)
	}

	prompt := &survey.Select{
		Message:  message,
		Options:  choices,
		PageSize: s.pageSize,
		Help:     "↑↓ to move, enter to select, type to filter",
	}

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return 0, interfaces.ErrSelectionCancelled
		}
		return 0, fmt.Errorf("selection failed: %w", err)
	}

	return index, nil
}

// selectWithNumbers displays numbered options and allows instant selection by number key
func (s *Selector) selectWithNumbers(message string, choices []string) (int, error) {
	fmt.Printf("\n%s\n", message)
	fmt.Println("  (Press number key for instant selection)")
	fmt.Println()

	// Display numbered options
	for i, choice := range choices {
		fmt.Printf("  %d. %s\n", i+1, choice)
	}
	fmt.Println()

	// Check if we're in a terminal that supports raw mode
	if !term.IsTerminal(int(syscall.Stdin)) {
		// Fallback to regular input if not in a terminal
		return s.fallbackNumberSelection(choices)
	}

	// Save the current terminal state
	oldState, err := term.MakeRaw(int(syscall.Stdin))
	if err != nil {
		// Fallback to regular input if raw mode fails
		return s.fallbackNumberSelection(choices)
	}
	defer term.Restore(int(syscall.Stdin), oldState)

	fmt.Print("Select profile: ")

	// Read single character input
	buffer := make([]byte, 1)
	for {
		_, err := os.Stdin.Read(buffer)
		if err != nil {
			return 0, err
		}

		char := buffer[0]

		// Handle number keys (1-9)
		if char >= '1' && char <= '9' {
			selectedIndex := int(char - '1') // Convert '1' to 0, '2' to 1, etc.
			if selectedIndex < len(choices) {
				fmt.Printf("%c\n", char) // Echo the pressed key
				return selectedIndex, nil
			}
		}

		// Handle Enter key (take the first option)
		if char == '\r' || char == '\n' {
			fmt.Println()
			return 0, nil
		}

		// Handle Escape or Ctrl+C
		if char == 27 || char == 3 {
			fmt.Println()
			return 0, interfaces.ErrSelectionCancelled
		}

		// For any other key, continue waiting
	}
}

// fallbackNumberSelection provides a fallback when raw terminal mode is not available
func (s *Selector) fallbackNumberSelection(choices []string) (int, error) {
	fmt.Printf("Enter number (1-%d) or press Enter for first option: ", len(choices))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, interfaces.ErrSelectionCancelled
		}
		return 0, err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}

	// Try to parse as number
	selectedIndex, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid input: please enter a number between 1 and %d", len(choices))
	}

	// Validate range (convert from 1-based to 0-based)
	if selectedIndex < 1 || selectedIndex > len(choices) {
		return 0, fmt.Errorf("invalid selection: please enter a number between 1 and %d", len(choices))
	}

	return selectedIndex - 1, nil
}
