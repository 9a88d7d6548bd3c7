package interfaces

// OutputHandler manages the destinations a result can be emitted to
type OutputHandler interface {
	// WriteToStdout writes content to standard output
	WriteToStdout(content string) error

	// WriteToClipboard copies content to the system clipboard
	WriteToClipboard(content string) error
}
