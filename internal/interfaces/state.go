package interfaces

// StateStore persists the currently active profile name between invocations
type StateStore interface {
	// Write stores the profile name, creating the parent directory if needed
	Write(name string) error

	// Read returns the stored profile name
	Read() (string, error)

	// Remove deletes the stored state and reports whether a state file existed
	Remove() (bool, error)

	// Path returns the location of the state file
	Path() string
}
