package interfaces

import (
	"errors"
	"testing"
)

// Test that all interfaces can be implemented (compilation test)
func TestInterfaceCompilation(t *testing.T) {
	settings := &Settings{
		AWSConfigPath: "/test/.aws/config",
		StateFile:     "/test/.aws/current-profile",
		PageSize:      10,
		NumberSelect:  false,
	}

	if settings == nil {
		t.Error("Failed to create settings structure")
	}

	var _ SettingsManager = (*mockSettingsManager)(nil)
	var _ ProfileSelector = (*mockSelector)(nil)
	var _ StateStore = (*mockStateStore)(nil)
	var _ OutputHandler = (*mockOutputHandler)(nil)
}

func TestErrSelectionCancelled(t *testing.T) {
	wrapped := errors.Join(ErrSelectionCancelled)
	if !errors.Is(wrapped, ErrSelectionCancelled) {
		t.Error("ErrSelectionCancelled should survive wrapping")
	}
}

// Mock implementations to verify interfaces are properly defined

type mockSettingsManager struct{}

func (m *mockSettingsManager) Load(path string) (*Settings, error) {
	return &Settings{}, nil
}

func (m *mockSettingsManager) Resolve() (*Settings, error) {
	return &Settings{}, nil
}

func (m *mockSettingsManager) Validate(settings *Settings) error {
	return nil
}

type mockSelector struct{}

func (m *mockSelector) Select(message string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, ErrSelectionCancelled
	}
	return 0, nil
}

type mockStateStore struct{}

func (m *mockStateStore) Write(name string) error { return nil }
func (m *mockStateStore) Read() (string, error)   { return "", nil }
func (m *mockStateStore) Remove() (bool, error)   { return false, nil }
func (m *mockStateStore) Path() string            { return "" }

type mockOutputHandler struct{}

func (m *mockOutputHandler) WriteToStdout(content string) error    { return nil }
func (m *mockOutputHandler) WriteToClipboard(content string) error { return nil }
