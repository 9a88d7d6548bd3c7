package awsconfig

import (
	"fmt"
	"os"
)

// Load reads the AWS config file at path and parses it into profiles.
// Only obtaining the file text can fail; malformed content never does.
func Load(path string) ([]Profile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("AWS config file not found at %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read AWS config file %s: %w", path, err)
	}

	return Parse(string(data)), nil
}
