package auth

import (
	"errors"
	"os"
	"path/filepath"
)

// lastHandlePath returns the full path to the file storing the last successful handle.
func lastHandlePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "VoltVault")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(p, "last_handle"), nil
}

// SaveLastHandle stores the provided handle as the current user context for the CLI.
func SaveLastHandle(handle string) error {
	if handle == "" {
		return errors.New("empty handle")
	}
	p, err := lastHandlePath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(handle), 0o600)
}

// LoadLastHandle returns the last stored handle.
func LoadLastHandle() (string, error) {
	p, err := lastHandlePath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("no stored handle")
	}
	// Trim simple trailing whitespace
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return string(b), nil
}
