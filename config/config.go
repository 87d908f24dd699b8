package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindEnvFile walks up from the working directory until it finds name,
// so binaries under cmd/ pick up the project .env as well.
func FindEnvFile(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find %s file", name)
		}
		dir = parent
	}
}
