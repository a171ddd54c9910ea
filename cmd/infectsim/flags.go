package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validateConfigPath checks an explicitly supplied config path. An empty path
// is allowed when required is false and means "use built-in defaults".
func validateConfigPath(path string, required bool) error {
	if strings.TrimSpace(path) == "" {
		if required {
			return fmt.Errorf("config file is required")
		}
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}
