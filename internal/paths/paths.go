package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig = ".config"
	appName   = "habitreset"
	dbName    = "habitreset.db"
	logName   = "habitreset.log"
)

// Dir returns override when non-empty, otherwise ~/.config/habitreset.
func Dir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

func EnsureDir(override string) (string, error) {
	dir, err := Dir(override)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

func DB(override string) (string, error) {
	dir, err := Dir(override)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbName), nil
}

func Log(override string) (string, error) {
	dir, err := Dir(override)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logName), nil
}
