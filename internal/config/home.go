package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the directory minigrep reads its config file from.
const HomeEnv = "MINIGREP_HOME"

// GetMinigrepHome returns the minigrep home directory
// Priority order:
//  1. MINIGREP_HOME environment variable (if set)
//  2. ~/.minigrep
//
// The directory is not created; a missing home simply means no config file.
func GetMinigrepHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}

	return filepath.Join(userHome, ".minigrep"), nil
}

// DefaultConfigPath returns $MINIGREP_HOME/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetMinigrepHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}
