package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading "~" to the home directory and returns an
// absolute path
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

// AbbreviateHome replaces a leading home directory in path with "~". The
// result is for display only.
func AbbreviateHome(path, home string) string {
	if home == "" || home == string(filepath.Separator) {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}

// DisplayName returns path with the current user's home abbreviated
func DisplayName(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return AbbreviateHome(path, home)
}
