//go:build windows

package project

import (
	"fmt"
	"path/filepath"
)

// userDataDir resolves the engine user data directory on Windows, which
// lives under %APPDATA%.
func userDataDir(name, home string, getenv func(string) string) (string, error) {
	appData := getenv("APPDATA")
	if appData == "" {
		return "", fmt.Errorf("APPDATA is not set")
	}
	return filepath.Join(appData, "Godot", "app_userdata", name), nil
}
