//go:build darwin

package project

import "path/filepath"

// userDataDir resolves the engine user data directory on macOS.
func userDataDir(name, home string, getenv func(string) string) (string, error) {
	return filepath.Join(home, "Library", "Application Support", "Godot", "app_userdata", name), nil
}
