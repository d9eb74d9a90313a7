//go:build !windows && !darwin

package project

import "path/filepath"

// userDataDir resolves the engine user data directory on Linux and other
// Unix-like systems. XDG_DATA_HOME takes precedence when set.
func userDataDir(name, home string, getenv func(string) string) (string, error) {
	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "godot", "app_userdata", name), nil
}
