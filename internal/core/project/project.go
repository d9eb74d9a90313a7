// Package project locates Godot projects and the user data directory the
// engine uses for them, so the CLI and the in-game responder agree on the
// same mailbox files without any further coordination.
package project

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DescriptorFile is the project descriptor Godot requires at the project root
const DescriptorFile = "project.godot"

// namePrefix is the descriptor line that declares the project name
const namePrefix = "config/name="

// Project represents a Godot project on disk
type Project struct {
	// Root is the absolute path to the project directory
	Root string
	// Name is the declared project name, or the directory name if the
	// descriptor does not declare one
	Name string
}

// Load reads the project descriptor at root and resolves the project name
func Load(root string) (*Project, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}

	descriptorPath := filepath.Join(absRoot, DescriptorFile)
	f, err := os.Open(descriptorPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoProject{Root: absRoot}
		}
		return nil, fmt.Errorf("failed to open %s: %w", DescriptorFile, err)
	}
	defer func() { _ = f.Close() }()

	name, err := parseProjectName(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", DescriptorFile, err)
	}
	if name == "" {
		name = filepath.Base(absRoot)
	}

	return &Project{
		Root: absRoot,
		Name: name,
	}, nil
}

// parseProjectName scans descriptor lines for the config/name key.
// The value is stripped of surrounding quotes. An empty string means
// the descriptor does not declare a name.
func parseProjectName(f *os.File) (string, error) {
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, namePrefix) {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, namePrefix))
		return strings.Trim(value, `"`), nil
	}
	return "", scanner.Err()
}

// UserDataDir returns the directory where the engine stores user data for
// this project, following the engine's per-platform convention.
func (p *Project) UserDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return userDataDir(p.Name, home, os.Getenv)
}
