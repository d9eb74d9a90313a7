package project

import "fmt"

// ErrNoProject is returned when a directory does not contain a Godot project
type ErrNoProject struct {
	Root string
}

func (e ErrNoProject) Error() string {
	return fmt.Sprintf("no project.godot found in %s", e.Root)
}
