package commands

import (
	"fmt"

	"github.com/aki/gdctl/internal/core/bridge"
	"github.com/aki/gdctl/internal/core/config"
	"github.com/aki/gdctl/internal/core/logger"
	"github.com/aki/gdctl/internal/core/mailbox"
	"github.com/aki/gdctl/internal/core/project"
)

// openMailbox resolves the project and its mailbox directory
func openMailbox() (*project.Project, *mailbox.Mailbox, error) {
	proj, err := project.Load(projectPath)
	if err != nil {
		return nil, nil, err
	}

	dir, err := proj.UserDataDir()
	if err != nil {
		return nil, nil, err
	}

	return proj, mailbox.New(dir), nil
}

// newClient builds a bridge client for the project, applying gdctl.yaml
// settings and the --debug flag
func newClient() (*bridge.Client, error) {
	proj, mb, err := openMailbox()
	if err != nil {
		return nil, err
	}

	cfg, err := config.NewManager(proj.Root).Load()
	if err != nil {
		return nil, err
	}

	opts := []bridge.Option{
		bridge.WithDefaultTimeout(cfg.DefaultTimeout.Std()),
		bridge.WithPollInterval(cfg.PollInterval.Std()),
	}
	if debugOutput {
		opts = append(opts, bridge.WithLogger(logger.New(logger.WithDebug())))
	}

	return bridge.NewClient(mb, opts...), nil
}

// resultError converts an application failure into a command error
func resultError(result *bridge.Result) error {
	return fmt.Errorf("%s", result.Message)
}
