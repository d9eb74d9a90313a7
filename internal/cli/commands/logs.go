package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
	"github.com/aki/gdctl/internal/core/devlog"
)

var (
	logsTail     int
	logsCategory string
	logsFollow   bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the DevTools log stream",
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsTail, "tail", "t", 0, "Show only the last N entries")
	logsCmd.Flags().StringVarP(&logsCategory, "category", "c", "", "Filter by category")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Keep watching for new entries")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	_, mb, err := openMailbox()
	if err != nil {
		return err
	}

	entries, err := devlog.Read(mb.LogPath(), devlog.Options{
		Category: logsCategory,
		Tail:     logsTail,
	})
	if err != nil {
		return err
	}

	if ui.GlobalFormatter.IsJSON() && !logsFollow {
		return ui.GlobalFormatter.Output(entries)
	}

	if len(entries) == 0 && !logsFollow {
		ui.Info("No logs found")
		return nil
	}
	for _, entry := range entries {
		ui.PrintLogEntry(entry)
	}

	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = devlog.Follow(ctx, mb.LogPath(), devlog.FollowOptions{Category: logsCategory}, ui.PrintLogEntry)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
