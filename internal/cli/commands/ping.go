package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
	"github.com/aki/gdctl/internal/core/bridge"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check if the game is running with DevTools",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.Ping(cmd.Context())
	if err != nil {
		var noResponse *bridge.NoResponseError
		if errors.As(err, &noResponse) {
			return errors.New("no response - is the game running with the DevTools autoload?")
		}
		return err
	}
	if !result.Success {
		return errors.New("DevTools responded but with an error")
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(result.Data)
	}

	if ts, ok := result.Data["timestamp"].(float64); ok {
		ui.Success("DevTools is running (timestamp: %.0f)", ts)
	} else {
		ui.Success("DevTools is running")
	}
	return nil
}
