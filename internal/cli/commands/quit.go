package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
	"github.com/aki/gdctl/internal/core/bridge"
)

var quitExitCode int

var quitCmd = &cobra.Command{
	Use:   "quit",
	Short: "Quit the running game",
	RunE:  runQuit,
}

func init() {
	quitCmd.Flags().IntVar(&quitExitCode, "exit-code", 0, "Exit code for the game process")
	rootCmd.AddCommand(quitCmd)
}

func runQuit(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.Quit(cmd.Context(), quitExitCode)
	if err != nil {
		// The game often exits before it can answer
		var noResponse *bridge.NoResponseError
		if errors.As(err, &noResponse) {
			ui.Info("Quit command sent (no response expected)")
			return nil
		}
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	ui.Success("Quit command sent")
	return nil
}
