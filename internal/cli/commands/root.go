// Package commands implements the gdctl command-line interface.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
)

var rootCmd = &cobra.Command{
	Use:   "gdctl",
	Short: "Drive and inspect a running Godot game from the command line",
	Long: `gdctl talks to a running Godot instance through the DevTools autoload.

Commands are written to the project's user data directory and results are read
back from the same place, so no network setup is needed: if the game is
running with DevTools enabled, gdctl can reach it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			ui.GlobalFormatter = ui.NewJSONFormatter()
		}
		return nil
	},
}

// Persistent flags shared by every command
var (
	projectPath string
	jsonOutput  bool
	debugOutput bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", ".", "Path to the Godot project")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&debugOutput, "debug", false, "Enable protocol debug logging")
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		return err
	}
	return nil
}
