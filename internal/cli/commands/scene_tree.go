package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
)

var sceneTreeDepth int

var sceneTreeCmd = &cobra.Command{
	Use:   "scene-tree",
	Short: "Show the live node hierarchy",
	RunE:  runSceneTree,
}

func init() {
	sceneTreeCmd.Flags().IntVarP(&sceneTreeDepth, "depth", "d", 10, "Maximum tree depth")
	rootCmd.AddCommand(sceneTreeCmd)
}

func runSceneTree(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.SceneTree(cmd.Context(), sceneTreeDepth)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	// The hierarchy shape is owned by the responder, so render it as JSON
	// in both output modes
	return ui.NewJSONFormatter().Output(result.Data)
}
