package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
)

var screenshotFilename string

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture a screenshot of the running game",
	RunE:  runScreenshot,
}

func init() {
	screenshotCmd.Flags().StringVarP(&screenshotFilename, "filename", "f", "", "Output filename (generated if omitted)")
	rootCmd.AddCommand(screenshotCmd)
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	filename := screenshotFilename
	if filename == "" {
		filename = fmt.Sprintf("screenshot-%s.png", uuid.NewString()[:8])
	}

	result, err := client.Screenshot(cmd.Context(), filename)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(result.Data)
	}

	if path, ok := result.Data["path"].(string); ok {
		ui.Success("Screenshot saved: %s", path)
	} else {
		ui.Success("Screenshot saved")
	}
	if size, ok := result.Data["size"].(map[string]any); ok {
		width, _ := size["width"].(float64)
		height, _ := size["height"].(float64)
		ui.OutputLine("Size: %.0fx%.0f", width, height)
	}
	return nil
}
