package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
	"github.com/aki/gdctl/internal/core/bridge"
)

var validateScene string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scene",
	RunE:  runValidate,
}

var validateAllCmd = &cobra.Command{
	Use:   "validate-all",
	Short: "Validate all scenes in the project",
	RunE:  runValidateAll,
}

func init() {
	validateCmd.Flags().StringVarP(&validateScene, "scene", "s", "", "Scene path (res://...)")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(validateAllCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateScene == "" {
		return errors.New("--scene is required")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.ValidateScene(cmd.Context(), validateScene)
	if err != nil {
		return err
	}
	return printValidationResult(result)
}

func runValidateAll(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.ValidateAllScenes(cmd.Context())
	if err != nil {
		return err
	}
	return printValidationResult(result)
}

func printValidationResult(result *bridge.Result) error {
	if ui.GlobalFormatter.IsJSON() {
		if err := ui.GlobalFormatter.Output(result.Data); err != nil {
			return err
		}
		if !result.Success {
			return resultError(result)
		}
		return nil
	}

	if result.Success {
		ui.Success("%s", result.Message)
	} else {
		ui.Error("%s", result.Message)
	}

	issues := result.Data["issues"]
	switch grouped := issues.(type) {
	case map[string]any:
		// Issues grouped per scene
		for scene, sceneIssues := range grouped {
			ui.OutputLine("\n%s:", ui.BoldStyle.Render(scene))
			if list, ok := sceneIssues.([]any); ok {
				printIssues(list)
			}
		}
	case []any:
		// Single scene
		printIssues(grouped)
	}

	if !result.Success {
		return resultError(result)
	}
	return nil
}

func printIssues(issues []any) {
	for _, raw := range issues {
		issue, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		severity, _ := issue["severity"].(string)
		code, _ := issue["code"].(string)
		message, _ := issue["message"].(string)

		label := "???"
		style := ui.DimStyle
		switch severity {
		case "error":
			label, style = "ERROR", ui.ErrorStyle
		case "warning":
			label, style = "WARN", ui.WarningStyle
		case "info":
			label, style = "INFO", ui.InfoStyle
		}
		ui.OutputLine("  %s %s: %s", style.Render("["+label+"]"), code, message)
	}
}
