package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
	"github.com/aki/gdctl/internal/core/bridge"
	"github.com/aki/gdctl/internal/core/sequence"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Simulate input actions in the running game",
}

var (
	inputPressStrength float64
	inputTapHold       float64
	inputTapStrength   float64
	inputListAll       bool
	inputSeqTimeout    time.Duration
)

var inputPressCmd = &cobra.Command{
	Use:   "press <action>",
	Short: "Press and hold an input action",
	Args:  cobra.ExactArgs(1),
	RunE:  runInputPress,
}

var inputReleaseCmd = &cobra.Command{
	Use:   "release <action>",
	Short: "Release a held input action",
	Args:  cobra.ExactArgs(1),
	RunE:  runInputRelease,
}

var inputTapCmd = &cobra.Command{
	Use:   "tap <action>",
	Short: "Press and release an input action",
	Args:  cobra.ExactArgs(1),
	RunE:  runInputTap,
}

var inputClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Release all simulated inputs",
	RunE:  runInputClear,
}

var inputListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available input actions",
	RunE:  runInputList,
}

var inputSequenceCmd = &cobra.Command{
	Use:   "sequence <file>",
	Short: "Run an input sequence from a JSON file",
	Long: `Run an input sequence from a JSON file.

The sequence executes asynchronously inside the game: this command returns as
soon as the sequence is accepted, not when it finishes. Watch 'gdctl logs'
for completion.`,
	Args: cobra.ExactArgs(1),
	RunE: runInputSequence,
}

func init() {
	inputPressCmd.Flags().Float64Var(&inputPressStrength, "strength", -1, "Pressure strength 0.0-1.0 (default 1.0)")
	inputTapCmd.Flags().Float64Var(&inputTapHold, "hold", 0, "Hold duration in seconds before release")
	inputTapCmd.Flags().Float64Var(&inputTapStrength, "strength", -1, "Pressure strength 0.0-1.0 (default 1.0)")
	inputListCmd.Flags().BoolVarP(&inputListAll, "all", "a", false, "Include built-in ui_* actions")
	inputSequenceCmd.Flags().DurationVar(&inputSeqTimeout, "timeout", bridge.DefaultSequenceTimeout, "Sequence execution timeout")

	inputCmd.AddCommand(inputPressCmd)
	inputCmd.AddCommand(inputReleaseCmd)
	inputCmd.AddCommand(inputTapCmd)
	inputCmd.AddCommand(inputClearCmd)
	inputCmd.AddCommand(inputListCmd)
	inputCmd.AddCommand(inputSequenceCmd)
	rootCmd.AddCommand(inputCmd)
}

func runInputPress(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.InputPress(cmd.Context(), args[0], inputPressStrength)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	ui.Success("Pressed: %s", args[0])
	printActiveInputs(result)
	return nil
}

func runInputRelease(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.InputRelease(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	ui.Success("Released: %s", args[0])
	printActiveInputs(result)
	return nil
}

func runInputTap(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.InputTap(cmd.Context(), args[0], inputTapHold, inputTapStrength)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	if inputTapHold > 0 {
		ui.Success("Tapped: %s (hold: %.1fs)", args[0], inputTapHold)
	} else {
		ui.Success("Tapped: %s", args[0])
	}
	return nil
}

func runInputClear(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.InputClear(cmd.Context())
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	cleared := stringList(result.Data["cleared_actions"])
	if len(cleared) == 0 {
		ui.Info("No active inputs to clear")
	} else {
		ui.Success("Cleared %d inputs: %s", len(cleared), strings.Join(cleared, ", "))
	}
	return nil
}

func runInputList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.InputActions(cmd.Context(), inputListAll)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(result.Data)
	}

	actions, _ := result.Data["actions"].([]any)
	if len(actions) == 0 {
		ui.Info("No actions found")
		return nil
	}

	tbl := ui.NewTable("ACTION", "STATE", "KEYS")
	for _, raw := range actions {
		action, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, _ := action["name"].(string)

		state := ""
		if pressed, _ := action["is_pressed"].(bool); pressed {
			state = "PRESSED"
		}

		keys := strings.Join(stringList(action["events"]), ", ")
		if keys == "" {
			keys = "(no keys)"
		}

		tbl.AddRow(name, state, keys)
	}
	tbl.Print()
	return nil
}

func runInputSequence(cmd *cobra.Command, args []string) error {
	seq, err := sequence.Load(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if seq.Description != "" {
		ui.Info("Running sequence: %s", seq.Description)
	}
	ui.OutputLine("Executing %d steps...", len(seq.Steps))

	timeout := inputSeqTimeout
	if seq.Timeout > 0 && !cmd.Flags().Changed("timeout") {
		timeout = time.Duration(seq.Timeout * float64(time.Second))
	}

	result, err := client.StartSequence(cmd.Context(), seq, timeout)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	if acceptance, ok := result.Acceptance(); ok {
		ui.Success("Sequence started: %s", acceptance.SequenceID)
	} else {
		ui.Success("Sequence started")
	}
	ui.Info("The sequence runs asynchronously; check 'gdctl logs' for completion")
	return nil
}

// printActiveInputs shows the responder's view of currently held inputs
func printActiveInputs(result *bridge.Result) {
	active := stringList(result.Data["active_inputs"])
	if len(active) > 0 {
		ui.OutputLine("Active inputs: %s", strings.Join(active, ", "))
	}
}

// stringList converts a JSON array of strings, tolerating other shapes
func stringList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
