package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
)

var (
	runMethodNode   string
	runMethodMethod string
	runMethodArgs   string
)

var runMethodCmd = &cobra.Command{
	Use:   "run-method",
	Short: "Call a method on a node",
	RunE:  runRunMethod,
}

func init() {
	runMethodCmd.Flags().StringVarP(&runMethodNode, "node", "n", "", "Node path")
	runMethodCmd.Flags().StringVarP(&runMethodMethod, "method", "m", "", "Method name")
	runMethodCmd.Flags().StringVarP(&runMethodArgs, "args", "a", "", `Method arguments as a JSON array, e.g. '[25, "name"]'`)
	_ = runMethodCmd.MarkFlagRequired("node")
	_ = runMethodCmd.MarkFlagRequired("method")
	rootCmd.AddCommand(runMethodCmd)
}

func runRunMethod(cmd *cobra.Command, args []string) error {
	var methodArgs []any
	if runMethodArgs != "" {
		if err := json.Unmarshal([]byte(runMethodArgs), &methodArgs); err != nil {
			return fmt.Errorf("--args must be a JSON array: %w", err)
		}
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.RunMethod(cmd.Context(), runMethodNode, runMethodMethod, methodArgs)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(result.Data)
	}

	ui.OutputLine("Result: %v", result.Data["result"])
	return nil
}
