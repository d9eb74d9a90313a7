package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
)

var (
	getStateNode string

	setStateNode     string
	setStateProperty string
	setStateValue    string
)

var getStateCmd = &cobra.Command{
	Use:   "get-state",
	Short: "Read a node's state",
	RunE:  runGetState,
}

var setStateCmd = &cobra.Command{
	Use:   "set-state",
	Short: "Set a property on a node",
	Long: `Set a property on a node.

The value is coerced before sending: JSON first, then integer, then float.
A quoted value like '"42"' therefore stays a string while an unquoted 42
becomes a number.`,
	RunE: runSetState,
}

func init() {
	getStateCmd.Flags().StringVarP(&getStateNode, "node", "n", "", "Node path (current scene root if omitted)")
	rootCmd.AddCommand(getStateCmd)

	setStateCmd.Flags().StringVarP(&setStateNode, "node", "n", "", "Node path")
	setStateCmd.Flags().StringVar(&setStateProperty, "property", "", "Property name")
	setStateCmd.Flags().StringVar(&setStateValue, "value", "", "Property value")
	_ = setStateCmd.MarkFlagRequired("node")
	_ = setStateCmd.MarkFlagRequired("property")
	_ = setStateCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(setStateCmd)
}

func runGetState(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.GetState(cmd.Context(), getStateNode)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	return ui.NewJSONFormatter().Output(result.Data)
}

func runSetState(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.SetState(cmd.Context(), setStateNode, setStateProperty, setStateValue)
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	ui.Success("State updated")
	return nil
}
