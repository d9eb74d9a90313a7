package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aki/gdctl/internal/cli/ui"
)

var performanceCmd = &cobra.Command{
	Use:   "performance",
	Short: "Show frame, memory, and object metrics",
	RunE:  runPerformance,
}

func init() {
	rootCmd.AddCommand(performanceCmd)
}

func runPerformance(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := client.Performance(cmd.Context())
	if err != nil {
		return err
	}
	if !result.Success {
		return resultError(result)
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(result.Data)
	}

	data := result.Data
	metric := func(key string) float64 {
		v, _ := data[key].(float64)
		return v
	}

	tbl := ui.NewTable("METRIC", "VALUE")
	tbl.AddRow("FPS", fmt.Sprintf("%.1f", metric("fps")))
	tbl.AddRow("Frame time", fmt.Sprintf("%.2f ms", metric("frame_time_ms")))
	tbl.AddRow("Physics FPS", fmt.Sprintf("%d", int(metric("physics_fps"))))
	tbl.AddRow("Draw calls", fmt.Sprintf("%d", int(metric("draw_calls"))))
	tbl.AddRow("Objects", fmt.Sprintf("%d", int(metric("objects"))))
	tbl.AddRow("Static memory", fmt.Sprintf("%.1f MB", metric("static_memory_mb")))
	tbl.AddRow("Video memory", fmt.Sprintf("%.1f MB", metric("video_memory_mb")))
	tbl.AddRow("Total nodes", fmt.Sprintf("%d", int(metric("nodes"))))
	tbl.AddRow("Orphan nodes", fmt.Sprintf("%d", int(metric("orphan_nodes"))))
	tbl.AddRow("Physics 2D objects", fmt.Sprintf("%d", int(metric("physics_2d_active_objects"))))
	tbl.AddRow("Physics 3D objects", fmt.Sprintf("%d", int(metric("physics_3d_active_objects"))))
	tbl.Print()

	return nil
}
