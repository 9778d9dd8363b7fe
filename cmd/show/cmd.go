package show

import (
	"github.com/spf13/cobra"

	"github.com/mkljngd/RoadNetOptimizer/internal/app"
	"github.com/mkljngd/RoadNetOptimizer/internal/config"
)

var overrides config.Overrides

// Command creates the endpoint lookup command.
func Command() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show <start> <end>",
		Short: "Render the stored route between two endpoints",
		Args:  cobra.ExactArgs(2),
		RunE:  run,
	}
	overrides.Register(showCmd.Flags())
	return showCmd
}

func run(cmd *cobra.Command, args []string) error {
	a, err := app.Bootstrap(overrides)
	if err != nil {
		return err
	}
	a.ShowRoute(cmd.Context(), args[0], args[1])
	return nil
}
