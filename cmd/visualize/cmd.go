package visualize

import (
	"github.com/spf13/cobra"

	"github.com/mkljngd/RoadNetOptimizer/internal/app"
	"github.com/mkljngd/RoadNetOptimizer/internal/config"
)

var overrides config.Overrides

// Command creates the interactive visualize command.
func Command() *cobra.Command {
	visualizeCmd := &cobra.Command{
		Use:   "visualize",
		Short: "Pick stored routes interactively and render them",
		Long: `Visualize lists the stored routes, prompts for one, renders it, and
offers another pass until you type 'exit'.`,
		RunE: run,
	}
	overrides.Register(visualizeCmd.Flags())
	return visualizeCmd
}

func run(cmd *cobra.Command, _ []string) error {
	a, err := app.Bootstrap(overrides)
	if err != nil {
		return err
	}
	a.Run(cmd.Context())
	return nil
}
