package routes

import (
	"github.com/spf13/cobra"

	"github.com/mkljngd/RoadNetOptimizer/internal/app"
	"github.com/mkljngd/RoadNetOptimizer/internal/config"
)

var overrides config.Overrides

// Command creates the route listing command.
func Command() *cobra.Command {
	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the stored routes without rendering anything",
		RunE:  run,
	}
	overrides.Register(routesCmd.Flags())
	return routesCmd
}

func run(cmd *cobra.Command, _ []string) error {
	a, err := app.Bootstrap(overrides)
	if err != nil {
		return err
	}
	a.ListRoutes(cmd.Context())
	return nil
}
