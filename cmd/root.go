package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkljngd/RoadNetOptimizer/cmd/routes"
	"github.com/mkljngd/RoadNetOptimizer/cmd/seed"
	"github.com/mkljngd/RoadNetOptimizer/cmd/show"
	"github.com/mkljngd/RoadNetOptimizer/cmd/visualize"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "routeviz",
	Short: "Browse and render precomputed graph routes",
	Long: `Routeviz reads precomputed road-network routes from Redis or flat
files and renders them as interactive HTML pages or static PNG charts.

Routes are stored as "Path: A -> B -> C" lines; pick one interactively
with 'visualize', render a specific endpoint pair with 'show', or load
data with 'seed'.`,
	SilenceUsage: true,
}

// Execute runs the command tree. It is called once by main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(
		visualize.Command(),
		routes.Command(),
		show.Command(),
		seed.Command(),
	)
}
