package main

import (
	"os"

	"github.com/mkljngd/RoadNetOptimizer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
