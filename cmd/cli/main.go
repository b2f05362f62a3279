package main

import (
	"fmt"
	"os"

	"github.com/myluxcars/fleetcast/pkg/runtime/terminal"
	"github.com/myluxcars/fleetcast/pkg/services/fleet"
	"github.com/myluxcars/fleetcast/pkg/services/forecast"
	projectstore "github.com/myluxcars/fleetcast/pkg/store/project"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Engine: forecast.NewEngine(),
		Fleet:  fleet.NewService(),
		Store:  projectstore.NewStore(),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
