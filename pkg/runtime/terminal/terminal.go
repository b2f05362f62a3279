package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/myluxcars/fleetcast/pkg/export"
	"github.com/myluxcars/fleetcast/pkg/runtime/terminal/commands"
	"github.com/myluxcars/fleetcast/pkg/services/fleet"
	"github.com/myluxcars/fleetcast/pkg/services/forecast"
	projectstore "github.com/myluxcars/fleetcast/pkg/store/project"
)

// CLI represents the command-line interface
type CLI struct {
	engine   forecast.Engine
	fleet    fleet.Service
	store    projectstore.Store
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Engine forecast.Engine
	Fleet  fleet.Service
	Store  projectstore.Store
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		engine:   opts.Engine,
		fleet:    opts.Fleet,
		store:    opts.Store,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleetcast",
		Short: "Fleet P&L and cash-flow projection tool",
	}

	deps := commands.Dependencies{
		Engine: cli.engine,
		Fleet:  cli.fleet,
		Store:  cli.store,
	}

	cmd.AddCommand(commands.NewReportCmd(deps, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(deps))

	return cmd
}
