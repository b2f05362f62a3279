package commands

import (
	"github.com/spf13/cobra"

	"github.com/myluxcars/fleetcast/pkg/export"
)

type ReportCmd struct {
	projectPath string
	paramsPath  string
	deps        Dependencies
	reporter    *export.Reporter
}

func NewReportCmd(deps Dependencies, reporter *export.Reporter) *cobra.Command {
	rc := &ReportCmd{deps: deps, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the projection and print both series",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.projectPath, "project", "", "Path to the project JSON file")
	cmd.Flags().StringVar(&rc.paramsPath, "params", "", "Optional YAML file overriding global parameters")

	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	projection, err := loadProjection(rc.deps, rc.projectPath, rc.paramsPath)
	if err != nil {
		return err
	}

	return rc.reporter.Handle(projection)
}
