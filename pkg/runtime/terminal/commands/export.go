package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/myluxcars/fleetcast/pkg/export"
)

type ExportCmd struct {
	projectPath string
	paramsPath  string
	outDir      string
	format      string
	deps        Dependencies
}

func NewExportCmd(deps Dependencies) *cobra.Command {
	ec := &ExportCmd{deps: deps}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compute the projection and write it to files",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.projectPath, "project", "", "Path to the project JSON file")
	cmd.Flags().StringVar(&ec.paramsPath, "params", "", "Optional YAML file overriding global parameters")
	cmd.Flags().StringVar(&ec.outDir, "out", ".", "Directory to write the exported files to")
	cmd.Flags().StringVar(&ec.format, "format", "csv", "Export format: csv or xlsx")

	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	projection, err := loadProjection(ec.deps, ec.projectPath, ec.paramsPath)
	if err != nil {
		return err
	}

	switch ec.format {
	case "csv":
		if err := ec.writeFile("pnl.csv", func(f *os.File) error {
			return export.WritePnLCSV(f, projection.PnL)
		}); err != nil {
			return err
		}
		return ec.writeFile("cash.csv", func(f *os.File) error {
			return export.WriteCashCSV(f, projection.Cash)
		})
	case "xlsx":
		return ec.writeFile("projection.xlsx", func(f *os.File) error {
			return export.WriteXLSX(f, projection)
		})
	default:
		return fmt.Errorf("unsupported export format %q", ec.format)
	}
}

func (ec *ExportCmd) writeFile(name string, write func(*os.File) error) error {
	path := filepath.Join(ec.outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
