package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

// WriteXLSX renders the projection as a workbook with one sheet per series.
func WriteXLSX(w io.Writer, projection *domain.Projection) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSheet(f, "PnL", headerStyle, pnlHeader, pnlRows(projection.PnL)); err != nil {
		return err
	}
	if err := writeSheet(f, "Cash", headerStyle, cashHeader, cashRows(projection.Cash)); err != nil {
		return err
	}

	// excelize always creates "Sheet1"; keep only the two series sheets.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, name string, headerStyle int, header []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", name, err)
	}

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(name, cell, title); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle(name, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to address data cell: %w", err)
			}
			if err := f.SetCellValue(name, cell, value); err != nil {
				return fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	return nil
}

func pnlRows(pnl []domain.PnLYear) [][]interface{} {
	rows := make([][]interface{}, 0, len(pnl))
	for _, y := range pnl {
		rows = append(rows, []interface{}{
			y.Year,
			y.GrossRevenue, y.Upsell, y.Deductions, y.NetRevenue,
			y.Insurance, y.Maintenance, y.Incident, y.Fuel, y.Parking,
			y.Depreciation, y.FleetCost, y.GrossProfit,
			y.Team, y.Marketing, y.Platform, y.OtherFixed, y.EBITDA,
			y.Interest, y.EBT, y.Tax, y.NetIncome,
		})
	}
	return rows
}

func cashRows(cash []domain.CashYear) [][]interface{} {
	rows := make([][]interface{}, 0, len(cash))
	for _, y := range cash {
		rows = append(rows, []interface{}{
			y.Year,
			y.NetIncome, y.Depreciation, y.Principal, y.FleetSale, y.NetCash,
		})
	}
	return rows
}
