package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

var pnlHeader = []string{
	"Year",
	"GrossRevenue", "Upsell", "Deductions", "NetRevenue",
	"Insurance", "Maintenance", "Incident", "Fuel", "Parking",
	"Depreciation", "FleetCostTotal", "GrossProfit",
	"Team", "Marketing", "Platform", "OtherFixed", "EBITDA",
	"Interest", "EBT", "Tax", "NetIncome",
}

var cashHeader = []string{
	"Year",
	"NetIncome", "DepreciationAddBack", "Principal", "FleetSale", "NetCash",
}

// WritePnLCSV writes the P&L series as delimited text: a header row and one
// data row per fiscal year.
func WritePnLCSV(w io.Writer, pnl []domain.PnLYear) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(pnlHeader); err != nil {
		return fmt.Errorf("failed to write pnl header: %w", err)
	}

	for _, y := range pnl {
		row := []string{
			strconv.Itoa(y.Year),
			amount(y.GrossRevenue), amount(y.Upsell), amount(y.Deductions), amount(y.NetRevenue),
			amount(y.Insurance), amount(y.Maintenance), amount(y.Incident), amount(y.Fuel), amount(y.Parking),
			amount(y.Depreciation), amount(y.FleetCost), amount(y.GrossProfit),
			amount(y.Team), amount(y.Marketing), amount(y.Platform), amount(y.OtherFixed), amount(y.EBITDA),
			amount(y.Interest), amount(y.EBT), amount(y.Tax), amount(y.NetIncome),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write pnl row for year %d: %w", y.Year, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCashCSV writes the cash series in the same shape as WritePnLCSV.
func WriteCashCSV(w io.Writer, cash []domain.CashYear) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cashHeader); err != nil {
		return fmt.Errorf("failed to write cash header: %w", err)
	}

	for _, y := range cash {
		row := []string{
			strconv.Itoa(y.Year),
			amount(y.NetIncome), amount(y.Depreciation), amount(y.Principal),
			amount(y.FleetSale), amount(y.NetCash),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write cash row for year %d: %w", y.Year, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
