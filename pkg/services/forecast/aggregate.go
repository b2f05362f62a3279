package forecast

import (
	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

// aggregateYears folds the derived rows into the per-year P&L series. The
// result always covers years 1..horizon; with no rows it is a well-formed
// zero series, never an error.
func aggregateYears(rows []derivedRow, params domain.GlobalParams, horizon int) []domain.PnLYear {
	byYear := make(map[int]*domain.PnLYear, horizon)
	pnl := make([]domain.PnLYear, horizon)
	for y := 1; y <= horizon; y++ {
		byYear[y] = &pnl[y-1]
		byYear[y].Year = y
	}

	for _, r := range rows {
		acc, ok := byYear[r.year]
		if !ok {
			continue
		}
		acc.GrossRevenue += r.grossRevenue
		acc.Upsell += r.upsell
		acc.Deductions += r.deductions
		acc.NetRevenue += r.netRevenue
		acc.Insurance += r.insurance
		acc.Maintenance += r.maintenance
		acc.Incident += r.incident
		acc.Fuel += r.fuel
		acc.Parking += r.parking
		acc.Depreciation += r.depreciation
		acc.Interest += r.interest
	}

	for y := 1; y <= horizon; y++ {
		row := byYear[y]

		row.FleetCost = row.Insurance + row.Maintenance + row.Incident +
			row.Fuel + row.Parking + row.Depreciation
		row.GrossProfit = row.NetRevenue - row.FleetCost

		row.Team = params.TeamCostByYear[y]
		row.Marketing = row.NetRevenue * params.MarketingRateByYear[y]
		row.Platform = params.PlatformCostByYear[y]
		row.OtherFixed = params.OtherFixedByYear[y]

		row.EBITDA = row.GrossProfit - (row.Team + row.Marketing + row.Platform + row.OtherFixed)
		row.EBT = row.EBITDA - row.Interest

		// Stateless per-year tax: losses carry no credit forward.
		if row.EBT > 0 {
			row.Tax = row.EBT * params.TaxRate
		}
		row.NetIncome = row.EBT - row.Tax
	}

	return pnl
}
