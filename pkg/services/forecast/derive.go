package forecast

import (
	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

// derivedRow is the per-(car, year) intermediate shared by the aggregation
// and cash stages. Every monetary field is zero for inactive rows.
type derivedRow struct {
	carID         string
	year          int
	purchasePrice float64
	saleYear      *int
	active        bool

	grossRevenue float64
	upsell       float64
	deductions   float64
	netRevenue   float64

	insurance   float64
	maintenance float64
	incident    float64
	fuel        float64
	parking     float64

	depreciation float64
	interest     float64
	principal    float64

	// Depreciation rate carried through for the sale-year book-value walk,
	// which recognizes the sale year's depreciation even though the row is
	// not an operating year.
	depreciationRate float64
}

// deriveRows joins the assumption table against the fleet table and computes
// the row-level financials. Rows referencing an unknown CarID or a year
// offset outside 1..horizon drop out entirely (inner-join semantics).
func deriveRows(
	cars []domain.Car,
	yearly []domain.YearlyAssumption,
	params domain.GlobalParams,
) []derivedRow {
	carsByID := make(map[string]domain.Car, len(cars))
	for _, c := range cars {
		if c.ID == "" {
			continue
		}
		carsByID[c.ID] = c
	}

	horizon := params.Horizon()
	installmentRate := params.AnnualInstallmentRate()

	rows := make([]derivedRow, 0, len(yearly))
	for _, a := range yearly {
		if a.YearOffset < 1 || a.YearOffset > horizon {
			continue
		}
		car, ok := carsByID[a.CarID]
		if !ok {
			continue
		}

		row := derivedRow{
			carID:            car.ID,
			year:             a.YearOffset,
			purchasePrice:    car.PurchasePrice,
			saleYear:         a.SaleYear,
			active:           a.Active(a.YearOffset),
			depreciationRate: a.DepreciationRate,
		}
		if !row.active {
			rows = append(rows, row)
			continue
		}

		row.grossRevenue = a.DailyPrice * (a.OccupancyRate / 100.0) * domain.DaysPerYear
		row.upsell = row.grossRevenue * params.UpsellRate
		row.deductions = (row.grossRevenue + row.upsell) * params.DeductionsRateByYear[a.YearOffset]
		row.netRevenue = (row.grossRevenue + row.upsell) - row.deductions

		row.insurance = a.Insurance
		row.maintenance = a.Maintenance
		row.incident = a.Incident
		row.fuel = a.Fuel
		row.parking = a.Parking

		row.depreciation = (a.DepreciationRate / 100.0) * car.PurchasePrice
		row.interest = (a.InterestRate / 100.0) * car.PurchasePrice

		installment := installmentRate * car.PurchasePrice
		row.principal = max(installment-row.interest, 0)

		rows = append(rows, row)
	}

	return rows
}
