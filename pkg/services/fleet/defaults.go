package fleet

import (
	"math"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

const (
	defaultInterestRate  = 4.5 // percent of purchase price per year
	defaultDailyPrice    = 120.0
	defaultOccupancyRate = 60.0

	defaultInsurance   = 1200.0
	defaultMaintenance = 1000.0
	defaultIncident    = 900.0
	defaultFuel        = 275.0
	defaultParking     = 0.0

	fallbackDepreciationRate = 10.0
)

// cumulativeDepreciation is the default US-premium-segment depreciation
// curve: fraction of the purchase price written off by the end of each year.
// Per-year template rates are the deltas between consecutive entries.
var cumulativeDepreciation = map[int]float64{
	1: 0.18,
	2: 0.30,
	3: 0.40,
	4: 0.50,
	5: 0.58,
	6: 0.65,
}

func defaultDepreciationRate(year int) float64 {
	acc, ok := cumulativeDepreciation[year]
	if !ok {
		return fallbackDepreciationRate
	}
	rate := (acc - cumulativeDepreciation[year-1]) * 100
	return math.Round(rate*100) / 100
}

// TemplateRows builds the default assumption rows for the given car IDs,
// one row per horizon year offset 1..MaxHorizon.
func TemplateRows(carIDs []string) []domain.YearlyAssumption {
	rows := make([]domain.YearlyAssumption, 0, len(carIDs)*domain.MaxHorizon)
	for _, id := range carIDs {
		for y := 1; y <= domain.MaxHorizon; y++ {
			rows = append(rows, domain.YearlyAssumption{
				CarID:            id,
				YearOffset:       y,
				DepreciationRate: defaultDepreciationRate(y),
				InterestRate:     defaultInterestRate,
				PurchaseYear:     1,
				SaleYear:         nil,
				DailyPrice:       defaultDailyPrice,
				OccupancyRate:    defaultOccupancyRate,
				Insurance:        defaultInsurance,
				Maintenance:      defaultMaintenance,
				Incident:         defaultIncident,
				Fuel:             defaultFuel,
				Parking:          defaultParking,
			})
		}
	}
	return rows
}
