package forecast

import (
	"sort"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

// reconcileCash derives the cash series from the P&L: financing principal is
// a cash outflow not visible in the P&L, depreciation is added back as a
// non-cash charge, and disposal proceeds land in each car's sale year.
func reconcileCash(rows []derivedRow, pnl []domain.PnLYear) []domain.CashYear {
	principalByYear := make(map[int]float64)
	for _, r := range rows {
		principalByYear[r.year] += r.principal
	}
	saleByYear := saleProceedsByYear(rows)

	cash := make([]domain.CashYear, len(pnl))
	for i, p := range pnl {
		cash[i] = domain.CashYear{
			Year:         p.Year,
			NetIncome:    p.NetIncome,
			Depreciation: p.Depreciation,
			Principal:    principalByYear[p.Year],
			FleetSale:    saleByYear[p.Year],
		}
		cash[i].NetCash = cash[i].NetIncome + cash[i].Depreciation -
			cash[i].Principal + cash[i].FleetSale
	}

	return cash
}

// saleProceedsByYear walks each car's rows in ascending year order keeping a
// running accumulated depreciation over its active years. In the row whose
// year equals the configured sale year, the sale year's own depreciation is
// recognized first and the car is then sold at book value, floored at zero.
// A car whose purchase and sale year coincide was never active, so its book
// value reflects only the sale year's depreciation.
func saleProceedsByYear(rows []derivedRow) map[int]float64 {
	byCar := make(map[string][]derivedRow)
	carIDs := make([]string, 0)
	for _, r := range rows {
		if _, ok := byCar[r.carID]; !ok {
			carIDs = append(carIDs, r.carID)
		}
		byCar[r.carID] = append(byCar[r.carID], r)
	}
	sort.Strings(carIDs)

	proceeds := make(map[int]float64)
	for _, id := range carIDs {
		carRows := byCar[id]
		sort.Slice(carRows, func(i, j int) bool {
			return carRows[i].year < carRows[j].year
		})

		accumulated := 0.0
		for _, r := range carRows {
			if r.active {
				accumulated += (r.depreciationRate / 100.0) * r.purchasePrice
			}
			if r.saleYear != nil && r.year == *r.saleYear {
				// Depreciate, then sell within the same year.
				accumulated += (r.depreciationRate / 100.0) * r.purchasePrice
				proceeds[r.year] += max(r.purchasePrice-accumulated, 0)
			}
		}
	}

	return proceeds
}
