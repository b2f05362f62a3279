package adapters

import (
	"github.com/myluxcars/fleetcast/pkg/models/api"
	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

func MapDomainPnLToApi(pnl []domain.PnLYear) []api.PnLYear {
	out := make([]api.PnLYear, 0, len(pnl))
	for _, y := range pnl {
		out = append(out, api.PnLYear{
			Year:         y.Year,
			GrossRevenue: y.GrossRevenue,
			Upsell:       y.Upsell,
			Deductions:   y.Deductions,
			NetRevenue:   y.NetRevenue,
			Insurance:    y.Insurance,
			Maintenance:  y.Maintenance,
			Incident:     y.Incident,
			Fuel:         y.Fuel,
			Parking:      y.Parking,
			Depreciation: y.Depreciation,
			FleetCost:    y.FleetCost,
			GrossProfit:  y.GrossProfit,
			Team:         y.Team,
			Marketing:    y.Marketing,
			Platform:     y.Platform,
			OtherFixed:   y.OtherFixed,
			EBITDA:       y.EBITDA,
			Interest:     y.Interest,
			EBT:          y.EBT,
			Tax:          y.Tax,
			NetIncome:    y.NetIncome,
		})
	}
	return out
}

func MapDomainCashToApi(cash []domain.CashYear) []api.CashYear {
	out := make([]api.CashYear, 0, len(cash))
	for _, y := range cash {
		out = append(out, api.CashYear{
			Year:         y.Year,
			NetIncome:    y.NetIncome,
			Depreciation: y.Depreciation,
			Principal:    y.Principal,
			FleetSale:    y.FleetSale,
			NetCash:      y.NetCash,
		})
	}
	return out
}
