package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

func intPtr(v int) *int { return &v }

func baseParams(horizon int) domain.GlobalParams {
	params := domain.GlobalParams{
		HorizonYears:         horizon,
		FinancingTerm:        5,
		UpsellRate:           0,
		TaxRate:              0.25,
		DeductionsRateByYear: map[int]float64{},
		MarketingRateByYear:  map[int]float64{},
		TeamCostByYear:       map[int]float64{},
		PlatformCostByYear:   map[int]float64{},
		OtherFixedByYear:     map[int]float64{},
	}
	return params
}

func singleCar(price float64) []domain.Car {
	return []domain.Car{{
		ID:            "car-1",
		Year:          2022,
		Make:          "Porsche",
		Model:         "911",
		Category:      "Sports",
		PurchasePrice: price,
	}}
}

func yearlyRows(carID string, horizon int, mutate func(*domain.YearlyAssumption)) []domain.YearlyAssumption {
	rows := make([]domain.YearlyAssumption, 0, horizon)
	for y := 1; y <= horizon; y++ {
		row := domain.YearlyAssumption{
			CarID:            carID,
			YearOffset:       y,
			DepreciationRate: 10,
			InterestRate:     4.5,
			PurchaseYear:     1,
			DailyPrice:       120,
			OccupancyRate:    60,
		}
		if mutate != nil {
			mutate(&row)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestProject_SingleCarNoSale(t *testing.T) {
	engine := NewEngine()

	projection := engine.Project(
		singleCar(50_000),
		yearlyRows("car-1", 3, nil),
		baseParams(3),
	)

	require.Len(t, projection.PnL, 3)
	require.Len(t, projection.Cash, 3)

	year1 := projection.PnL[0]
	assert.InDelta(t, 26_280, year1.GrossRevenue, 0.01) // 120 * 0.6 * 365
	assert.InDelta(t, 26_280, year1.NetRevenue, 0.01)
	assert.InDelta(t, 5_000, year1.Depreciation, 0.01)
	assert.InDelta(t, 5_000, year1.FleetCost, 0.01)
	assert.InDelta(t, 21_280, year1.GrossProfit, 0.01)
	assert.InDelta(t, 21_280, year1.EBITDA, 0.01)
	assert.InDelta(t, 2_250, year1.Interest, 0.01)
	assert.InDelta(t, 19_030, year1.EBT, 0.01)
	assert.InDelta(t, 4_757.50, year1.Tax, 0.01)
	assert.InDelta(t, 14_272.50, year1.NetIncome, 0.01)

	cash1 := projection.Cash[0]
	assert.InDelta(t, 9_950, cash1.Principal, 0.01) // 0.244*50k - 2250
	assert.InDelta(t, 0, cash1.FleetSale, 0.01)
	assert.InDelta(t, 9_322.50, cash1.NetCash, 0.01)
}

func TestProject_SaleRecognizedAtBookValue(t *testing.T) {
	engine := NewEngine()

	rows := yearlyRows("car-1", 3, func(r *domain.YearlyAssumption) {
		r.SaleYear = intPtr(2)
	})
	projection := engine.Project(singleCar(50_000), rows, baseParams(3))

	// Year 2 is the sale year: no operating revenue or costs for the car.
	year2 := projection.PnL[1]
	assert.Zero(t, year2.GrossRevenue)
	assert.Zero(t, year2.Depreciation)
	assert.Zero(t, year2.Interest)

	// Book value after recognizing both years of depreciation: 50k - 10k.
	assert.InDelta(t, 40_000, projection.Cash[1].FleetSale, 0.01)
	assert.InDelta(t, 40_000, projection.Cash[1].NetCash, 0.01)
	assert.Zero(t, projection.Cash[0].FleetSale)
	assert.Zero(t, projection.Cash[2].FleetSale)

	// Year 3 stays fully inactive.
	assert.Zero(t, projection.PnL[2].GrossRevenue)
	assert.Zero(t, projection.Cash[2].NetCash)
}

// A car bought and sold in the same year never operates, but the sale is
// still recognized using only that year's depreciation. Intentional quirk,
// kept as-is.
func TestProject_PurchaseAndSaleSameYear(t *testing.T) {
	engine := NewEngine()

	rows := yearlyRows("car-1", 3, func(r *domain.YearlyAssumption) {
		r.SaleYear = intPtr(1)
	})
	projection := engine.Project(singleCar(50_000), rows, baseParams(3))

	for _, y := range projection.PnL {
		assert.Zero(t, y.GrossRevenue, "year %d", y.Year)
		assert.Zero(t, y.Depreciation, "year %d", y.Year)
	}
	assert.InDelta(t, 45_000, projection.Cash[0].FleetSale, 0.01)
}

func TestProject_NoRevenueBeforePurchaseYear(t *testing.T) {
	engine := NewEngine()

	rows := yearlyRows("car-1", 4, func(r *domain.YearlyAssumption) {
		r.PurchaseYear = 3
	})
	projection := engine.Project(singleCar(50_000), rows, baseParams(4))

	assert.Zero(t, projection.PnL[0].GrossRevenue)
	assert.Zero(t, projection.PnL[1].GrossRevenue)
	assert.InDelta(t, 26_280, projection.PnL[2].GrossRevenue, 0.01)
	assert.InDelta(t, 26_280, projection.PnL[3].GrossRevenue, 0.01)

	assert.Zero(t, projection.Cash[0].Principal)
	assert.Zero(t, projection.Cash[1].Principal)
}

func TestProject_PrincipalFlooredAtZero(t *testing.T) {
	engine := NewEngine()

	// P&L interest above the nominal installment must not go negative.
	rows := yearlyRows("car-1", 3, func(r *domain.YearlyAssumption) {
		r.InterestRate = 30
	})
	projection := engine.Project(singleCar(50_000), rows, baseParams(3))

	for _, y := range projection.Cash {
		assert.Zero(t, y.Principal, "year %d", y.Year)
	}
}

func TestProject_NoTaxOnLosses(t *testing.T) {
	engine := NewEngine()

	rows := yearlyRows("car-1", 3, func(r *domain.YearlyAssumption) {
		r.DailyPrice = 0
		r.Maintenance = 20_000
	})
	projection := engine.Project(singleCar(50_000), rows, baseParams(3))

	for _, y := range projection.PnL {
		assert.Less(t, y.EBT, 0.0, "year %d", y.Year)
		assert.Zero(t, y.Tax, "year %d", y.Year)
		assert.InDelta(t, y.EBT, y.NetIncome, 0.01, "year %d", y.Year)
		assert.LessOrEqual(t, y.EBT, y.EBITDA, "year %d", y.Year)
	}
}

func TestProject_EmptyInputProducesZeroSeries(t *testing.T) {
	engine := NewEngine()

	projection := engine.Project(nil, nil, baseParams(4))

	require.Len(t, projection.PnL, 4)
	require.Len(t, projection.Cash, 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, i+1, projection.PnL[i].Year)
		assert.Equal(t, i+1, projection.Cash[i].Year)
		assert.Zero(t, projection.PnL[i].NetIncome)
		assert.Zero(t, projection.Cash[i].NetCash)
	}
}

func TestProject_OrphanRowsAreIgnored(t *testing.T) {
	engine := NewEngine()

	rows := append(
		yearlyRows("car-1", 3, nil),
		yearlyRows("ghost", 3, nil)...,
	)
	withOrphans := engine.Project(singleCar(50_000), rows, baseParams(3))
	without := engine.Project(singleCar(50_000), yearlyRows("car-1", 3, nil), baseParams(3))

	assert.Equal(t, without.PnL, withOrphans.PnL)
	assert.Equal(t, without.Cash, withOrphans.Cash)
}

func TestProject_RowsBeyondHorizonAreTruncated(t *testing.T) {
	engine := NewEngine()

	rows := yearlyRows("car-1", 6, nil)
	projection := engine.Project(singleCar(50_000), rows, baseParams(3))

	require.Len(t, projection.PnL, 3)
	require.Len(t, projection.Cash, 3)
}

func TestProject_GlobalCostsAndRates(t *testing.T) {
	engine := NewEngine()

	params := baseParams(3)
	params.UpsellRate = 0.05
	params.DeductionsRateByYear = map[int]float64{1: 0.10, 2: 0.10, 3: 0.10}
	params.MarketingRateByYear = map[int]float64{1: 0.08, 2: 0.08, 3: 0.08}
	params.TeamCostByYear = map[int]float64{1: 10_000, 2: 10_000, 3: 10_000}
	params.PlatformCostByYear = map[int]float64{1: 1_200, 2: 1_200, 3: 1_200}
	params.OtherFixedByYear = map[int]float64{1: 500, 2: 500, 3: 500}

	projection := engine.Project(singleCar(50_000), yearlyRows("car-1", 3, nil), params)

	year1 := projection.PnL[0]
	gross := 26_280.0
	upsell := gross * 0.05
	deductions := (gross + upsell) * 0.10
	net := gross + upsell - deductions

	assert.InDelta(t, upsell, year1.Upsell, 0.01)
	assert.InDelta(t, deductions, year1.Deductions, 0.01)
	assert.InDelta(t, net, year1.NetRevenue, 0.01)
	assert.InDelta(t, 10_000, year1.Team, 0.01)
	assert.InDelta(t, net*0.08, year1.Marketing, 0.01)
	assert.InDelta(t, 1_200, year1.Platform, 0.01)
	assert.InDelta(t, 500, year1.OtherFixed, 0.01)

	expectedEBITDA := (net - 5_000) - (10_000 + net*0.08 + 1_200 + 500)
	assert.InDelta(t, expectedEBITDA, year1.EBITDA, 0.01)
}
