package domain

// PnLYear is one fiscal-year row of the aggregated profit-and-loss series.
type PnLYear struct {
	Year int

	GrossRevenue float64
	Upsell       float64
	Deductions   float64
	NetRevenue   float64

	Insurance   float64
	Maintenance float64
	Incident    float64
	Fuel        float64
	Parking     float64

	Depreciation float64
	FleetCost    float64
	GrossProfit  float64

	Team       float64
	Marketing  float64
	Platform   float64
	OtherFixed float64
	EBITDA     float64

	Interest  float64
	EBT       float64
	Tax       float64
	NetIncome float64
}

// CashYear is one fiscal-year row of the cash-flow series derived from the
// P&L: net income plus the depreciation add-back, minus financing principal,
// plus fleet disposal proceeds.
type CashYear struct {
	Year int

	NetIncome    float64
	Depreciation float64
	Principal    float64
	FleetSale    float64
	NetCash      float64
}

// Projection bundles the two output series. Both are ordered by year
// 1..horizon and are always structurally complete, even for empty input.
type Projection struct {
	PnL  []PnLYear
	Cash []CashYear
}
