package api

type PnLYear struct {
	Year int `json:"year"`

	GrossRevenue float64 `json:"gross_revenue"`
	Upsell       float64 `json:"upsell"`
	Deductions   float64 `json:"deductions"`
	NetRevenue   float64 `json:"net_revenue"`

	Insurance   float64 `json:"insurance"`
	Maintenance float64 `json:"maintenance"`
	Incident    float64 `json:"incident"`
	Fuel        float64 `json:"fuel"`
	Parking     float64 `json:"parking"`

	Depreciation float64 `json:"depreciation"`
	FleetCost    float64 `json:"fleet_cost_total"`
	GrossProfit  float64 `json:"gross_profit"`

	Team       float64 `json:"team"`
	Marketing  float64 `json:"marketing"`
	Platform   float64 `json:"platform"`
	OtherFixed float64 `json:"other_fixed"`
	EBITDA     float64 `json:"ebitda"`

	Interest  float64 `json:"interest"`
	EBT       float64 `json:"ebt"`
	Tax       float64 `json:"tax"`
	NetIncome float64 `json:"net_income"`
}

type CashYear struct {
	Year int `json:"year"`

	NetIncome    float64 `json:"net_income"`
	Depreciation float64 `json:"depreciation_add_back"`
	Principal    float64 `json:"principal"`
	FleetSale    float64 `json:"fleet_sale"`
	NetCash      float64 `json:"net_cash"`
}
