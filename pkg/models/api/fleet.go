package api

type Car struct {
	ID            string  `json:"car_id"`
	Year          int     `json:"year"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Category      string  `json:"category"`
	PurchasePrice float64 `json:"purchase_price"`
}

type YearlyRow struct {
	CarID            string  `json:"car_id"`
	YearOffset       int     `json:"year_offset"`
	DepreciationRate float64 `json:"depreciation_rate_pct"`
	InterestRate     float64 `json:"interest_rate_pct"`
	PurchaseYear     int     `json:"purchase_year"`
	SaleYear         *int    `json:"sale_year,omitempty"`
	DailyPrice       float64 `json:"daily_price"`
	OccupancyRate    float64 `json:"occupancy_rate_pct"`
	Insurance        float64 `json:"insurance"`
	Maintenance      float64 `json:"maintenance"`
	Incident         float64 `json:"incident"`
	Fuel             float64 `json:"fuel"`
	Parking          float64 `json:"parking"`
}

type GlobalParams struct {
	HorizonYears         int             `json:"horizon_years"`
	FinancingTerm        int             `json:"financing_term"`
	UpsellRate           float64         `json:"upsell_rate"`
	TaxRate              float64         `json:"tax_rate"`
	DeductionsRateByYear map[int]float64 `json:"deductions_rate_by_year"`
	MarketingRateByYear  map[int]float64 `json:"marketing_rate_by_year"`
	TeamCostByYear       map[int]float64 `json:"team_cost_by_year"`
	PlatformCostByYear   map[int]float64 `json:"platform_cost_by_year"`
	OtherFixedByYear     map[int]float64 `json:"other_fixed_by_year"`
}
