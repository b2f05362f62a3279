package domain

const (
	// MinHorizon and MaxHorizon bound the projection horizon in years.
	MinHorizon = 3
	MaxHorizon = 6

	// DaysPerYear is the rental-day basis for annual gross revenue.
	DaysPerYear = 365
)

// AnnualInstallmentByTerm maps a financing term (years) to the total annual
// installment as a fraction of the purchase price. The figure blends
// principal and interest; the P&L interest column is configured separately
// per car/year and the cash principal is derived as installment minus
// interest.
var AnnualInstallmentByTerm = map[int]float64{
	3: 0.376,
	4: 0.294,
	5: 0.244,
}

// GlobalParams are the process-wide projection parameters. The year-indexed
// maps are keyed by horizon year 1..HorizonYears.
type GlobalParams struct {
	HorizonYears  int
	FinancingTerm int
	UpsellRate    float64 // fraction of gross revenue
	TaxRate       float64 // fraction of positive EBT

	DeductionsRateByYear map[int]float64
	MarketingRateByYear  map[int]float64
	TeamCostByYear       map[int]float64
	PlatformCostByYear   map[int]float64
	OtherFixedByYear     map[int]float64
}

// Horizon returns the horizon clamped into the supported range so a
// zero-value or out-of-range parameter set still yields a well-formed
// series.
func (p GlobalParams) Horizon() int {
	switch {
	case p.HorizonYears < MinHorizon:
		return MinHorizon
	case p.HorizonYears > MaxHorizon:
		return MaxHorizon
	default:
		return p.HorizonYears
	}
}

// AnnualInstallmentRate resolves the financing term against the fixed
// installment table. Unknown terms contribute no installment, which floors
// the derived principal at zero.
func (p GlobalParams) AnnualInstallmentRate() float64 {
	return AnnualInstallmentByTerm[p.FinancingTerm]
}
