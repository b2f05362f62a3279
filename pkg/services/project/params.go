package project

import (
	"fmt"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

const (
	defaultUpsellRate     = 0.05
	defaultTaxRate        = 0.25
	defaultDeductionsRate = 0.10
	defaultMarketingRate  = 0.08
)

// DefaultParams is the parameter set used before any project or config file
// is loaded: six-year horizon, five-year financing, standard rates and no
// fixed overhead.
func DefaultParams() domain.GlobalParams {
	params := domain.GlobalParams{
		HorizonYears:         domain.MaxHorizon,
		FinancingTerm:        5,
		UpsellRate:           defaultUpsellRate,
		TaxRate:              defaultTaxRate,
		DeductionsRateByYear: make(map[int]float64, domain.MaxHorizon),
		MarketingRateByYear:  make(map[int]float64, domain.MaxHorizon),
		TeamCostByYear:       make(map[int]float64, domain.MaxHorizon),
		PlatformCostByYear:   make(map[int]float64, domain.MaxHorizon),
		OtherFixedByYear:     make(map[int]float64, domain.MaxHorizon),
	}
	for y := 1; y <= domain.MaxHorizon; y++ {
		params.DeductionsRateByYear[y] = defaultDeductionsRate
		params.MarketingRateByYear[y] = defaultMarketingRate
		params.TeamCostByYear[y] = 0
		params.PlatformCostByYear[y] = 0
		params.OtherFixedByYear[y] = 0
	}
	return params
}

// mergeParams fills any year-map entries a loaded parameter set is missing
// with the defaults, so a sparse document still drives a full horizon.
func mergeParams(loaded domain.GlobalParams) domain.GlobalParams {
	defaults := DefaultParams()

	loaded.DeductionsRateByYear = mergeYearMap(loaded.DeductionsRateByYear, defaults.DeductionsRateByYear)
	loaded.MarketingRateByYear = mergeYearMap(loaded.MarketingRateByYear, defaults.MarketingRateByYear)
	loaded.TeamCostByYear = mergeYearMap(loaded.TeamCostByYear, defaults.TeamCostByYear)
	loaded.PlatformCostByYear = mergeYearMap(loaded.PlatformCostByYear, defaults.PlatformCostByYear)
	loaded.OtherFixedByYear = mergeYearMap(loaded.OtherFixedByYear, defaults.OtherFixedByYear)

	return loaded
}

func mergeYearMap(loaded, defaults map[int]float64) map[int]float64 {
	if loaded == nil {
		loaded = make(map[int]float64, len(defaults))
	}
	for y, v := range defaults {
		if _, ok := loaded[y]; !ok {
			loaded[y] = v
		}
	}
	return loaded
}

// ValidateParams enforces the documented parameter bounds: horizon 3..6, a
// known financing term, fractional rates in [0, 1] and non-negative costs.
func ValidateParams(p domain.GlobalParams) error {
	if p.HorizonYears < domain.MinHorizon || p.HorizonYears > domain.MaxHorizon {
		return fmt.Errorf("horizon %d outside %d..%d", p.HorizonYears, domain.MinHorizon, domain.MaxHorizon)
	}
	if _, ok := domain.AnnualInstallmentByTerm[p.FinancingTerm]; !ok {
		return fmt.Errorf("unknown financing term %d", p.FinancingTerm)
	}
	if p.UpsellRate < 0 || p.UpsellRate > 1 {
		return fmt.Errorf("upsell rate %.4f outside [0, 1]", p.UpsellRate)
	}
	if p.TaxRate < 0 || p.TaxRate > 1 {
		return fmt.Errorf("tax rate %.4f outside [0, 1]", p.TaxRate)
	}

	for y := 1; y <= p.HorizonYears; y++ {
		if rate := p.DeductionsRateByYear[y]; rate < 0 || rate > 1 {
			return fmt.Errorf("deductions rate %.4f for year %d outside [0, 1]", rate, y)
		}
		if rate := p.MarketingRateByYear[y]; rate < 0 || rate > 1 {
			return fmt.Errorf("marketing rate %.4f for year %d outside [0, 1]", rate, y)
		}
		if cost := p.TeamCostByYear[y]; cost < 0 {
			return fmt.Errorf("negative team cost for year %d", y)
		}
		if cost := p.PlatformCostByYear[y]; cost < 0 {
			return fmt.Errorf("negative platform cost for year %d", y)
		}
		if cost := p.OtherFixedByYear[y]; cost < 0 {
			return fmt.Errorf("negative other fixed cost for year %d", y)
		}
	}

	return nil
}
