package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
	"github.com/myluxcars/fleetcast/pkg/services/project"
)

type paramsFile struct {
	HorizonYears         int                `mapstructure:"horizon_years"`
	FinancingTerm        int                `mapstructure:"financing_term"`
	UpsellRate           float64            `mapstructure:"upsell_rate"`
	TaxRate              float64            `mapstructure:"tax_rate"`
	DeductionsRateByYear map[string]float64 `mapstructure:"deductions_rate_by_year"`
	MarketingRateByYear  map[string]float64 `mapstructure:"marketing_rate_by_year"`
	TeamCostByYear       map[string]float64 `mapstructure:"team_cost_by_year"`
	PlatformCostByYear   map[string]float64 `mapstructure:"platform_cost_by_year"`
	OtherFixedByYear     map[string]float64 `mapstructure:"other_fixed_by_year"`
}

// LoadParams loads global projection parameters from a YAML file. Keys the
// file omits fall back to the standard defaults, and the result is validated
// before it is returned.
func LoadParams(path string) (domain.GlobalParams, error) {
	defaults := project.DefaultParams()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("horizon_years", defaults.HorizonYears)
	v.SetDefault("financing_term", defaults.FinancingTerm)
	v.SetDefault("upsell_rate", defaults.UpsellRate)
	v.SetDefault("tax_rate", defaults.TaxRate)

	if err := v.ReadInConfig(); err != nil {
		return domain.GlobalParams{}, fmt.Errorf("failed to read params file: %w", err)
	}

	var cfg paramsFile
	if err := v.Unmarshal(&cfg); err != nil {
		return domain.GlobalParams{}, fmt.Errorf("failed to parse params file: %w", err)
	}

	params := domain.GlobalParams{
		HorizonYears:         cfg.HorizonYears,
		FinancingTerm:        cfg.FinancingTerm,
		UpsellRate:           cfg.UpsellRate,
		TaxRate:              cfg.TaxRate,
		DeductionsRateByYear: yearMap(cfg.DeductionsRateByYear, defaults.DeductionsRateByYear),
		MarketingRateByYear:  yearMap(cfg.MarketingRateByYear, defaults.MarketingRateByYear),
		TeamCostByYear:       yearMap(cfg.TeamCostByYear, defaults.TeamCostByYear),
		PlatformCostByYear:   yearMap(cfg.PlatformCostByYear, defaults.PlatformCostByYear),
		OtherFixedByYear:     yearMap(cfg.OtherFixedByYear, defaults.OtherFixedByYear),
	}

	if err := project.ValidateParams(params); err != nil {
		return domain.GlobalParams{}, fmt.Errorf("invalid params file: %w", err)
	}
	return params, nil
}

func yearMap(loaded map[string]float64, defaults map[int]float64) map[int]float64 {
	out := make(map[int]float64, domain.MaxHorizon)
	for y, v := range defaults {
		out[y] = v
	}
	for k, v := range loaded {
		year, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[year] = v
	}
	return out
}
