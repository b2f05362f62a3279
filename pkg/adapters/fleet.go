package adapters

import (
	"maps"

	"github.com/myluxcars/fleetcast/pkg/models/api"
	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

func MapApiCarToDomain(c api.Car) domain.Car {
	return domain.Car{
		ID:            c.ID,
		Year:          c.Year,
		Make:          c.Make,
		Model:         c.Model,
		Category:      c.Category,
		PurchasePrice: c.PurchasePrice,
	}
}

func MapDomainCarToApi(c domain.Car) api.Car {
	return api.Car{
		ID:            c.ID,
		Year:          c.Year,
		Make:          c.Make,
		Model:         c.Model,
		Category:      c.Category,
		PurchasePrice: c.PurchasePrice,
	}
}

func MapApiYearlyRowToDomain(r api.YearlyRow) domain.YearlyAssumption {
	return domain.YearlyAssumption{
		CarID:            r.CarID,
		YearOffset:       r.YearOffset,
		DepreciationRate: r.DepreciationRate,
		InterestRate:     r.InterestRate,
		PurchaseYear:     r.PurchaseYear,
		SaleYear:         cloneIntPtr(r.SaleYear),
		DailyPrice:       r.DailyPrice,
		OccupancyRate:    r.OccupancyRate,
		Insurance:        r.Insurance,
		Maintenance:      r.Maintenance,
		Incident:         r.Incident,
		Fuel:             r.Fuel,
		Parking:          r.Parking,
	}
}

func MapDomainYearlyRowToApi(r domain.YearlyAssumption) api.YearlyRow {
	return api.YearlyRow{
		CarID:            r.CarID,
		YearOffset:       r.YearOffset,
		DepreciationRate: r.DepreciationRate,
		InterestRate:     r.InterestRate,
		PurchaseYear:     r.PurchaseYear,
		SaleYear:         cloneIntPtr(r.SaleYear),
		DailyPrice:       r.DailyPrice,
		OccupancyRate:    r.OccupancyRate,
		Insurance:        r.Insurance,
		Maintenance:      r.Maintenance,
		Incident:         r.Incident,
		Fuel:             r.Fuel,
		Parking:          r.Parking,
	}
}

func MapApiParamsToDomain(p api.GlobalParams) domain.GlobalParams {
	return domain.GlobalParams{
		HorizonYears:         p.HorizonYears,
		FinancingTerm:        p.FinancingTerm,
		UpsellRate:           p.UpsellRate,
		TaxRate:              p.TaxRate,
		DeductionsRateByYear: maps.Clone(p.DeductionsRateByYear),
		MarketingRateByYear:  maps.Clone(p.MarketingRateByYear),
		TeamCostByYear:       maps.Clone(p.TeamCostByYear),
		PlatformCostByYear:   maps.Clone(p.PlatformCostByYear),
		OtherFixedByYear:     maps.Clone(p.OtherFixedByYear),
	}
}

func MapDomainParamsToApi(p domain.GlobalParams) api.GlobalParams {
	return api.GlobalParams{
		HorizonYears:         p.HorizonYears,
		FinancingTerm:        p.FinancingTerm,
		UpsellRate:           p.UpsellRate,
		TaxRate:              p.TaxRate,
		DeductionsRateByYear: maps.Clone(p.DeductionsRateByYear),
		MarketingRateByYear:  maps.Clone(p.MarketingRateByYear),
		TeamCostByYear:       maps.Clone(p.TeamCostByYear),
		PlatformCostByYear:   maps.Clone(p.PlatformCostByYear),
		OtherFixedByYear:     maps.Clone(p.OtherFixedByYear),
	}
}
