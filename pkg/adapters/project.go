package adapters

import (
	"strconv"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
	"github.com/myluxcars/fleetcast/pkg/models/store"
)

func MapStoreProjectToDomain(p store.Project) ([]domain.Car, []domain.YearlyAssumption, domain.GlobalParams) {
	cars := make([]domain.Car, 0, len(p.Cars))
	for _, c := range p.Cars {
		cars = append(cars, domain.Car{
			ID:            c.ID,
			Year:          c.Year,
			Make:          c.Make,
			Model:         c.Model,
			Category:      c.Category,
			PurchasePrice: c.PurchasePrice,
		})
	}

	yearly := make([]domain.YearlyAssumption, 0, len(p.Yearly))
	for _, r := range p.Yearly {
		yearly = append(yearly, domain.YearlyAssumption{
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
		})
	}

	params := domain.GlobalParams{
		HorizonYears:         p.GlobalParams.HorizonYears,
		FinancingTerm:        p.GlobalParams.FinancingTerm,
		UpsellRate:           p.GlobalParams.UpsellRate,
		TaxRate:              p.GlobalParams.TaxRate,
		DeductionsRateByYear: yearMapFromStore(p.GlobalParams.DeductionsRateByYear),
		MarketingRateByYear:  yearMapFromStore(p.GlobalParams.MarketingRateByYear),
		TeamCostByYear:       yearMapFromStore(p.GlobalParams.TeamCostByYear),
		PlatformCostByYear:   yearMapFromStore(p.GlobalParams.PlatformCostByYear),
		OtherFixedByYear:     yearMapFromStore(p.GlobalParams.OtherFixedByYear),
	}

	return cars, yearly, params
}

func MapDomainToStoreProject(
	cars []domain.Car,
	yearly []domain.YearlyAssumption,
	params domain.GlobalParams,
) store.Project {
	storeCars := make([]store.Car, 0, len(cars))
	for _, c := range cars {
		storeCars = append(storeCars, store.Car{
			ID:            c.ID,
			Year:          c.Year,
			Make:          c.Make,
			Model:         c.Model,
			Category:      c.Category,
			PurchasePrice: c.PurchasePrice,
		})
	}

	storeYearly := make([]store.YearlyRow, 0, len(yearly))
	for _, r := range yearly {
		storeYearly = append(storeYearly, store.YearlyRow{
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
		})
	}

	return store.Project{
		Cars:   storeCars,
		Yearly: storeYearly,
		GlobalParams: store.GlobalParams{
			HorizonYears:         params.HorizonYears,
			FinancingTerm:        params.FinancingTerm,
			UpsellRate:           params.UpsellRate,
			TaxRate:              params.TaxRate,
			DeductionsRateByYear: yearMapToStore(params.DeductionsRateByYear),
			MarketingRateByYear:  yearMapToStore(params.MarketingRateByYear),
			TeamCostByYear:       yearMapToStore(params.TeamCostByYear),
			PlatformCostByYear:   yearMapToStore(params.PlatformCostByYear),
			OtherFixedByYear:     yearMapToStore(params.OtherFixedByYear),
		},
	}
}

// yearMapFromStore normalizes stringified year keys back to integers.
// Unparsable keys are dropped rather than failing the whole document.
func yearMapFromStore(m map[string]float64) map[int]float64 {
	if m == nil {
		return nil
	}
	out := make(map[int]float64, len(m))
	for k, v := range m {
		year, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[year] = v
	}
	return out
}

func yearMapToStore(m map[int]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[strconv.Itoa(k)] = v
	}
	return out
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
