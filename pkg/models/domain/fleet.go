package domain

// Car is a single fleet vehicle. PurchasePrice is the acquisition cost that
// depreciation, interest and installment rates are expressed against.
type Car struct {
	ID            string
	Year          int
	Make          string
	Model         string
	Category      string
	PurchasePrice float64
}

// YearlyAssumption holds the operating and financial assumptions for one car
// in one horizon year. Offsets are 1-based horizon years, not calendar years.
type YearlyAssumption struct {
	CarID      string
	YearOffset int

	// Percent of purchase price recognized as depreciation this year.
	DepreciationRate float64
	// Percent of purchase price booked as P&L interest this year.
	InterestRate float64

	PurchaseYear int
	// Nil means the car is never sold within the horizon.
	SaleYear *int

	DailyPrice    float64
	OccupancyRate float64 // percent

	Insurance   float64
	Maintenance float64
	Incident    float64
	Fuel        float64
	Parking     float64
}

// Active reports whether the car is in revenue-generating service at the
// given year offset. The sale year itself is not an operating year; it only
// recognizes disposal proceeds.
func (a YearlyAssumption) Active(year int) bool {
	if year < a.PurchaseYear {
		return false
	}
	if a.SaleYear != nil && year >= *a.SaleYear {
		return false
	}
	return true
}
