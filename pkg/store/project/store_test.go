package project

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myluxcars/fleetcast/pkg/models/store"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore()
	path := filepath.Join(t.TempDir(), "project.json")

	sale := 2
	original := &store.Project{
		Cars: []store.Car{
			{ID: "car-1", Year: 2023, Make: "Ferrari", Model: "Roma", Category: "Sports", PurchasePrice: 250_000},
		},
		Yearly: []store.YearlyRow{
			{CarID: "car-1", YearOffset: 1, DepreciationRate: 18, InterestRate: 4.5, PurchaseYear: 1, SaleYear: &sale, DailyPrice: 800, OccupancyRate: 45},
		},
		GlobalParams: store.GlobalParams{
			HorizonYears:         4,
			FinancingTerm:        3,
			UpsellRate:           0.05,
			TaxRate:              0.25,
			DeductionsRateByYear: map[string]float64{"1": 0.1},
			MarketingRateByYear:  map[string]float64{"1": 0.08},
			TeamCostByYear:       map[string]float64{"1": 0},
			PlatformCostByYear:   map[string]float64{"1": 0},
			OtherFixedByYear:     map[string]float64{"1": 0},
		},
		Timestamp: "2025-06-01 12:00:00",
	}

	require.NoError(t, s.Save(path, original))

	loaded, err := s.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	s := NewStore()

	_, err := s.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestReadMalformedDocument(t *testing.T) {
	s := NewStore()

	_, err := s.Read(strings.NewReader(`{"cars": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid project document")
}
