package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

func TestReconcileAddsTemplateRowsForNewCars(t *testing.T) {
	svc := NewService()

	cars := []domain.Car{
		{ID: "car-1", PurchasePrice: 50_000},
		{ID: "car-2", PurchasePrice: 80_000},
	}

	rows := svc.Reconcile(cars, nil)
	require.Len(t, rows, 2*domain.MaxHorizon)

	perCar := make(map[string][]domain.YearlyAssumption)
	for _, r := range rows {
		perCar[r.CarID] = append(perCar[r.CarID], r)
	}
	require.Len(t, perCar["car-1"], domain.MaxHorizon)
	require.Len(t, perCar["car-2"], domain.MaxHorizon)

	first := perCar["car-1"][0]
	assert.Equal(t, 1, first.YearOffset)
	assert.Equal(t, 1, first.PurchaseYear)
	assert.Nil(t, first.SaleYear)
	assert.InDelta(t, 120, first.DailyPrice, 0.01)
	assert.InDelta(t, 60, first.OccupancyRate, 0.01)
	assert.InDelta(t, 4.5, first.InterestRate, 0.01)
}

func TestReconcileTemplateDepreciationFollowsCurve(t *testing.T) {
	svc := NewService()

	rows := svc.Reconcile([]domain.Car{{ID: "car-1"}}, nil)
	require.Len(t, rows, domain.MaxHorizon)

	// Deltas of the cumulative curve 18/30/40/50/58/65.
	want := []float64{18, 12, 10, 10, 8, 7}
	for i, r := range rows {
		assert.InDelta(t, want[i], r.DepreciationRate, 0.001, "year %d", r.YearOffset)
	}
}

func TestReconcileKeepsExistingRows(t *testing.T) {
	svc := NewService()

	existing := []domain.YearlyAssumption{
		{CarID: "car-1", YearOffset: 1, DailyPrice: 999},
	}
	rows := svc.Reconcile([]domain.Car{{ID: "car-1"}}, existing)

	// A car with any rows at all is left alone; reconciliation never edits.
	require.Len(t, rows, 1)
	assert.InDelta(t, 999, rows[0].DailyPrice, 0.01)
}

func TestReconcileIsIdempotent(t *testing.T) {
	svc := NewService()

	cars := []domain.Car{{ID: "car-1"}}
	once := svc.Reconcile(cars, nil)
	twice := svc.Reconcile(cars, once)

	assert.Equal(t, once, twice)
}

func TestValidateCars(t *testing.T) {
	svc := NewService()

	assert.NoError(t, svc.ValidateCars([]domain.Car{
		{ID: "car-1", PurchasePrice: 50_000},
		{ID: "car-2", PurchasePrice: 0},
	}))

	assert.Error(t, svc.ValidateCars([]domain.Car{{ID: ""}}))
	assert.Error(t, svc.ValidateCars([]domain.Car{
		{ID: "car-1"}, {ID: "car-1"},
	}))
	assert.Error(t, svc.ValidateCars([]domain.Car{
		{ID: "car-1", PurchasePrice: -1},
	}))
}

func TestNewCarIDIsUnique(t *testing.T) {
	svc := NewService()

	a := svc.NewCarID()
	b := svc.NewCarID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
