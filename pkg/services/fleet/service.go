package fleet

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

// Service maintains the invariant between the fleet table and the assumption
// table: every car has its full set of per-year rows.
type Service interface {
	// Reconcile appends default assumption rows for every car that has none
	// yet. It never removes rows, so user edits survive fleet changes.
	Reconcile(cars []domain.Car, yearly []domain.YearlyAssumption) []domain.YearlyAssumption

	// NewCarID mints an identifier for a car created without one.
	NewCarID() string

	// ValidateCars rejects fleets with empty or duplicate identifiers or
	// negative purchase prices.
	ValidateCars(cars []domain.Car) error
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) Reconcile(
	cars []domain.Car,
	yearly []domain.YearlyAssumption,
) []domain.YearlyAssumption {
	existing := make(map[string]bool, len(yearly))
	for _, row := range yearly {
		existing[row.CarID] = true
	}

	var missing []string
	for _, c := range cars {
		if c.ID == "" || existing[c.ID] {
			continue
		}
		existing[c.ID] = true
		missing = append(missing, c.ID)
	}
	if len(missing) == 0 {
		return yearly
	}

	return append(yearly, TemplateRows(missing)...)
}

func (s *service) NewCarID() string {
	return uuid.NewString()
}

func (s *service) ValidateCars(cars []domain.Car) error {
	seen := make(map[string]bool, len(cars))
	for i, c := range cars {
		if c.ID == "" {
			return fmt.Errorf("car at index %d has an empty id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate car id %q", c.ID)
		}
		seen[c.ID] = true
		if c.PurchasePrice < 0 {
			return fmt.Errorf("car %q has a negative purchase price", c.ID)
		}
	}
	return nil
}
