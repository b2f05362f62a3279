package project

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/myluxcars/fleetcast/pkg/adapters"
	"github.com/myluxcars/fleetcast/pkg/models/domain"
	"github.com/myluxcars/fleetcast/pkg/models/store"
	"github.com/myluxcars/fleetcast/pkg/services/fleet"
	"github.com/myluxcars/fleetcast/pkg/services/forecast"
	projectstore "github.com/myluxcars/fleetcast/pkg/store/project"
)

const timestampLayout = "2006-01-02 15:04:05"

// Manager owns the in-memory project state (fleet, assumptions, parameters)
// and the operations the HTTP and CLI edges run against it. Every mutation
// keeps the fleet/assumption invariant via the fleet service, and the
// projection is recomputed in full on each read.
type Manager interface {
	Cars(ctx context.Context) []domain.Car
	SetCars(ctx context.Context, cars []domain.Car) error
	Yearly(ctx context.Context, carID string) []domain.YearlyAssumption
	SetYearly(ctx context.Context, rows []domain.YearlyAssumption) error
	Params(ctx context.Context) domain.GlobalParams
	SetParams(ctx context.Context, params domain.GlobalParams) error

	Projection(ctx context.Context) *domain.Projection

	Import(ctx context.Context, r io.Reader) error
	Export(ctx context.Context, w io.Writer) error
	SaveDefault(ctx context.Context) error
}

type Dependencies struct {
	Engine forecast.Engine
	Fleet  fleet.Service
	Store  projectstore.Store
}

type manager struct {
	mu     sync.RWMutex
	cars   []domain.Car
	yearly []domain.YearlyAssumption
	params domain.GlobalParams

	engine forecast.Engine
	fleet  fleet.Service
	store  projectstore.Store

	defaultPath string
	now         func() time.Time
}

// NewManager creates a manager seeded from the default project file at path.
// A missing or malformed file is logged and replaced by an empty project;
// startup never fails on it.
func NewManager(ctx context.Context, deps Dependencies, defaultPath string) Manager {
	m := &manager{
		engine:      deps.Engine,
		fleet:       deps.Fleet,
		store:       deps.Store,
		defaultPath: defaultPath,
		params:      DefaultParams(),
		now:         time.Now,
	}
	m.loadDefault(ctx)
	return m
}

func (m *manager) loadDefault(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	doc, err := m.store.Load(m.defaultPath)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("path", m.defaultPath).
			Msg("default project not loaded, starting empty")
		return
	}

	cars, yearly, params := adapters.MapStoreProjectToDomain(*doc)
	m.cars = cars
	m.yearly = m.fleet.Reconcile(cars, yearly)
	if params.HorizonYears != 0 {
		m.params = mergeParams(params)
	}

	logger.Info().
		Str("path", m.defaultPath).
		Int("cars", len(cars)).
		Msg("default project loaded")
}

func (m *manager) Cars(_ context.Context) []domain.Car {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.cars)
}

func (m *manager) SetCars(_ context.Context, cars []domain.Car) error {
	if err := m.fleet.ValidateCars(cars); err != nil {
		return fmt.Errorf("invalid fleet: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cars = slices.Clone(cars)
	m.yearly = m.fleet.Reconcile(m.cars, m.yearly)
	return nil
}

func (m *manager) Yearly(_ context.Context, carID string) []domain.YearlyAssumption {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if carID == "" {
		return slices.Clone(m.yearly)
	}
	var rows []domain.YearlyAssumption
	for _, r := range m.yearly {
		if r.CarID == carID {
			rows = append(rows, r)
		}
	}
	return rows
}

func (m *manager) SetYearly(_ context.Context, rows []domain.YearlyAssumption) error {
	for i, r := range rows {
		if r.CarID == "" {
			return fmt.Errorf("yearly row at index %d has an empty car id", i)
		}
		if r.YearOffset < 1 || r.YearOffset > domain.MaxHorizon {
			return fmt.Errorf("yearly row for car %q has year offset %d outside 1..%d",
				r.CarID, r.YearOffset, domain.MaxHorizon)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.yearly = m.fleet.Reconcile(m.cars, slices.Clone(rows))
	return nil
}

func (m *manager) Params(_ context.Context) domain.GlobalParams {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.params
}

func (m *manager) SetParams(_ context.Context, params domain.GlobalParams) error {
	if err := ValidateParams(params); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.params = params
	return nil
}

func (m *manager) Projection(_ context.Context) *domain.Projection {
	m.mu.RLock()
	cars := m.cars
	yearly := m.yearly
	params := m.params
	m.mu.RUnlock()

	return m.engine.Project(cars, yearly, params)
}

// Import replaces the whole project from an uploaded document. A malformed
// document is a recoverable error and leaves the current state untouched.
func (m *manager) Import(_ context.Context, r io.Reader) error {
	doc, err := m.store.Read(r)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cars, yearly, params := adapters.MapStoreProjectToDomain(*doc)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cars = cars
	m.yearly = m.fleet.Reconcile(cars, yearly)
	if params.HorizonYears != 0 {
		m.params = mergeParams(params)
	}
	return nil
}

func (m *manager) Export(_ context.Context, w io.Writer) error {
	doc := m.snapshot()
	return m.store.Write(w, &doc)
}

func (m *manager) SaveDefault(_ context.Context) error {
	doc := m.snapshot()
	return m.store.Save(m.defaultPath, &doc)
}

func (m *manager) snapshot() store.Project {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc := adapters.MapDomainToStoreProject(m.cars, m.yearly, m.params)
	doc.Timestamp = m.now().Format(timestampLayout)
	return doc
}
