package forecast

import (
	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

// Engine turns the fleet table, the per-car/year assumption table and the
// global parameters into the two output series. Projections are recomputed
// in full on every call; the engine keeps no state between calls.
type Engine interface {
	Project(cars []domain.Car, yearly []domain.YearlyAssumption, params domain.GlobalParams) *domain.Projection
}

type engine struct{}

func NewEngine() Engine {
	return &engine{}
}

func (e *engine) Project(
	cars []domain.Car,
	yearly []domain.YearlyAssumption,
	params domain.GlobalParams,
) *domain.Projection {
	horizon := params.Horizon()
	rows := deriveRows(cars, yearly, params)
	pnl := aggregateYears(rows, params, horizon)
	cash := reconcileCash(rows, pnl)

	return &domain.Projection{PnL: pnl, Cash: cash}
}
