package commands

import (
	"fmt"

	"github.com/myluxcars/fleetcast/pkg/adapters"
	"github.com/myluxcars/fleetcast/pkg/models/domain"
	"github.com/myluxcars/fleetcast/pkg/services/config"
	"github.com/myluxcars/fleetcast/pkg/services/fleet"
	"github.com/myluxcars/fleetcast/pkg/services/forecast"
	"github.com/myluxcars/fleetcast/pkg/services/project"
	projectstore "github.com/myluxcars/fleetcast/pkg/store/project"
)

// Dependencies are shared by all terminal commands.
type Dependencies struct {
	Engine forecast.Engine
	Fleet  fleet.Service
	Store  projectstore.Store
}

// loadProjection reads a project file, optionally overrides its parameters
// from a params file, and computes both series.
func loadProjection(deps Dependencies, projectPath, paramsPath string) (*domain.Projection, error) {
	doc, err := deps.Store.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	cars, yearly, params := adapters.MapStoreProjectToDomain(*doc)
	yearly = deps.Fleet.Reconcile(cars, yearly)

	if paramsPath != "" {
		params, err = config.LoadParams(paramsPath)
		if err != nil {
			return nil, err
		}
	} else if params.HorizonYears == 0 {
		params = project.DefaultParams()
	}

	return deps.Engine.Project(cars, yearly, params), nil
}
