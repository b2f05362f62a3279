package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/myluxcars/fleetcast/pkg/adapters"
	"github.com/myluxcars/fleetcast/pkg/export"
	"github.com/myluxcars/fleetcast/pkg/models/api"
	"github.com/myluxcars/fleetcast/pkg/models/domain"
	"github.com/myluxcars/fleetcast/pkg/services/project"
)

type Handler struct {
	manager project.Manager
}

func NewHandler(manager project.Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) GetFleet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cars := h.manager.Cars(ctx)
	response := make([]api.Car, 0, len(cars))
	for _, c := range cars {
		response = append(response, adapters.MapDomainCarToApi(c))
	}

	writeJSON(ctx, w, response)
}

func (h *Handler) PutFleet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload []api.Car
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid fleet payload: %w", err))
		return
	}

	cars := make([]domain.Car, 0, len(payload))
	for _, c := range payload {
		cars = append(cars, adapters.MapApiCarToDomain(c))
	}

	if err := h.manager.SetCars(ctx, cars); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetYearly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	carID := r.URL.Query().Get("car_id")

	rows := h.manager.Yearly(ctx, carID)
	response := make([]api.YearlyRow, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapDomainYearlyRowToApi(row))
	}

	writeJSON(ctx, w, response)
}

func (h *Handler) PutYearly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload []api.YearlyRow
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid yearly payload: %w", err))
		return
	}

	rows := make([]domain.YearlyAssumption, 0, len(payload))
	for _, row := range payload {
		rows = append(rows, adapters.MapApiYearlyRowToDomain(row))
	}

	if err := h.manager.SetYearly(ctx, rows); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetParams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, adapters.MapDomainParamsToApi(h.manager.Params(ctx)))
}

func (h *Handler) PutParams(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload api.GlobalParams
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid params payload: %w", err))
		return
	}

	if err := h.manager.SetParams(ctx, adapters.MapApiParamsToDomain(payload)); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetPnL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projection := h.manager.Projection(ctx)
	writeJSON(ctx, w, adapters.MapDomainPnLToApi(projection.PnL))
}

func (h *Handler) GetCash(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projection := h.manager.Projection(ctx)
	writeJSON(ctx, w, adapters.MapDomainCashToApi(projection.Cash))
}

// ExportSeries streams one series as a CSV or XLSX download.
func (h *Handler) ExportSeries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	series := chi.URLParam(r, "series")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	if series != "pnl" && series != "cash" {
		writeError(ctx, w, http.StatusNotFound, fmt.Errorf("unknown series %q", series))
		return
	}

	projection := h.manager.Projection(ctx)

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", series))

		var err error
		if series == "pnl" {
			err = export.WritePnLCSV(w, projection.PnL)
		} else {
			err = export.WriteCashCSV(w, projection.Cash)
		}
		if err != nil {
			logError(ctx, err, "failed to stream csv export")
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", series))
		if err := export.WriteXLSX(w, projection); err != nil {
			logError(ctx, err, "failed to stream xlsx export")
		}
	default:
		writeError(ctx, w, http.StatusBadRequest, fmt.Errorf("unsupported export format %q", format))
	}
}

func (h *Handler) ExportProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "application/json")
	if err := h.manager.Export(ctx, w); err != nil {
		logError(ctx, err, "failed to stream project export")
	}
}

func (h *Handler) ImportProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.manager.Import(ctx, r.Body); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SaveProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.manager.SaveDefault(ctx); err != nil {
		writeError(ctx, w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logError(ctx, err, "failed to encode response")
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	zerolog.Ctx(ctx).Warn().
		Err(err).
		Int("status", status).
		Msg("request failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func logError(ctx context.Context, err error, msg string) {
	zerolog.Ctx(ctx).Error().Err(err).Msg(msg)
}
