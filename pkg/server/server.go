package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/myluxcars/fleetcast/pkg/handlers/forecast"
	fleetcastmiddleware "github.com/myluxcars/fleetcast/pkg/server/middleware"
	"github.com/myluxcars/fleetcast/pkg/services/project"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Dependencies struct {
	Manager project.Manager
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := handlers.NewHandler(config.Dependencies.Manager)

	router := chi.NewRouter()

	router.Use(fleetcastmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/fleet", handler.GetFleet)
		r.Put("/fleet", handler.PutFleet)
		r.Get("/yearly", handler.GetYearly)
		r.Put("/yearly", handler.PutYearly)
		r.Get("/params", handler.GetParams)
		r.Put("/params", handler.PutParams)

		r.Get("/projection/pnl", handler.GetPnL)
		r.Get("/projection/cash", handler.GetCash)
		r.Get("/projection/{series}/export", handler.ExportSeries)

		r.Get("/project", handler.ExportProject)
		r.Post("/project", handler.ImportProject)
		r.Post("/project/save", handler.SaveProject)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
