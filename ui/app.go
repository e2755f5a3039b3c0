package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"strandkin/internal/errors"
	"strandkin/internal/logging"
	"strandkin/internal/profiling"
	"strandkin/ports"
)

// App represents the diagnostics HTTP application
type App struct {
	router   *chi.Mux
	params   ports.EnergyParameters
	profiler *profiling.RateProfiler
	workers  int
	port     string
	logger   *slog.Logger
}

// Config holds diagnostics application configuration
type Config struct {
	Port     string
	Params   ports.EnergyParameters
	Profiler *profiling.RateProfiler
	Workers  int
}

// NewApp creates a new diagnostics application
func NewApp(config Config) (*App, error) {
	if config.Params == nil {
		return nil, errors.ConfigInvalid("energy parameters are required")
	}
	if config.Profiler == nil {
		config.Profiler = profiling.NewRateProfiler()
	}
	if config.Port == "" {
		config.Port = "8080"
	}

	app := &App{
		router:   chi.NewRouter(),
		params:   config.Params,
		profiler: config.Profiler,
		workers:  config.Workers,
		port:     config.Port,
		logger:   logging.New("ui"),
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Timeout(30 * time.Second))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/options", a.handleOptions)
		r.Get("/profile", a.handleProfile)
		r.Get("/combine", a.handleCombine)
		r.Get("/decode/{product}", a.handleDecode)
		r.Post("/tally", a.handleTally)
	})
}

// Handler exposes the router, mainly for tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	a.logger.Info("starting diagnostics server", "addr", addr)
	server := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}

// JSON helpers
func (a *App) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		a.logger.Error("failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"` + errors.CodeInternalError + `","error":"failed to encode response"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidInput, errors.CodeInvariantViolation:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeConfigInvalid:
		status = http.StatusUnprocessableEntity
	case errors.CodeCancelled:
		// client went away or the request timed out
		status = http.StatusServiceUnavailable
	}
	switch status {
	case http.StatusInternalServerError:
		a.logger.Error("request failed", "error", err)
	case http.StatusServiceUnavailable:
		a.logger.Info("request cancelled", "error", err)
	}
	a.writeJSON(w, status, map[string]string{
		"code":  code,
		"error": fmt.Sprint(err),
	})
}
