package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/quantpitch/pitchdeck/internal/presentation"
	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

// DeckHandler handles presentation API endpoints. Every request triggers
// an independent generation run; sessions share nothing.
type DeckHandler struct {
	config  *config.Config
	content *presentation.Content
	logger  *logger.Logger
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(cfg *config.Config, content *presentation.Content, log *logger.Logger) *DeckHandler {
	return &DeckHandler{
		config:  cfg,
		content: content,
		logger:  log,
	}
}

// GetPerformance returns a freshly generated series with summary stats
// GET /api/performance?horizon=75&seed=42
func (h *DeckHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.seriesConfig(w, r)
	if !ok {
		return
	}

	result, err := series.NewGenerator(cfg).Generate()
	if err != nil {
		// Invalid horizon: substitute the configured default rather than
		// surfacing an error page to the viewer.
		h.logger.WithError(err).WithField("horizon", cfg.HorizonDays).
			Warn("Invalid horizon requested, falling back to default")

		cfg.HorizonDays = h.config.Series.HorizonDays
		result, err = series.NewGenerator(cfg).Generate()
		if err != nil {
			result = series.Empty(cfg)
		}
	}

	respondJSON(w, http.StatusOK, result)
}

// GetDeck returns the full presentation model
// GET /api/deck
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	builder := presentation.NewBuilder(h.defaultSeriesConfig(), h.content, h.logger)
	respondJSON(w, http.StatusOK, builder.Build())
}

// seriesConfig builds a generation config from query parameters. Malformed
// numbers are a client error; out-of-range values are handled downstream.
func (h *DeckHandler) seriesConfig(w http.ResponseWriter, r *http.Request) (series.Config, bool) {
	cfg := h.defaultSeriesConfig()

	if raw := r.URL.Query().Get("horizon"); raw != "" {
		horizon, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'horizon' parameter (expected integer)")
			return series.Config{}, false
		}
		cfg.HorizonDays = horizon
	}

	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid 'seed' parameter (expected integer)")
			return series.Config{}, false
		}
		cfg.Seed = seed
	}

	return cfg, true
}

func (h *DeckHandler) defaultSeriesConfig() series.Config {
	cfg := series.DefaultConfig()
	cfg.HorizonDays = h.config.Series.HorizonDays
	cfg.Seed = h.config.Series.Seed
	cfg.PeriodsPerYear = h.config.Series.PeriodsPerYear
	cfg.RiskFreeRate = h.config.Series.RiskFreeRate
	return cfg
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
