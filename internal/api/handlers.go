package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/models"
	"github.com/sakshikhedkar45-commits/Stockanalysis/internal/timeframe"
)

// DefaultTimeframe is applied when a request omits the timeframe parameter
const DefaultTimeframe = "1 Day"

// Analyzer produces analysis bundles for the handlers
type Analyzer interface {
	Analyze(ctx context.Context, symbol, timeframeLabel string) (*models.Bundle, error)
}

// AnalysisHandler handles analysis endpoints
type AnalysisHandler struct {
	analyzer Analyzer
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// HandleAnalysis handles GET /api/v1/analysis/{symbol}?timeframe=
func (h *AnalysisHandler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	symbol := vars["symbol"]

	timeframeLabel := r.URL.Query().Get("timeframe")
	if timeframeLabel == "" {
		timeframeLabel = DefaultTimeframe
	}

	bundle, err := h.analyzer.Analyze(r.Context(), symbol, timeframeLabel)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidTimeframe):
			respondWithError(w, http.StatusBadRequest, "Unknown timeframe: "+timeframeLabel)
		case errors.Is(err, models.ErrInvalidSymbol):
			respondWithError(w, http.StatusBadRequest, "Invalid ticker symbol")
		case errors.Is(err, models.ErrZeroPreviousClose):
			respondWithError(w, http.StatusUnprocessableEntity, "Series not summarizable: previous close is zero")
		default:
			respondWithError(w, http.StatusInternalServerError, "Analysis failed")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, bundle)
}

// HandleTimeframes handles GET /api/v1/timeframes
func (h *AnalysisHandler) HandleTimeframes(w http.ResponseWriter, r *http.Request) {
	labels := timeframe.All()
	out := make([]map[string]interface{}, 0, len(labels))
	for _, label := range labels {
		params, err := timeframe.Resolve(label.String())
		if err != nil {
			continue
		}
		out = append(out, map[string]interface{}{
			"label":      label.String(),
			"range":      params.Range,
			"interval":   params.Interval,
			"resolution": params.Resolution.String(),
		})
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"timeframes": out,
		"count":      len(out),
	})
}

// HandleHealth handles GET /health
func (h *AnalysisHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
	})
}
