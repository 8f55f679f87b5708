// internal/server/handlers/trend.go

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"foodtrend/internal/domain/post"
	"foodtrend/internal/domain/suggestion"
	"foodtrend/internal/domain/trend"
	"foodtrend/internal/service/pipeline"
)

// Runner is the pipeline surface the handlers drive
type Runner interface {
	Trends(ctx context.Context, location string) (trend.Report, []post.Post, error)
	Run(ctx context.Context, opts pipeline.Options, observe pipeline.Observer) (pipeline.Result, error)
}

// TrendHandler handles trend-related HTTP requests
type TrendHandler struct {
	runner    Runner
	locations []string
	logger    *slog.Logger
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(runner Runner, locations []string, logger *slog.Logger) *TrendHandler {
	return &TrendHandler{
		runner:    runner,
		locations: locations,
		logger:    logger,
	}
}

type optionsResponse struct {
	Locations       []string `json:"locations"`
	RestaurantTypes []string `json:"restaurant_types"`
}

// GetOptions returns the selectable locations and restaurant types
func (h *TrendHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	locations := append([]string{post.AllLocations}, h.locations...)
	respondWithJSON(w, http.StatusOK, optionsResponse{
		Locations:       locations,
		RestaurantTypes: suggestion.RestaurantTypes,
	})
}

// GetPosts returns the current post snapshot for a location
func (h *TrendHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	_, posts, err := h.runner.Trends(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.respondWithError(w, http.StatusInternalServerError, codeInternal, "Failed to get posts", err)
		return
	}

	respondWithJSON(w, http.StatusOK, posts)
}

// GetTrends returns the trend report for a location without requesting suggestions
func (h *TrendHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	report, _, err := h.runner.Trends(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.respondWithError(w, http.StatusInternalServerError, codeInternal, "Failed to get trends", err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// Error codes returned in error bodies
const (
	codeBadRequest       = "bad_request"
	codeNotFound         = "not_found"
	codeInternal         = "internal_error"
	codeGenerationFailed = "suggestion_generation_failed"
	codeInvalidFormat    = "invalid_suggestion_format"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func (h *TrendHandler) respondWithError(w http.ResponseWriter, code int, errCode, message string, err error) {
	logError(h.logger, code, message, err)
	writeError(w, code, errCode, message)
}

func logError(logger *slog.Logger, code int, message string, err error) {
	if err != nil && code >= 500 && logger != nil {
		logger.Error("HTTP error", "code", code, "message", message, "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	jsonResponse, _ := json.Marshal(errorResponse{Error: message, Code: errCode})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}
