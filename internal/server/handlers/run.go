// internal/server/handlers/run.go

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodtrend/internal/adapter/storage"
	"foodtrend/internal/domain/suggestion"
	"foodtrend/internal/service/pipeline"
)

// RunStore holds recent pipeline results
type RunStore interface {
	SaveRun(r pipeline.Result)
	GetRun(id string) (pipeline.Result, error)
}

// RunHandler handles pipeline run HTTP requests
type RunHandler struct {
	runner Runner
	store  RunStore
	logger *slog.Logger
}

// NewRunHandler creates a new run handler
func NewRunHandler(runner Runner, store RunStore, logger *slog.Logger) *RunHandler {
	return &RunHandler{
		runner: runner,
		store:  store,
		logger: logger,
	}
}

// CreateRun executes the full pipeline and returns its result
func (h *RunHandler) CreateRun(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if r.Body != nil && r.ContentLength != 0 {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			h.respondWithError(w, http.StatusBadRequest, codeBadRequest, "Invalid run request", err)
			return
		}
	}

	result, err := h.runner.Run(r.Context(), opts, nil)
	if err != nil {
		status, code, message := classifyRunError(err)
		h.respondWithError(w, status, code, message, err)
		return
	}

	h.store.SaveRun(result)
	respondWithJSON(w, http.StatusCreated, result)
}

// GetRun returns a stored run result
func (h *RunHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	result, ok := h.lookup(w, r)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// DownloadReport returns the markdown report of a stored run as an attachment
func (h *RunHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	result, ok := h.lookup(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.ReportFilename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(result.Report))
}

func (h *RunHandler) lookup(w http.ResponseWriter, r *http.Request) (pipeline.Result, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.respondWithError(w, http.StatusBadRequest, codeBadRequest, "Missing run ID", nil)
		return pipeline.Result{}, false
	}

	result, err := h.store.GetRun(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.respondWithError(w, http.StatusNotFound, codeNotFound, "Run not found", nil)
		} else {
			h.respondWithError(w, http.StatusInternalServerError, codeInternal, "Failed to get run", err)
		}
		return pipeline.Result{}, false
	}

	return result, true
}

func (h *RunHandler) respondWithError(w http.ResponseWriter, code int, errCode, message string, err error) {
	logError(h.logger, code, message, err)
	writeError(w, code, errCode, message)
}

// classifyRunError maps pipeline errors to a status, error code, and message
func classifyRunError(err error) (int, string, string) {
	switch {
	case errors.Is(err, suggestion.ErrInvalidFormat):
		return http.StatusBadGateway, codeInvalidFormat, "Suggestion service returned an invalid format"
	case errors.Is(err, suggestion.ErrGenerationFailed):
		return http.StatusBadGateway, codeGenerationFailed, "Suggestion generation failed"
	default:
		return http.StatusInternalServerError, codeInternal, "Pipeline run failed"
	}
}
