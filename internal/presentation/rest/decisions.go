package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/sindhuatluri/LOC/internal/application/dto"
	"github.com/sindhuatluri/LOC/internal/application/usecase"
	"github.com/sindhuatluri/LOC/internal/domain/model"
)

// DecisionHandler serves the public decision API.
type DecisionHandler struct {
	decideApplication *usecase.DecideApplication
	getDecision       *usecase.GetDecision
	listDecisions     *usecase.ListDecisions
	logger            *slog.Logger
}

// NewDecisionHandler creates a new decision API handler.
func NewDecisionHandler(
	decideApplication *usecase.DecideApplication,
	getDecision *usecase.GetDecision,
	listDecisions *usecase.ListDecisions,
	logger *slog.Logger,
) *DecisionHandler {
	return &DecisionHandler{
		decideApplication: decideApplication,
		getDecision:       getDecision,
		listDecisions:     listDecisions,
		logger:            logger,
	}
}

// RegisterRoutes registers decision endpoints on the provided ServeMux.
func (h *DecisionHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/decisions", h.Decide)
	mux.HandleFunc("GET /api/v1/decisions/{id}", h.Get)
	mux.HandleFunc("GET /api/v1/applicants/{applicant_id}/decisions", h.List)
}

// Decide handles a credit decision request.
func (h *DecisionHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req dto.DecideApplicationRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.decideApplication.Execute(r.Context(), req)
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Invalid input data",
				"details": verr.Details(),
			})
		case errors.Is(err, model.ErrScoringUnavailable):
			writeError(w, http.StatusServiceUnavailable, "Scoring models not loaded. Please check server logs.")
		default:
			h.logger.Error("failed to decide application",
				"applicant_id", req.ApplicantID,
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, "Error processing decision")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Get handles a decision lookup by ID.
func (h *DecisionHandler) Get(w http.ResponseWriter, r *http.Request) {
	decisionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid decision id")
		return
	}

	resp, err := h.getDecision.Execute(r.Context(), dto.GetDecisionRequest{DecisionID: decisionID})
	if err != nil {
		if errors.Is(err, model.ErrDecisionNotFound) {
			writeError(w, http.StatusNotFound, "decision not found")
			return
		}
		h.logger.Error("failed to get decision",
			"decision_id", decisionID,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Error retrieving decision")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// List handles a decision history lookup for an applicant.
func (h *DecisionHandler) List(w http.ResponseWriter, r *http.Request) {
	req := dto.ListDecisionsRequest{
		ApplicantID: r.PathValue("applicant_id"),
		Limit:       queryInt(r, "limit"),
		Offset:      queryInt(r, "offset"),
	}

	resp, err := h.listDecisions.Execute(r.Context(), req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "Invalid input data",
				"details": verr.Details(),
			})
			return
		}
		h.logger.Error("failed to list decisions",
			"applicant_id", req.ApplicantID,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, "Error listing decisions")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// queryInt parses an integer query parameter, returning 0 when absent or
// malformed; the use case applies its own defaults and caps.
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}

// readJSON reads and unmarshals a JSON request body into the provided value.
func readJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20)) // 1 MB max
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		return fmt.Errorf("request body is empty")
	}
	return json.Unmarshal(body, v)
}

// writeJSON marshals the value as JSON and writes it to the response.
func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, map[string]string{"error": msg})
}
