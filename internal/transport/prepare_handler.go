// Package transport exposes HTTP handlers for transaction preparation.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/luisburigo/fuel-predicate-example/internal/predicate/coder"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/model"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/program"
	"github.com/luisburigo/fuel-predicate-example/internal/predicate/service"
	"go.uber.org/zap"
)

const maxRequestBytes = 1 << 20

// PrepareRequest is the body of a preparation call.
type PrepareRequest struct {
	Transaction *model.TransactionDraft `json:"transaction"`
	Signers     []model.Address         `json:"signers"`
	Schemes     []model.SignatureType   `json:"schemes"`
}

// PrepareResponse wraps a prepared draft with the witness indexes left for real signatures.
type PrepareResponse struct {
	*service.Prepared
	WitnessSlots []int `json:"witness_slots"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PrepareHandler serves fee preparation for drafts spending from a configured predicate.
type PrepareHandler struct {
	assembler Assembler
	template  *program.Template
	logger    *zap.Logger
}

// NewPrepareHandler returns a PrepareHandler instance.
func NewPrepareHandler(assembler Assembler, template *program.Template, logger *zap.Logger) (*PrepareHandler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if assembler == nil {
		return nil, errors.New("assembler is required")
	}
	if template == nil {
		return nil, errors.New("predicate template is required")
	}
	return &PrepareHandler{
		assembler: assembler,
		template:  template,
		logger:    logger.Named("prepare_handler"),
	}, nil
}

// Register mounts the handler's routes on mux.
func (h *PrepareHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/transactions/prepare", h.Prepare)
	mux.HandleFunc("GET /healthz", h.Health)
}

// Health reports server health.
func (h *PrepareHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// Prepare decodes a PrepareRequest and answers with the prepared draft.
func (h *PrepareHandler) Prepare(w http.ResponseWriter, r *http.Request) {
	var req PrepareRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.Transaction == nil {
		h.fail(w, http.StatusBadRequest, errors.New("transaction is required"))
		return
	}

	predicate, err := h.template.New(req.Signers)
	if err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("configure predicate: %w", err))
		return
	}

	prepared, err := h.assembler.Prepare(r.Context(), req.Transaction, predicate, req.Schemes)
	if err != nil {
		h.fail(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, PrepareResponse{Prepared: prepared, WitnessSlots: prepared.SlotIndexes()})
}

func (h *PrepareHandler) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("prepare failed", zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("prepare rejected", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, coder.ErrUnknownScheme):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrFeeInsufficient):
		return http.StatusConflict
	case errors.Is(err, service.ErrEstimationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
