package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lucashv/sistema-contabil/internal/ledger"
	"github.com/lucashv/sistema-contabil/internal/models"
	"github.com/lucashv/sistema-contabil/internal/store"
)

// TransactionsHandler handles transaction submission.
type TransactionsHandler struct {
	store *store.Store
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(s *store.Store) *TransactionsHandler {
	return &TransactionsHandler{store: s}
}

// Create handles POST /transactions. The batch is validated against the chart
// of accounts before any storage mutation; on success the writer persists the
// header and lines atomically.
// @Summary Record a double-entry transaction batch
// @Accept json
// @Produce json
// @Success 201 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /transactions [post]
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "failed to parse request body")
		return
	}

	accounts, err := h.store.ListAccounts(r.Context())
	if err != nil {
		slog.Error("failed to load chart of accounts", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	lines, err := ledger.ValidateBatch(req, models.NewAccountIndex(accounts))
	if err != nil {
		var ve *ledger.ValidationError
		if errors.As(err, &ve) {
			writeJSONError(w, http.StatusBadRequest, ve.Message)
			return
		}
		slog.Error("unexpected validation failure", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	batchID, err := h.store.CreateBatch(r.Context(), req.Date, req.Memo, lines)
	if err != nil {
		slog.Error("failed to persist transaction batch", "error", err, "date", req.Date)
		writeJSONError(w, http.StatusInternalServerError, "failed to save transaction")
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: "transaction recorded",
		BatchID: batchID,
	})
}
