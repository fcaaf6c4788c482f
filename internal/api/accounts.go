package api

import (
	"log/slog"
	"net/http"

	"github.com/lucashv/sistema-contabil/internal/models"
	"github.com/lucashv/sistema-contabil/internal/store"
)

// AccountsHandler handles chart-of-accounts endpoints.
type AccountsHandler struct {
	store *store.Store
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(s *store.Store) *AccountsHandler {
	return &AccountsHandler{store: s}
}

// List handles GET /accounts.
// @Summary List the chart of accounts
// @Produce json
// @Success 200 {array} models.Account
// @Failure 500 {object} MessageResponse
// @Router /accounts [get]
func (h *AccountsHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context())
	if err != nil {
		slog.Error("failed to list accounts", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}
