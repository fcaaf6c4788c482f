package api

import (
	"log/slog"
	"net/http"

	"github.com/lucashv/sistema-contabil/internal/models"
	"github.com/lucashv/sistema-contabil/internal/store"
)

// EntriesHandler handles entry listing endpoints.
type EntriesHandler struct {
	store *store.Store
}

// NewEntriesHandler creates a new EntriesHandler.
func NewEntriesHandler(s *store.Store) *EntriesHandler {
	return &EntriesHandler{store: s}
}

// List handles GET /entries: recent entry lines joined with account and batch
// date, newest first.
// @Summary List recent entry lines
// @Produce json
// @Success 200 {array} models.EntryListItem
// @Failure 500 {object} MessageResponse
// @Router /entries [get]
func (h *EntriesHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.ListEntries(r.Context())
	if err != nil {
		slog.Error("failed to list entries", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if entries == nil {
		entries = []models.EntryListItem{}
	}
	writeJSON(w, http.StatusOK, entries)
}
