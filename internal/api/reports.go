package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lucashv/sistema-contabil/internal/ledger"
	"github.com/lucashv/sistema-contabil/internal/models"
	"github.com/lucashv/sistema-contabil/internal/render"
	"github.com/lucashv/sistema-contabil/internal/store"
)

// ReportsHandler handles statement endpoints.
type ReportsHandler struct {
	store          *store.Store
	resultRootCode string
}

// NewReportsHandler creates a new ReportsHandler. resultRootCode roots the
// income-statement subtree ("4" in the default chart).
func NewReportsHandler(s *store.Store, resultRootCode string) *ReportsHandler {
	return &ReportsHandler{store: s, resultRootCode: resultRootCode}
}

// IncomeStatement handles GET /reports/income-statement?year=YYYY.
// @Summary Income statement (DRE) for a year
// @Produce json
// @Param year query int true "Year"
// @Success 200 {array} models.ReportNode
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /reports/income-statement [get]
func (h *ReportsHandler) IncomeStatement(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	forest, ok := h.buildIncomeStatement(w, r, year)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, forest)
}

// IncomeStatementPDF handles GET /reports/income-statement/pdf?year=YYYY. The
// same tree as the JSON variant, rendered as a landscape table.
// @Summary Income statement (DRE) for a year as PDF
// @Produce application/pdf
// @Param year query int true "Year"
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /reports/income-statement/pdf [get]
func (h *ReportsHandler) IncomeStatementPDF(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	forest, ok := h.buildIncomeStatement(w, r, year)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="income-statement-%d.pdf"`, year))
	if err := render.StatementPDF(w, "Income Statement", year, forest); err != nil {
		slog.Error("failed to render income statement PDF", "error", err, "year", year)
	}
}

// TrialBalance handles GET /reports/trial-balance?year=YYYY.
// @Summary Trial balance (Balancete) for a year
// @Produce json
// @Param year query int true "Year"
// @Success 200 {array} models.ReportNode
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /reports/trial-balance [get]
func (h *ReportsHandler) TrialBalance(w http.ResponseWriter, r *http.Request) {
	year, ok := h.yearParam(w, r)
	if !ok {
		return
	}

	accounts, entries, ok := h.fetchReportData(w, r, year)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ledger.TrialBalance(accounts, entries))
}

// yearParam extracts the mandatory year query parameter.
func (h *ReportsHandler) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		writeJSONError(w, http.StatusBadRequest, "year is required")
		return 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid year")
		return 0, false
	}
	return year, true
}

// fetchReportData loads the report snapshot: the chart of accounts and the
// year's entries. A failed read aborts the whole report, never a partial one.
func (h *ReportsHandler) fetchReportData(w http.ResponseWriter, r *http.Request, year int) ([]models.Account, []ledger.Entry, bool) {
	accounts, err := h.store.ListAccounts(r.Context())
	if err != nil {
		slog.Error("failed to load chart of accounts", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return nil, nil, false
	}

	entries, err := h.store.EntriesForYear(r.Context(), year)
	if err != nil {
		slog.Error("failed to load entries", "error", err, "year", year)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return nil, nil, false
	}

	return accounts, entries, true
}

func (h *ReportsHandler) buildIncomeStatement(w http.ResponseWriter, r *http.Request, year int) ([]*models.ReportNode, bool) {
	accounts, entries, ok := h.fetchReportData(w, r, year)
	if !ok {
		return nil, false
	}
	return ledger.IncomeStatement(accounts, entries, h.resultRootCode), true
}
