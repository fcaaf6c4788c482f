package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lucashv/sistema-contabil/internal/store"
)

// NewRouter wires the HTTP surface: chart of accounts, entry listing,
// transaction submission and the statement reports.
func NewRouter(s *store.Store, resultRootCode string) chi.Router {
	accountsHandler := NewAccountsHandler(s)
	entriesHandler := NewEntriesHandler(s)
	transactionsHandler := NewTransactionsHandler(s)
	reportsHandler := NewReportsHandler(s, resultRootCode)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/accounts", accountsHandler.List)
	r.Get("/entries", entriesHandler.List)
	r.Post("/transactions", transactionsHandler.Create)

	r.Route("/reports", func(r chi.Router) {
		r.Get("/income-statement", reportsHandler.IncomeStatement)
		r.Get("/income-statement/pdf", reportsHandler.IncomeStatementPDF)
		r.Get("/trial-balance", reportsHandler.TrialBalance)
	})

	// Health check endpoint.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
