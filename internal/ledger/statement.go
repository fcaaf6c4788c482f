package ledger

import (
	"strings"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// IncomeStatement rolls up the result accounts (the subtree rooted at
// resultRootCode, "4" in the default chart) under the creditor-positive
// convention: revenues read positive, expenses negative.
func IncomeStatement(accounts []models.Account, entries []Entry, resultRootCode string) []*models.ReportNode {
	filtered := filterByCodePrefix(accounts, resultRootCode)
	balances := Aggregate(filtered, entries, IncomeStatementConvention)
	return Roll(filtered, balances)
}

// TrialBalance rolls up the entire chart of accounts under the
// debtor-positive convention.
func TrialBalance(accounts []models.Account, entries []Entry) []*models.ReportNode {
	balances := Aggregate(accounts, entries, TrialBalanceConvention)
	return Roll(accounts, balances)
}

// filterByCodePrefix keeps the account with the given code and all accounts
// below it. Dotted codes encode ancestry, so "4" keeps "4.1" and "4.1.2" but
// not "40".
func filterByCodePrefix(accounts []models.Account, code string) []models.Account {
	var filtered []models.Account
	for _, a := range accounts {
		if a.Code == code || strings.HasPrefix(a.Code, code+".") {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
