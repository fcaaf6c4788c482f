package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// SeedAccount is one chart-of-accounts row in a seed file. The parent is
// derived from the dotted code ("4.1.2" hangs under "4.1").
type SeedAccount struct {
	Code   string               `yaml:"code"`
	Name   string               `yaml:"name"`
	Kind   models.AccountKind   `yaml:"kind"`
	Nature models.AccountNature `yaml:"nature"`
}

// Seed populates an empty accounts table. When seedPath is non-empty the
// chart is loaded from that YAML file, otherwise the built-in default chart
// is used. A non-empty table is left untouched.
func (s *Store) Seed(ctx context.Context, seedPath string) error {
	count, err := s.CountAccounts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	chart := DefaultChart()
	if seedPath != "" {
		chart, err = LoadChart(seedPath)
		if err != nil {
			return err
		}
	}

	return s.insertChart(ctx, chart)
}

// LoadChart reads a chart of accounts from a YAML file.
func LoadChart(path string) ([]SeedAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var chart []SeedAccount
	if err := yaml.Unmarshal(data, &chart); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}

	return chart, nil
}

// insertChart inserts the chart in one transaction, resolving each account's
// parent by trimming the last code segment. Sorting by code guarantees
// parents are inserted before their children.
func (s *Store) insertChart(ctx context.Context, chart []SeedAccount) error {
	sorted := make([]SeedAccount, len(chart))
	copy(sorted, chart)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	return s.Transaction(ctx, func(tx *sql.Tx) error {
		idByCode := make(map[string]int64, len(sorted))

		for _, a := range sorted {
			var parentID interface{}
			if idx := strings.LastIndex(a.Code, "."); idx > 0 {
				parent, ok := idByCode[a.Code[:idx]]
				if !ok {
					return fmt.Errorf("seed account %s has no parent %s", a.Code, a.Code[:idx])
				}
				parentID = parent
			}

			res, err := tx.ExecContext(ctx,
				`INSERT INTO accounts (parent_id, code, name, kind, nature) VALUES (?, ?, ?, ?, ?)`,
				parentID, a.Code, a.Name, string(a.Kind), string(a.Nature),
			)
			if err != nil {
				return fmt.Errorf("failed to insert account %s: %w", a.Code, err)
			}

			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read account id: %w", err)
			}
			idByCode[a.Code] = id
		}

		return nil
	})
}

// DefaultChart returns the built-in chart of accounts used when no seed file
// is configured.
func DefaultChart() []SeedAccount {
	return []SeedAccount{
		// Assets
		{Code: "1", Name: "Assets", Kind: models.AccountKindSynthetic, Nature: models.NatureDebtor},
		{Code: "1.1", Name: "Current Assets", Kind: models.AccountKindSynthetic, Nature: models.NatureDebtor},
		{Code: "1.1.1", Name: "Cash", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
		{Code: "1.1.2", Name: "Bank Accounts", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
		{Code: "1.1.3", Name: "Accounts Receivable", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},

		// Liabilities
		{Code: "2", Name: "Liabilities", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{Code: "2.1", Name: "Current Liabilities", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{Code: "2.1.1", Name: "Accounts Payable", Kind: models.AccountKindAnalytic, Nature: models.NatureCreditor},
		{Code: "2.1.2", Name: "Loans Payable", Kind: models.AccountKindAnalytic, Nature: models.NatureCreditor},

		// Equity
		{Code: "3", Name: "Equity", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{Code: "3.1", Name: "Share Capital", Kind: models.AccountKindAnalytic, Nature: models.NatureCreditor},

		// Result accounts (income statement subtree)
		{Code: "4", Name: "Result", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{Code: "4.1", Name: "Revenues", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{Code: "4.1.1", Name: "Service Revenue", Kind: models.AccountKindAnalytic, Nature: models.NatureCreditor},
		{Code: "4.1.2", Name: "Sales Revenue", Kind: models.AccountKindAnalytic, Nature: models.NatureCreditor},
		{Code: "4.2", Name: "Expenses", Kind: models.AccountKindSynthetic, Nature: models.NatureDebtor},
		{Code: "4.2.1", Name: "Rent Expense", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
		{Code: "4.2.2", Name: "Salaries Expense", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
		{Code: "4.2.3", Name: "Utilities Expense", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
	}
}
