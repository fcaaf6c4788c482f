package ledger

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// dec parses a decimal literal for tests.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func int64p(v int64) *int64 {
	return &v
}

// monthly builds a balance array from a month (1..12) to value map.
func monthly(values map[int]string) [12]decimal.Decimal {
	var m [12]decimal.Decimal
	for month, v := range values {
		m[month-1] = dec(v)
	}
	return m
}

// testChart is a small chart of accounts covering both natures and a result
// subtree under code 4.
func testChart() []models.Account {
	return []models.Account{
		{ID: 1, Code: "1", Name: "Assets", Kind: models.AccountKindSynthetic, Nature: models.NatureDebtor},
		{ID: 2, ParentID: int64p(1), Code: "1.1", Name: "Cash", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
		{ID: 3, Code: "2", Name: "Liabilities", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{ID: 4, ParentID: int64p(3), Code: "2.1", Name: "Payables", Kind: models.AccountKindAnalytic, Nature: models.NatureCreditor},
		{ID: 5, Code: "4", Name: "Result", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{ID: 6, ParentID: int64p(5), Code: "4.1", Name: "Revenues", Kind: models.AccountKindSynthetic, Nature: models.NatureCreditor},
		{ID: 7, ParentID: int64p(6), Code: "4.1.1", Name: "Service Revenue", Kind: models.AccountKindAnalytic, Nature: models.NatureCreditor},
		{ID: 8, ParentID: int64p(5), Code: "4.2", Name: "Expenses", Kind: models.AccountKindSynthetic, Nature: models.NatureDebtor},
		{ID: 9, ParentID: int64p(8), Code: "4.2.1", Name: "Rent Expense", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
	}
}

func findNode(t *testing.T, forest []*models.ReportNode, code string) *models.ReportNode {
	t.Helper()
	var walk func(nodes []*models.ReportNode) *models.ReportNode
	walk = func(nodes []*models.ReportNode) *models.ReportNode {
		for _, n := range nodes {
			if n.Account.Code == code {
				return n
			}
			if found := walk(n.Children); found != nil {
				return found
			}
		}
		return nil
	}
	node := walk(forest)
	if node == nil {
		t.Fatalf("account %s not found in report forest", code)
	}
	return node
}
