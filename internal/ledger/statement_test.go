package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashv/sistema-contabil/internal/models"
)

func TestIncomeStatement_FiltersResultSubtree(t *testing.T) {
	accounts := append(testChart(), models.Account{
		// Code "40" shares the character prefix but is not a descendant of "4".
		ID: 20, Code: "40", Name: "Not A Result Account",
		Kind: models.AccountKindSynthetic, Nature: models.NatureDebtor,
	})

	forest := IncomeStatement(accounts, nil, "4")

	require.Len(t, forest, 1)
	assert.Equal(t, "4", forest[0].Account.Code)

	var codes []string
	var walk func(nodes []*models.ReportNode)
	walk = func(nodes []*models.ReportNode) {
		for _, n := range nodes {
			codes = append(codes, n.Account.Code)
			walk(n.Children)
		}
	}
	walk(forest)
	assert.ElementsMatch(t, []string{"4", "4.1", "4.1.1", "4.2", "4.2.1"}, codes)
}

func TestSignConventionRoundTrip(t *testing.T) {
	accounts := testChart()
	// Credit 100 to the creditor-nature leaf 4.1.1, debit 100 to the
	// debtor-nature leaf 1.1.
	entries := []Entry{
		{AccountID: 7, Month: 3, Side: models.SideCredit, Amount: dec("100")},
		{AccountID: 2, Month: 3, Side: models.SideDebit, Amount: dec("100")},
	}

	dre := IncomeStatement(accounts, entries, "4")
	revenue := findNode(t, dre, "4.1.1")
	assert.True(t, revenue.MonthlyBalances[2].Equal(dec("100")), "income statement credit to creditor = %s", revenue.MonthlyBalances[2])

	tb := TrialBalance(accounts, entries)
	revenueTB := findNode(t, tb, "4.1.1")
	assert.True(t, revenueTB.MonthlyBalances[2].Equal(dec("-100")), "trial balance credit to creditor = %s", revenueTB.MonthlyBalances[2])

	cashTB := findNode(t, tb, "1.1")
	assert.True(t, cashTB.MonthlyBalances[2].Equal(dec("100")), "trial balance debit to debtor = %s", cashTB.MonthlyBalances[2])
}

func TestIncomeStatement_RevenueMinusExpense(t *testing.T) {
	accounts := testChart()
	entries := []Entry{
		{AccountID: 7, Month: 2, Side: models.SideCredit, Amount: dec("1000")},
		{AccountID: 9, Month: 2, Side: models.SideDebit, Amount: dec("400")},
	}

	forest := IncomeStatement(accounts, entries, "4")

	result := findNode(t, forest, "4")
	assert.True(t, result.MonthlyBalances[1].Equal(dec("600")), "February result = %s", result.MonthlyBalances[1])
	assert.True(t, result.AnnualTotal.Equal(dec("600")))

	expenses := findNode(t, forest, "4.2")
	assert.True(t, expenses.AnnualTotal.Equal(dec("-400")))
}

func TestTrialBalance_FullChartAndForest(t *testing.T) {
	accounts := testChart()

	forest := TrialBalance(accounts, nil)

	require.Len(t, forest, 3)
	assert.Equal(t, "1", forest[0].Account.Code)
	assert.Equal(t, "2", forest[1].Account.Code)
	assert.Equal(t, "4", forest[2].Account.Code)
}

func TestStatements_ZeroActivityYear(t *testing.T) {
	accounts := testChart()

	forest := IncomeStatement(accounts, nil, "4")

	for _, code := range []string{"4", "4.1", "4.1.1", "4.2", "4.2.1"} {
		node := findNode(t, forest, code)
		assert.True(t, node.AnnualTotal.IsZero(), "account %s annual", code)
		for i, m := range node.MonthlyBalances {
			assert.True(t, m.IsZero(), "account %s month %d", code, i+1)
		}
	}
}
