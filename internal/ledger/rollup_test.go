package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucashv/sistema-contabil/internal/models"
)

func TestRoll_ParentSumsChildren(t *testing.T) {
	accounts := testChart()
	balances := map[int64]Balance{
		7: {Monthly: monthly(map[int]string{1: "100", 3: "50"}), Annual: dec("150")},
		9: {Monthly: monthly(map[int]string{1: "-40"}), Annual: dec("-40")},
	}

	forest := Roll(accounts, balances)

	result := findNode(t, forest, "4")
	assert.True(t, result.MonthlyBalances[0].Equal(dec("60")), "January = %s", result.MonthlyBalances[0])
	assert.True(t, result.MonthlyBalances[2].Equal(dec("50")))
	assert.True(t, result.AnnualTotal.Equal(dec("110")))

	revenues := findNode(t, forest, "4.1")
	assert.True(t, revenues.AnnualTotal.Equal(dec("150")))

	// Annual total of every synthetic node equals the sum of its months.
	total := dec("0")
	for _, m := range result.MonthlyBalances {
		total = total.Add(m)
	}
	assert.True(t, result.AnnualTotal.Equal(total))
}

func TestRoll_SyntheticLeafBalanceOverwritten(t *testing.T) {
	accounts := testChart()
	// A direct balance on a synthetic account must be discarded by the rollup.
	balances := map[int64]Balance{
		5: {Monthly: monthly(map[int]string{1: "999"}), Annual: dec("999")},
		7: {Monthly: monthly(map[int]string{1: "10"}), Annual: dec("10")},
	}

	forest := Roll(accounts, balances)

	result := findNode(t, forest, "4")
	assert.True(t, result.MonthlyBalances[0].Equal(dec("10")))
	assert.True(t, result.AnnualTotal.Equal(dec("10")))
}

func TestRoll_SiblingsOrderedByCode(t *testing.T) {
	// Shuffled input order must not leak into the output.
	accounts := []models.Account{
		{ID: 3, ParentID: int64p(1), Code: "5.3", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
		{ID: 1, Code: "5", Kind: models.AccountKindSynthetic, Nature: models.NatureDebtor},
		{ID: 4, ParentID: int64p(1), Code: "5.1", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
		{ID: 2, ParentID: int64p(1), Code: "5.2", Kind: models.AccountKindAnalytic, Nature: models.NatureDebtor},
	}

	forest := Roll(accounts, nil)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 3)
	assert.Equal(t, "5.1", forest[0].Children[0].Account.Code)
	assert.Equal(t, "5.2", forest[0].Children[1].Account.Code)
	assert.Equal(t, "5.3", forest[0].Children[2].Account.Code)
}

func TestRoll_CompleteEvenWithoutBalances(t *testing.T) {
	accounts := testChart()

	forest := Roll(accounts, nil)

	var count func(nodes []*models.ReportNode) int
	count = func(nodes []*models.ReportNode) int {
		n := len(nodes)
		for _, node := range nodes {
			n += count(node.Children)
		}
		return n
	}
	assert.Equal(t, len(accounts), count(forest))

	for _, code := range []string{"1", "2", "4", "4.1.1", "4.2.1"} {
		node := findNode(t, forest, code)
		assert.True(t, node.AnnualTotal.IsZero(), "account %s", code)
	}
}

func TestRoll_SubtreeRootWhenParentAbsent(t *testing.T) {
	// Filtering to the result subtree leaves "4" with a nil parent chain; it
	// must become the single root.
	var subtree []models.Account
	for _, a := range testChart() {
		if a.Code == "4" || (len(a.Code) > 1 && a.Code[:2] == "4.") {
			subtree = append(subtree, a)
		}
	}

	forest := Roll(subtree, nil)

	require.Len(t, forest, 1)
	assert.Equal(t, "4", forest[0].Account.Code)
}

func TestRoll_LeafChildrenNotNil(t *testing.T) {
	forest := Roll(testChart(), nil)

	leaf := findNode(t, forest, "1.1")
	require.NotNil(t, leaf.Children)
	assert.Empty(t, leaf.Children)
}
