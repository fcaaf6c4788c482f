package ledger

import (
	"sort"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// Roll builds the statement forest for the given accounts. Children are
// indexed by parent id in a single pass and ordered by account code, matching
// the chart-of-accounts display order. The rollup is post-order: a parent's
// balances are the sums of its children's, overwriting any leaf balance the
// account might have had. Accounts whose parent is outside the input set (or
// nil) become roots, so the same walk serves both the full trial balance and
// a filtered income-statement subtree.
func Roll(accounts []models.Account, leafBalances map[int64]Balance) []*models.ReportNode {
	present := make(map[int64]bool, len(accounts))
	for _, a := range accounts {
		present[a.ID] = true
	}

	children := make(map[int64][]models.Account)
	var roots []models.Account
	for _, a := range accounts {
		if a.ParentID != nil && present[*a.ParentID] {
			children[*a.ParentID] = append(children[*a.ParentID], a)
		} else {
			roots = append(roots, a)
		}
	}

	byCode := func(group []models.Account) {
		sort.Slice(group, func(i, j int) bool { return group[i].Code < group[j].Code })
	}
	byCode(roots)
	for _, group := range children {
		byCode(group)
	}

	var build func(a models.Account) *models.ReportNode
	build = func(a models.Account) *models.ReportNode {
		node := &models.ReportNode{
			Account:  a,
			Children: []*models.ReportNode{},
		}

		group := children[a.ID]
		if len(group) == 0 {
			b := leafBalances[a.ID]
			node.MonthlyBalances = b.Monthly
			node.AnnualTotal = b.Annual
			return node
		}

		for _, child := range group {
			node.Children = append(node.Children, build(child))
		}
		for _, child := range node.Children {
			for i := range node.MonthlyBalances {
				node.MonthlyBalances[i] = node.MonthlyBalances[i].Add(child.MonthlyBalances[i])
			}
			node.AnnualTotal = node.AnnualTotal.Add(child.AnnualTotal)
		}
		return node
	}

	forest := make([]*models.ReportNode, 0, len(roots))
	for _, root := range roots {
		forest = append(forest, build(root))
	}
	return forest
}
