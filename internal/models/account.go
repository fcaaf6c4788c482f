// Package models defines the domain types shared between the ledger core,
// the storage layer and the HTTP API.
package models

// AccountKind classifies accounts in the chart of accounts.
type AccountKind string

const (
	// AccountKindSynthetic marks a grouping account. Its balance is always
	// derived from its children and it never receives entries directly.
	AccountKindSynthetic AccountKind = "synthetic"

	// AccountKindAnalytic marks a leaf account that receives posted entries.
	AccountKindAnalytic AccountKind = "analytic"
)

// AccountNature determines which entry side represents an increase for an
// account: debits increase debtor accounts, credits increase creditor accounts.
type AccountNature string

const (
	NatureDebtor   AccountNature = "debtor"
	NatureCreditor AccountNature = "creditor"
)

// IncreaseSide returns the entry side that increases an account of this nature.
func (n AccountNature) IncreaseSide() Side {
	if n == NatureCreditor {
		return SideCredit
	}
	return SideDebit
}

// Account is a node in the chart of accounts. Hierarchy is tracked both by
// ParentID and by the dotted code ("4.1.2" is a descendant of "4.1"); the two
// must agree.
type Account struct {
	ID       int64         `json:"id"`
	ParentID *int64        `json:"parentId"`
	Code     string        `json:"code"`
	Name     string        `json:"name"`
	Kind     AccountKind   `json:"kind"`
	Nature   AccountNature `json:"nature"`
}

// AccountIndex is a read-only id lookup over a set of accounts.
type AccountIndex map[int64]Account

// NewAccountIndex builds an index from a flat account list.
func NewAccountIndex(accounts []Account) AccountIndex {
	idx := make(AccountIndex, len(accounts))
	for _, a := range accounts {
		idx[a.ID] = a
	}
	return idx
}

// Lookup returns the account with the given id, if present.
func (idx AccountIndex) Lookup(id int64) (Account, bool) {
	a, ok := idx[id]
	return a, ok
}
