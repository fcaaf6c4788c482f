package models

import "github.com/shopspring/decimal"

func init() {
	// Report balances and entry amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Side identifies the leg type of an entry line.
type Side string

const (
	SideDebit  Side = "D"
	SideCredit Side = "C"
)

// Valid reports whether the side is one of the two known values.
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// EntryLine is one leg of a transaction batch. AccountID must resolve to an
// analytic account.
type EntryLine struct {
	AccountID int64           `json:"accountId"`
	Side      Side            `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
}

// TransactionBatch is one accounting event: a dated header plus two or more
// balanced entry lines.
type TransactionBatch struct {
	ID    int64       `json:"id"`
	Date  string      `json:"date"` // YYYY-MM-DD
	Memo  string      `json:"memo"`
	Lines []EntryLine `json:"lines"`
}

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	Date  string      `json:"date"`
	Memo  string      `json:"memo"`
	Lines []EntryLine `json:"lines"`
}

// EntryListItem is one row of GET /entries: an entry line joined with its
// account and batch date.
type EntryListItem struct {
	ID          int64           `json:"id"`
	BatchID     int64           `json:"batchId"`
	Date        string          `json:"date"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Side        Side            `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
}
