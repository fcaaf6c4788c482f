package models

import "github.com/shopspring/decimal"

// ReportNode is one account of a rolled-up statement: the account, its twelve
// monthly balances, the annual total and its children in chart order. Trees
// are built per report request and never cached.
type ReportNode struct {
	Account         Account             `json:"account"`
	MonthlyBalances [12]decimal.Decimal `json:"monthlyBalances"`
	AnnualTotal     decimal.Decimal     `json:"annualTotal"`
	Children        []*ReportNode       `json:"children"`
}
