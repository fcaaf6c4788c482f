package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// Convention is a statement's sign convention: accounts whose nature matches
// the positive nature show their natural balance as positive, accounts of the
// opposite nature show it negated. The income statement is creditor-positive
// (revenues +, expenses -); the trial balance is debtor-positive.
type Convention struct {
	positiveNature models.AccountNature
}

var (
	IncomeStatementConvention = Convention{positiveNature: models.NatureCreditor}
	TrialBalanceConvention    = Convention{positiveNature: models.NatureDebtor}
)

// SignedAmount converts one entry leg into its signed contribution to the
// account's balance under this convention. An entry on the account's increase
// side raises its natural balance; the convention then decides whether that
// natural balance reads positive or negative in the statement.
func (c Convention) SignedAmount(amount decimal.Decimal, side models.Side, nature models.AccountNature) decimal.Decimal {
	sign := 1
	if side != nature.IncreaseSide() {
		sign = -sign
	}
	if nature != c.positiveNature {
		sign = -sign
	}
	if sign < 0 {
		return amount.Neg()
	}
	return amount
}
