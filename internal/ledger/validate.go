// Package ledger implements the double-entry core: batch validation, the
// nature-based sign convention, monthly balance aggregation and the
// hierarchical rollup that produces statement trees.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// Reason classifies why a submission was rejected.
type Reason string

const (
	ReasonIncompleteSubmission Reason = "IncompleteSubmission"
	ReasonNonAnalyticTarget    Reason = "NonAnalyticTarget"
	ReasonUnbalanced           Reason = "Unbalanced"
)

// ValidationError describes a rejected transaction submission.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// AccountLookup resolves an account id against the chart of accounts.
type AccountLookup interface {
	Lookup(id int64) (models.Account, bool)
}

// balanceTolerance absorbs rounding noise when comparing debit and credit
// totals: 1/1000 of a currency unit.
var balanceTolerance = decimal.New(1, -3)

// ValidateBatch checks a proposed transaction before persistence. It is pure:
// no side effects beyond reading the account lookup. On success it returns the
// normalized line list ready for the transaction writer.
func ValidateBatch(req models.CreateTransactionRequest, accounts AccountLookup) ([]models.EntryLine, error) {
	if req.Date == "" || req.Memo == "" || len(req.Lines) < 2 {
		return nil, &ValidationError{
			Reason:  ReasonIncompleteSubmission,
			Message: "date, memo and at least two entry lines are required",
		}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	lines := make([]models.EntryLine, 0, len(req.Lines))

	for i, line := range req.Lines {
		if !line.Side.Valid() || line.Amount.IsNegative() {
			return nil, &ValidationError{
				Reason:  ReasonIncompleteSubmission,
				Message: fmt.Sprintf("line %d must have side D or C and a non-negative amount", i+1),
			}
		}

		account, ok := accounts.Lookup(line.AccountID)
		if !ok || account.Kind != models.AccountKindAnalytic {
			return nil, &ValidationError{
				Reason:  ReasonNonAnalyticTarget,
				Message: fmt.Sprintf("line %d: account %d is not an analytic account", i+1, line.AccountID),
			}
		}

		switch line.Side {
		case models.SideDebit:
			totalDebit = totalDebit.Add(line.Amount)
		case models.SideCredit:
			totalCredit = totalCredit.Add(line.Amount)
		}

		lines = append(lines, models.EntryLine{
			AccountID: line.AccountID,
			Side:      line.Side,
			Amount:    line.Amount,
		})
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceTolerance) {
		return nil, &ValidationError{
			Reason: ReasonUnbalanced,
			Message: fmt.Sprintf("debits (%s) and credits (%s) do not balance",
				totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		}
	}

	return lines, nil
}
