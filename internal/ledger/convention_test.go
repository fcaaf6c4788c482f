package ledger

import (
	"testing"

	"github.com/lucashv/sistema-contabil/internal/models"
)

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name     string
		conv     Convention
		side     models.Side
		nature   models.AccountNature
		expected string
	}{
		// Income statement: creditor-positive (revenues +, expenses -).
		{"dre credit to creditor", IncomeStatementConvention, models.SideCredit, models.NatureCreditor, "100"},
		{"dre debit to creditor", IncomeStatementConvention, models.SideDebit, models.NatureCreditor, "-100"},
		{"dre debit to debtor", IncomeStatementConvention, models.SideDebit, models.NatureDebtor, "-100"},
		{"dre credit to debtor", IncomeStatementConvention, models.SideCredit, models.NatureDebtor, "100"},

		// Trial balance: debtor-positive.
		{"tb debit to debtor", TrialBalanceConvention, models.SideDebit, models.NatureDebtor, "100"},
		{"tb credit to debtor", TrialBalanceConvention, models.SideCredit, models.NatureDebtor, "-100"},
		{"tb credit to creditor", TrialBalanceConvention, models.SideCredit, models.NatureCreditor, "-100"},
		{"tb debit to creditor", TrialBalanceConvention, models.SideDebit, models.NatureCreditor, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.conv.SignedAmount(dec("100"), tt.side, tt.nature)
			if !got.Equal(dec(tt.expected)) {
				t.Errorf("SignedAmount(100, %s, %s) = %s, expected %s", tt.side, tt.nature, got, tt.expected)
			}
		})
	}
}
