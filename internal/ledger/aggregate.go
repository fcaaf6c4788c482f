package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// Entry is one persisted entry leg reduced to what aggregation needs.
type Entry struct {
	AccountID int64
	Month     int // 1..12
	Side      models.Side
	Amount    decimal.Decimal
}

// Balance holds one account's twelve monthly balances and their sum.
type Balance struct {
	Monthly [12]decimal.Decimal
	Annual  decimal.Decimal
}

// Aggregate folds a year's entries into per-account balances under the given
// convention. Every account in the input appears in the result, all-zero when
// it saw no activity. Only analytic accounts receive direct contributions;
// synthetic accounts stay at zero here and are filled by the rollup.
func Aggregate(accounts []models.Account, entries []Entry, conv Convention) map[int64]Balance {
	index := models.NewAccountIndex(accounts)

	balances := make(map[int64]Balance, len(accounts))
	for _, a := range accounts {
		balances[a.ID] = Balance{}
	}

	for _, e := range entries {
		account, ok := index.Lookup(e.AccountID)
		if !ok || account.Kind != models.AccountKindAnalytic {
			continue
		}
		if e.Month < 1 || e.Month > 12 {
			continue
		}

		b := balances[e.AccountID]
		b.Monthly[e.Month-1] = b.Monthly[e.Month-1].Add(conv.SignedAmount(e.Amount, e.Side, account.Nature))
		balances[e.AccountID] = b
	}

	for id, b := range balances {
		total := decimal.Zero
		for _, m := range b.Monthly {
			total = total.Add(m)
		}
		b.Annual = total
		balances[id] = b
	}

	return balances
}
