package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/lucashv/sistema-contabil/internal/ledger"
	"github.com/lucashv/sistema-contabil/internal/models"
)

// ListEntries returns entry lines joined with their account and batch date,
// newest first.
func (s *Store) ListEntries(ctx context.Context) ([]models.EntryListItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.id, l.batch_id, b.entry_date, a.code, a.name, l.side, l.amount
		FROM entry_lines AS l
		JOIN accounts AS a ON l.account_id = a.id
		JOIN batches AS b ON l.batch_id = b.id
		ORDER BY l.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var items []models.EntryListItem
	for rows.Next() {
		var item models.EntryListItem
		var amount string
		if err := rows.Scan(&item.ID, &item.BatchID, &item.Date, &item.AccountCode, &item.AccountName, &item.Side, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		item.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse entry amount %q: %w", amount, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return items, nil
}

// EntriesForYear returns every entry leg of the given year with its month,
// ready for balance aggregation.
func (s *Store) EntriesForYear(ctx context.Context, year int) ([]ledger.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.account_id, CAST(strftime('%m', b.entry_date) AS INTEGER), l.side, l.amount
		FROM entry_lines AS l
		JOIN batches AS b ON l.batch_id = b.id
		WHERE strftime('%Y', b.entry_date) = ?
	`, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for year %d: %w", year, err)
	}
	defer rows.Close()

	var entries []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		var amount string
		if err := rows.Scan(&e.AccountID, &e.Month, &e.Side, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse entry amount %q: %w", amount, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}
