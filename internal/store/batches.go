package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// CreateBatch persists a validated transaction batch atomically: one header
// row, then one row per entry line referencing the generated batch id. Any
// failure rolls back the whole batch, so no partial batch is ever visible.
// Validation is a precondition; the writer does not re-check it.
func (s *Store) CreateBatch(ctx context.Context, date, memo string, lines []models.EntryLine) (int64, error) {
	var batchID int64

	err := s.Transaction(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO batches (entry_date, memo) VALUES (?, ?)`,
			date, memo,
		)
		if err != nil {
			return fmt.Errorf("failed to insert batch header: %w", err)
		}

		batchID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read batch id: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO entry_lines (batch_id, account_id, side, amount) VALUES (?, ?, ?, ?)`,
		)
		if err != nil {
			return fmt.Errorf("failed to prepare line insert: %w", err)
		}
		defer stmt.Close()

		for _, line := range lines {
			if _, err := stmt.ExecContext(ctx, batchID, line.AccountID, string(line.Side), line.Amount.String()); err != nil {
				return fmt.Errorf("failed to insert entry line: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return batchID, nil
}
