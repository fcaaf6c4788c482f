package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lucashv/sistema-contabil/internal/models"
)

// ListAccounts returns the full chart of accounts ordered by code.
func (s *Store) ListAccounts(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, parent_id, code, name, kind, nature
		FROM accounts
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		var parentID sql.NullInt64
		if err := rows.Scan(&a.ID, &parentID, &a.Code, &a.Name, &a.Kind, &a.Nature); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		if parentID.Valid {
			id := parentID.Int64
			a.ParentID = &id
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// GetAccountByCode returns the account with the given code.
func (s *Store) GetAccountByCode(ctx context.Context, code string) (models.Account, error) {
	var a models.Account
	var parentID sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, parent_id, code, name, kind, nature
		FROM accounts
		WHERE code = ?
	`, code).Scan(&a.ID, &parentID, &a.Code, &a.Name, &a.Kind, &a.Nature)
	if err == sql.ErrNoRows {
		return models.Account{}, ErrNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to get account %s: %w", code, err)
	}
	if parentID.Valid {
		id := parentID.Int64
		a.ParentID = &id
	}
	return a, nil
}

// CountAccounts returns the number of accounts in the chart.
func (s *Store) CountAccounts(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
