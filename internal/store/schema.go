package store

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Chart of accounts
-- Hierarchy is tracked by parent_id; the dotted code must agree with it.
CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    parent_id INTEGER REFERENCES accounts(id),
    code TEXT NOT NULL UNIQUE,             -- dotted hierarchical code, e.g. 4.1.2
    name TEXT NOT NULL,
    kind TEXT NOT NULL CHECK (kind IN ('synthetic', 'analytic')),
    nature TEXT NOT NULL CHECK (nature IN ('debtor', 'creditor'))
);

CREATE INDEX IF NOT EXISTS idx_accounts_parent
    ON accounts(parent_id);

-- Transaction batch headers
CREATE TABLE IF NOT EXISTS batches (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    entry_date TEXT NOT NULL,              -- YYYY-MM-DD
    memo TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_batches_date
    ON batches(entry_date);

-- Entry lines (the double-entry legs of each batch)
CREATE TABLE IF NOT EXISTS entry_lines (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id INTEGER NOT NULL REFERENCES batches(id),
    account_id INTEGER NOT NULL REFERENCES accounts(id),
    side TEXT NOT NULL CHECK (side IN ('D', 'C')),
    amount TEXT NOT NULL                   -- decimal, stored exact
);

CREATE INDEX IF NOT EXISTS idx_entry_lines_batch
    ON entry_lines(batch_id);

CREATE INDEX IF NOT EXISTS idx_entry_lines_account
    ON entry_lines(account_id);
`
