package main

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// HistoryStore persists REPL inputs in a SQLite database so a session
// can be reconstructed later.
type HistoryStore struct {
	db *sql.DB
}

func OpenHistory(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entered_at TEXT NOT NULL DEFAULT (datetime('now')),
		input TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &HistoryStore{db: db}, nil
}

func (h *HistoryStore) Add(input string) error {
	_, err := h.db.Exec(`INSERT INTO history (input) VALUES (?)`, input)
	return err
}

// Recent returns up to n most recent inputs, newest first.
func (h *HistoryStore) Recent(n int) ([]string, error) {
	rows, err := h.db.Query(`SELECT input FROM history ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var inputs []string
	for rows.Next() {
		var input string
		if err := rows.Scan(&input); err != nil {
			return nil, err
		}
		inputs = append(inputs, input)
	}
	return inputs, rows.Err()
}

func (h *HistoryStore) Close() error {
	return h.db.Close()
}
