package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS settlements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		round_id TEXT NOT NULL,
		player TEXT NOT NULL,
		result TEXT NOT NULL,
		blackjack INTEGER NOT NULL DEFAULT 0,
		score INTEGER NOT NULL,
		bet INTEGER NOT NULL DEFAULT 0,
		profit INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_settlements_player ON settlements(player);
	CREATE INDEX IF NOT EXISTS idx_settlements_round ON settlements(round_id);
	`

	_, err := db.Exec(schema)
	return err
}
