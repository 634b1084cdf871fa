// Package ledger persists round settlements and aggregates them per player.
package ledger

import (
	"database/sql"
	"fmt"

	"blackjack/internal/game"
)

type Standing struct {
	Name   string
	Games  int
	Wins   int
	Losses int
	Draws  int
	Profit int
}

func (s Standing) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games) * 100
}

type Repository interface {
	Record(roundID string, s game.Settlement) error
	Standings(limit int) ([]Standing, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Record(roundID string, s game.Settlement) error {
	_, err := r.db.Exec(`
		INSERT INTO settlements (round_id, player, result, blackjack, score, bet, profit)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, roundID, s.Name, s.Result.String(), s.Blackjack, s.Score, s.Bet, s.Profit)

	if err != nil {
		return fmt.Errorf("failed to record settlement: %w", err)
	}
	return nil
}

// Standings lists players by total profit, best first.
func (r *SQLiteRepository) Standings(limit int) ([]Standing, error) {
	rows, err := r.db.Query(`
		SELECT player,
			COUNT(*),
			SUM(CASE WHEN result = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN result = ? THEN 1 ELSE 0 END),
			SUM(CASE WHEN result = ? THEN 1 ELSE 0 END),
			SUM(profit)
		FROM settlements
		GROUP BY player
		ORDER BY SUM(profit) DESC, player ASC
		LIMIT ?
	`, game.ResultWin.String(), game.ResultLoss.String(), game.ResultDraw.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var out []Standing
	for rows.Next() {
		var s Standing
		if err := rows.Scan(&s.Name, &s.Games, &s.Wins, &s.Losses, &s.Draws, &s.Profit); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		out = append(out, s)
	}

	return out, rows.Err()
}
