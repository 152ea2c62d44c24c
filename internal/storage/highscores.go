package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// LoadHighScore returns the stored high score for slot, or 0 when the slot
// is empty.
func (s *Store) LoadHighScore(slot string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE slot = ?", slot).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score %q: %w", slot, err)
	}
	return score, nil
}

// SaveHighScoreIfHigher stores score in slot when it beats the current value.
// It reports whether the slot changed.
func (s *Store) SaveHighScoreIfHigher(slot string, score int) (bool, error) {
	res, err := s.db.Exec(
		`INSERT INTO high_scores (slot, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_scores.score`,
		slot, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save high score %q: %w", slot, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	return n > 0, nil
}
