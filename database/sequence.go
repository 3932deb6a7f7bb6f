package database

import (
	"database/sql"
	"fmt"
)

// NextSequence returns the next number in a named sequence. The increment is
// a single UPDATE ... RETURNING, so concurrent callers never receive the
// same value.
func (db *DB) NextSequence(name string) (int, error) {
	var next int
	err := db.QueryRow(
		`UPDATE sequences SET last_no = last_no + 1 WHERE name = $1 RETURNING last_no`,
		name,
	).Scan(&next)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("sequence '%s' not found", name)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to advance sequence '%s': %w", name, err)
	}
	return next, nil
}
