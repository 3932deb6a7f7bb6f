package models

// Sequence backs numeric id allocation (see database.NextSequence).
type Sequence struct {
	Name   string `json:"name" db:"name"`
	LastNo int    `json:"last_no" db:"last_no"`
}

func (Sequence) TableName() string {
	return "sequences"
}

func (Sequence) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS sequences (
		name VARCHAR(50) PRIMARY KEY,
		last_no INTEGER NOT NULL DEFAULT 0
	);`
}
