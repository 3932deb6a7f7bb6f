package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a back-office account for the sales statistics pages. Unlike
// customer login, admin login is password protected.
type Admin struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

func (Admin) TableName() string {
	return "admins"
}

func (Admin) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS admins (
		id VARCHAR(36) PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`
}
