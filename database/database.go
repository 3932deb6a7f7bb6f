package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"techstore-server/models"
)

type DB struct {
	*sqlx.DB
}

var Database *DB

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL string) (*DB, error) {
	db, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	Database = &DB{db}
	return Database, nil
}

// Wrap adapts an already-open connection (the test suite opens SQLite here).
func Wrap(db *sqlx.DB) *DB {
	return &DB{db}
}

// InitializeTables creates all tables if they don't exist
func (db *DB) InitializeTables() error {
	// Order matters: referenced tables first
	tables := []interface {
		TableName() string
		CreateTableSQL() string
	}{
		models.Customer{},
		models.CreditCard{},
		models.ShippingAddress{},
		models.Product{},
		models.Computer{},
		models.Printer{},
		models.Laptop{},
		models.Basket{},
		models.BasketItem{},
		models.Transaction{},
		models.Sequence{},
		models.Admin{},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.CreateTableSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.TableName(), err)
		}
	}

	if err := db.seedSequences(); err != nil {
		return fmt.Errorf("failed to seed sequences: %w", err)
	}

	log.Println("All tables created successfully")
	return nil
}

// seedSequences inserts the allocator rows used by NextSequence.
func (db *DB) seedSequences() error {
	for _, name := range []string{"baskets"} {
		_, err := db.Exec(
			`INSERT INTO sequences (name, last_no) VALUES ($1, 0) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}
