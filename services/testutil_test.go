package services

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"techstore-server/database"
	"techstore-server/models"
)

// newTestDB opens an in-memory SQLite database with the production schema.
// A single connection is enforced because each :memory: connection is its
// own database.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	conn, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	db := database.Wrap(conn)
	require.NoError(t, db.InitializeTables())
	return db
}

func seedCustomer(t *testing.T, db *database.DB, cid int, fname, lname string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO customers (cid, fname, lname, email, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		cid, fname, lname, fname+"@example.com", "1 Main St", "5550100")
	require.NoError(t, err)
}

func seedProduct(t *testing.T, db *database.DB, pid int, ptype, pname string, price string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO products (pid, ptype, pprice, description, pname)
		VALUES ($1, $2, $3, $4, $5)`,
		pid, ptype, decimal.RequireFromString(price), pname+" description", pname)
	require.NoError(t, err)
}

func seedCard(t *testing.T, db *database.DB, cid int, ccnumber string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO credit_cards (ccnumber, secnumber, ownername, cctype, biladdress, expdate, cid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ccnumber, "123", "Card Holder", "VISA", "1 Main St",
		time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), cid)
	require.NoError(t, err)
}

func seedAddress(t *testing.T, db *database.DB, cid int, saname string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO shipping_addresses (saname, street, snumber, city, zip, state, country, cid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		saname, "Main St", "1", "Springfield", "12345", "IL", "USA", cid)
	require.NoError(t, err)
}

// seedTransaction writes a basket, its line items and the closing
// transaction directly, for the reporting tests.
func seedTransaction(t *testing.T, db *database.DB, txn models.Transaction, items []models.BasketItem) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO baskets (bid, cid) VALUES ($1, $2)`, txn.BID, txn.CID)
	require.NoError(t, err)
	for _, item := range items {
		_, err := db.Exec(`INSERT INTO basket_items (bid, pid, quantity, pricesold)
			VALUES ($1, $2, $3, $4)`,
			txn.BID, item.PID, item.Quantity, item.PriceSold)
		require.NoError(t, err)
	}
	_, err = db.Exec(`INSERT INTO transactions (bid, cid, saname, ccnumber, tdate, ttag)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		txn.BID, txn.CID, txn.SAName, txn.CCNumber, txn.TDate, txn.TTag)
	require.NoError(t, err)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
