package services

import (
	"database/sql"
	"fmt"
	"time"

	"techstore-server/database"
	"techstore-server/models"
)

// CheckoutService turns an open basket plus a chosen shipping address and
// credit card into a transaction record. Creating the transaction is what
// closes the basket; there is no separate status flag.
type CheckoutService struct {
	db *database.DB
}

func NewCheckoutService(db *database.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// Checkout validates that the basket, shipping address and credit card all
// belong to the customer, then records the transaction. The insert uses the
// transactions primary key as the guard: a second checkout of the same
// basket hits the conflict path and fails with ErrBasketClosed without
// writing anything.
func (s *CheckoutService) Checkout(customerID, basketID int, saname, ccnumber string) (models.Transaction, error) {
	var ownerID int
	err := s.db.Get(&ownerID, `SELECT cid FROM baskets WHERE bid = $1`, basketID)
	if err == sql.ErrNoRows {
		return models.Transaction{}, fmt.Errorf("basket %d: %w", basketID, ErrNotFound)
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to load basket %d: %w", basketID, err)
	}
	if ownerID != customerID {
		return models.Transaction{}, fmt.Errorf("basket %d: %w", basketID, ErrNotFound)
	}

	var exists bool
	err = s.db.Get(&exists,
		`SELECT EXISTS(SELECT 1 FROM shipping_addresses WHERE cid = $1 AND saname = $2)`,
		customerID, saname)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to resolve shipping address: %w", err)
	}
	if !exists {
		return models.Transaction{}, fmt.Errorf("shipping address %q: %w", saname, ErrNotFound)
	}

	err = s.db.Get(&exists,
		`SELECT EXISTS(SELECT 1 FROM credit_cards WHERE cid = $1 AND ccnumber = $2)`,
		customerID, ccnumber)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to resolve credit card: %w", err)
	}
	if !exists {
		return models.Transaction{}, fmt.Errorf("credit card: %w", ErrNotFound)
	}

	var itemCount int
	if err := s.db.Get(&itemCount, `SELECT COUNT(*) FROM basket_items WHERE bid = $1`, basketID); err != nil {
		return models.Transaction{}, fmt.Errorf("failed to count basket items: %w", err)
	}
	if itemCount == 0 {
		return models.Transaction{}, fmt.Errorf("basket %d: %w", basketID, ErrEmptyBasket)
	}

	txn := models.Transaction{
		BID:      basketID,
		CID:      customerID,
		SAName:   saname,
		CCNumber: ccnumber,
		TDate:    time.Now().UTC(),
		TTag:     "Pending",
	}

	res, err := s.db.Exec(`
		INSERT INTO transactions (bid, cid, saname, ccnumber, tdate, ttag)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (bid) DO NOTHING`,
		txn.BID, txn.CID, txn.SAName, txn.CCNumber, txn.TDate, txn.TTag)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to record transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to confirm transaction insert: %w", err)
	}
	if affected == 0 {
		return models.Transaction{}, fmt.Errorf("basket %d: %w", basketID, ErrBasketClosed)
	}

	return txn, nil
}
