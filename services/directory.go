package services

import (
	"database/sql"
	"fmt"

	"techstore-server/database"
	"techstore-server/models"
)

// DirectoryService holds the customer records the core checks ownership
// against: customers, their credit cards and their shipping addresses. The
// core never mutates these; the shell creates them.
type DirectoryService struct {
	db *database.DB
}

func NewDirectoryService(db *database.DB) *DirectoryService {
	return &DirectoryService{db: db}
}

func (s *DirectoryService) GetCustomer(cid int) (models.Customer, error) {
	var customer models.Customer
	err := s.db.Get(&customer,
		`SELECT cid, fname, lname, email, address, phone FROM customers WHERE cid = $1`, cid)
	if err == sql.ErrNoRows {
		return models.Customer{}, fmt.Errorf("customer %d: %w", cid, ErrNotFound)
	}
	if err != nil {
		return models.Customer{}, fmt.Errorf("failed to load customer %d: %w", cid, err)
	}
	return customer, nil
}

func (s *DirectoryService) CreateCustomer(customer models.Customer) error {
	_, err := s.db.Exec(`
		INSERT INTO customers (cid, fname, lname, email, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		customer.CID, customer.FName, customer.LName, customer.Email, customer.Address, customer.Phone)
	if err != nil {
		return fmt.Errorf("failed to create customer %d: %w", customer.CID, err)
	}
	return nil
}

func (s *DirectoryService) ListCreditCards(cid int) ([]models.CreditCard, error) {
	var cards []models.CreditCard
	err := s.db.Select(&cards, `
		SELECT ccnumber, secnumber, ownername, cctype, biladdress, expdate, cid
		FROM credit_cards WHERE cid = $1`, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	return cards, nil
}

func (s *DirectoryService) AddCreditCard(card models.CreditCard) error {
	_, err := s.db.Exec(`
		INSERT INTO credit_cards (ccnumber, secnumber, ownername, cctype, biladdress, expdate, cid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.CCNumber, card.SecNumber, card.OwnerName, card.CCType, card.BilAddress, card.ExpDate, card.CID)
	if err != nil {
		return fmt.Errorf("failed to add credit card: %w", err)
	}
	return nil
}

func (s *DirectoryService) ListShippingAddresses(cid int) ([]models.ShippingAddress, error) {
	var addresses []models.ShippingAddress
	err := s.db.Select(&addresses, `
		SELECT saname, street, snumber, city, zip, state, country, cid
		FROM shipping_addresses WHERE cid = $1`, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to list shipping addresses: %w", err)
	}
	return addresses, nil
}

func (s *DirectoryService) AddShippingAddress(address models.ShippingAddress) error {
	_, err := s.db.Exec(`
		INSERT INTO shipping_addresses (saname, street, snumber, city, zip, state, country, cid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		address.SAName, address.Street, address.SNumber, address.City,
		address.Zip, address.State, address.Country, address.CID)
	if err != nil {
		return fmt.Errorf("failed to add shipping address: %w", err)
	}
	return nil
}

// ListTransactions returns a customer's checkout history, newest first.
func (s *DirectoryService) ListTransactions(cid int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Select(&transactions, `
		SELECT bid, cid, saname, ccnumber, tdate, ttag
		FROM transactions WHERE cid = $1 ORDER BY tdate DESC, bid DESC`, cid)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
