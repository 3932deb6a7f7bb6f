package services

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"techstore-server/database"
	"techstore-server/models"
)

// BasketService manages the open basket a session is working with. The
// caller (the HTTP shell) owns session state and passes the customer id and
// the session's basket id in explicitly.
type BasketService struct {
	db *database.DB
}

func NewBasketService(db *database.DB) *BasketService {
	return &BasketService{db: db}
}

// AddResult reports what AddProduct did, so the shell can tell the user
// whether the item was added or its quantity bumped.
type AddResult struct {
	Merged bool
	Item   models.BasketItem
}

// BasketLine is one row of a basket view.
type BasketLine struct {
	ProductName string          `json:"product_name" db:"pname"`
	Quantity    int             `json:"quantity" db:"quantity"`
	PriceSold   decimal.Decimal `json:"pricesold" db:"pricesold"`
	LineTotal   decimal.Decimal `json:"line_total" db:"-"`
}

// GetOrCreateOpenBasket returns the basket identified by sessionBasketID if
// it exists and belongs to the customer. Otherwise it allocates a fresh
// basket and reports created=true so the caller can update its session
// state. Pass sessionBasketID 0 when the session has no basket yet.
func (s *BasketService) GetOrCreateOpenBasket(customerID, sessionBasketID int) (models.Basket, bool, error) {
	if sessionBasketID != 0 {
		var basket models.Basket
		err := s.db.Get(&basket, `SELECT bid, cid FROM baskets WHERE bid = $1 AND cid = $2`,
			sessionBasketID, customerID)
		if err == nil {
			return basket, false, nil
		}
		if err != sql.ErrNoRows {
			return models.Basket{}, false, fmt.Errorf("failed to load basket %d: %w", sessionBasketID, err)
		}
		// Stale session reference, fall through and start a new basket
	}

	bid, err := s.db.NextSequence("baskets")
	if err != nil {
		return models.Basket{}, false, err
	}

	basket := models.Basket{BID: bid, CID: customerID}
	if _, err := s.db.Exec(`INSERT INTO baskets (bid, cid) VALUES ($1, $2)`, basket.BID, basket.CID); err != nil {
		return models.Basket{}, false, fmt.Errorf("failed to create basket: %w", err)
	}
	return basket, true, nil
}

// AddProduct puts quantity units of a product into the basket. The
// merge-or-insert is a single upsert keyed on (bid, pid): a concurrent add
// for the same pair can bump the quantity but can never produce a second
// row. On merge the original pricesold is kept; only a fresh row snapshots
// the catalog price.
func (s *BasketService) AddProduct(basketID, productID, quantity int) (AddResult, error) {
	if quantity < 1 {
		return AddResult{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	var price decimal.Decimal
	err := s.db.Get(&price, `SELECT pprice FROM products WHERE pid = $1`, productID)
	if err == sql.ErrNoRows {
		return AddResult{}, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}
	if err != nil {
		return AddResult{}, fmt.Errorf("failed to look up product %d: %w", productID, err)
	}

	item := models.BasketItem{BID: basketID, PID: productID}
	err = s.db.QueryRow(`
		INSERT INTO basket_items (bid, pid, quantity, pricesold)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (bid, pid) DO UPDATE SET quantity = basket_items.quantity + excluded.quantity
		RETURNING quantity, pricesold`,
		basketID, productID, quantity, price,
	).Scan(&item.Quantity, &item.PriceSold)
	if err != nil {
		return AddResult{}, fmt.Errorf("failed to add product %d to basket %d: %w", productID, basketID, err)
	}

	return AddResult{Merged: item.Quantity > quantity, Item: item}, nil
}

// ListItems returns the basket's lines with per-line totals, in insertion
// order.
func (s *BasketService) ListItems(basketID int) ([]BasketLine, error) {
	var lines []BasketLine
	err := s.db.Select(&lines, `
		SELECT p.pname, ai.quantity, ai.pricesold
		FROM basket_items ai
		JOIN products p ON ai.pid = p.pid
		WHERE ai.bid = $1`,
		basketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list basket %d: %w", basketID, err)
	}
	for i := range lines {
		lines[i].LineTotal = lines[i].PriceSold.Mul(decimal.NewFromInt(int64(lines[i].Quantity)))
	}
	return lines, nil
}

// BasketTotal sums the line totals. An empty basket totals zero.
func BasketTotal(lines []BasketLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	return total
}
