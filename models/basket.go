package models

import "github.com/shopspring/decimal"

// Basket is a customer's in-progress order. It is open until a transaction
// row referencing its bid exists.
type Basket struct {
	BID int `json:"bid" db:"bid"`
	CID int `json:"cid" db:"cid"`
}

// BasketItem is one (basket, product) pairing. The composite primary key
// guarantees a product appears at most once per basket; repeated adds bump
// the quantity instead of inserting a second row. The sale price is
// snapshotted when the row is first created and never re-read from the
// catalog.
type BasketItem struct {
	BID       int             `json:"bid" db:"bid"`
	PID       int             `json:"pid" db:"pid"`
	Quantity  int             `json:"quantity" db:"quantity"`
	PriceSold decimal.Decimal `json:"pricesold" db:"pricesold"`
}

func (Basket) TableName() string {
	return "baskets"
}

func (Basket) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS baskets (
		bid INTEGER PRIMARY KEY,
		cid INTEGER NOT NULL REFERENCES customers(cid) ON DELETE CASCADE
	);`
}

func (BasketItem) TableName() string {
	return "basket_items"
}

func (BasketItem) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS basket_items (
		bid INTEGER NOT NULL REFERENCES baskets(bid) ON DELETE CASCADE,
		pid INTEGER NOT NULL REFERENCES products(pid) ON DELETE CASCADE,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		pricesold NUMERIC(10,2) NOT NULL,
		PRIMARY KEY (bid, pid)
	);`
}
