package models

import "time"

// Transaction finalizes a basket's purchase. The bid primary key makes
// checkout one-shot: a basket can never be checked out twice.
type Transaction struct {
	BID      int       `json:"bid" db:"bid"`
	CID      int       `json:"cid" db:"cid"`
	SAName   string    `json:"saname" db:"saname"`
	CCNumber string    `json:"ccnumber" db:"ccnumber"`
	TDate    time.Time `json:"tdate" db:"tdate"`
	TTag     string    `json:"ttag" db:"ttag"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (Transaction) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS transactions (
		bid INTEGER PRIMARY KEY REFERENCES baskets(bid) ON DELETE CASCADE,
		cid INTEGER NOT NULL REFERENCES customers(cid) ON DELETE CASCADE,
		saname VARCHAR(100) NOT NULL,
		ccnumber VARCHAR(16) NOT NULL REFERENCES credit_cards(ccnumber) ON DELETE CASCADE,
		tdate DATE NOT NULL,
		ttag VARCHAR(50) NOT NULL
	);`
}
