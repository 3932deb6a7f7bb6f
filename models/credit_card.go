package models

import "time"

// CreditCard belongs to exactly one customer; the card number is the key.
type CreditCard struct {
	CCNumber   string    `json:"ccnumber" db:"ccnumber"`
	SecNumber  string    `json:"secnumber" db:"secnumber"`
	OwnerName  string    `json:"ownername" db:"ownername"`
	CCType     string    `json:"cctype" db:"cctype"`
	BilAddress string    `json:"biladdress" db:"biladdress"`
	ExpDate    time.Time `json:"expdate" db:"expdate"`
	CID        int       `json:"cid" db:"cid"`
}

func (CreditCard) TableName() string {
	return "credit_cards"
}

func (CreditCard) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS credit_cards (
		ccnumber VARCHAR(16) PRIMARY KEY,
		secnumber VARCHAR(4) NOT NULL,
		ownername VARCHAR(100) NOT NULL,
		cctype VARCHAR(20) NOT NULL,
		biladdress VARCHAR(200) NOT NULL,
		expdate DATE NOT NULL,
		cid INTEGER NOT NULL REFERENCES customers(cid) ON DELETE CASCADE
	);`
}
