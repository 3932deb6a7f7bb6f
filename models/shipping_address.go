package models

// ShippingAddress is identified by its label within a customer's account,
// so two customers can both have a "Home" address.
type ShippingAddress struct {
	SAName  string `json:"saname" db:"saname"`
	Street  string `json:"street" db:"street"`
	SNumber string `json:"snumber" db:"snumber"`
	City    string `json:"city" db:"city"`
	Zip     string `json:"zip" db:"zip"`
	State   string `json:"state" db:"state"`
	Country string `json:"country" db:"country"`
	CID     int    `json:"cid" db:"cid"`
}

func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}

func (ShippingAddress) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS shipping_addresses (
		saname VARCHAR(100) NOT NULL,
		street VARCHAR(100) NOT NULL,
		snumber VARCHAR(10) NOT NULL,
		city VARCHAR(50) NOT NULL,
		zip VARCHAR(10) NOT NULL,
		state VARCHAR(50) NOT NULL,
		country VARCHAR(50) NOT NULL,
		cid INTEGER NOT NULL REFERENCES customers(cid) ON DELETE CASCADE,
		PRIMARY KEY (saname, cid)
	);`
}
