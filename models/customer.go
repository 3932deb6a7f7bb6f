package models

// Customer is a registered shopper. The id is chosen by the customer at
// registration time, matching the legacy store data.
type Customer struct {
	CID     int    `json:"cid" db:"cid"`
	FName   string `json:"fname" db:"fname"`
	LName   string `json:"lname" db:"lname"`
	Email   string `json:"email" db:"email"`
	Address string `json:"address" db:"address"`
	Phone   string `json:"phone" db:"phone"`
}

func (Customer) TableName() string {
	return "customers"
}

func (Customer) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS customers (
		cid INTEGER PRIMARY KEY,
		fname VARCHAR(50) NOT NULL,
		lname VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL,
		address VARCHAR(200) NOT NULL,
		phone VARCHAR(20) NOT NULL
	);`
}
