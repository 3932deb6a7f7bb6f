package models

import "github.com/shopspring/decimal"

// Product is a catalog entry. At most one of the Computer/Printer/Laptop
// extension rows exists per product, keyed by the same pid.
type Product struct {
	PID         int             `json:"pid" db:"pid"`
	PType       string          `json:"ptype" db:"ptype"`
	PPrice      decimal.Decimal `json:"pprice" db:"pprice"`
	Description string          `json:"description" db:"description"`
	PName       string          `json:"pname" db:"pname"`
}

type Computer struct {
	PID     int    `json:"pid" db:"pid"`
	CPUType string `json:"cputype" db:"cputype"`
}

type Printer struct {
	PID         int    `json:"pid" db:"pid"`
	PrinterType string `json:"printertype" db:"printertype"`
	Resolution  string `json:"resolution" db:"resolution"`
}

type Laptop struct {
	PID    int             `json:"pid" db:"pid"`
	Weight decimal.Decimal `json:"weight" db:"weight"`
	BType  string          `json:"btype" db:"btype"`
}

func (Product) TableName() string {
	return "products"
}

func (Product) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS products (
		pid INTEGER PRIMARY KEY,
		ptype VARCHAR(50) NOT NULL,
		pprice NUMERIC(10,2) NOT NULL,
		description TEXT NOT NULL,
		pname VARCHAR(100) NOT NULL
	);`
}

func (Computer) TableName() string {
	return "computers"
}

func (Computer) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS computers (
		pid INTEGER PRIMARY KEY REFERENCES products(pid) ON DELETE CASCADE,
		cputype VARCHAR(50) NOT NULL
	);`
}

func (Printer) TableName() string {
	return "printers"
}

func (Printer) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS printers (
		pid INTEGER PRIMARY KEY REFERENCES products(pid) ON DELETE CASCADE,
		printertype VARCHAR(50) NOT NULL,
		resolution VARCHAR(50) NOT NULL
	);`
}

func (Laptop) TableName() string {
	return "laptops"
}

func (Laptop) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS laptops (
		pid INTEGER PRIMARY KEY REFERENCES products(pid) ON DELETE CASCADE,
		weight NUMERIC(5,2) NOT NULL,
		btype VARCHAR(50) NOT NULL
	);`
}
