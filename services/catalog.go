package services

import (
	"database/sql"
	"fmt"

	"techstore-server/database"
	"techstore-server/models"
)

// CatalogService is the read-only product directory.
type CatalogService struct {
	db *database.DB
}

func NewCatalogService(db *database.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ProductDetail is a product with whichever subtype extension it carries.
// At most one of the pointers is set.
type ProductDetail struct {
	models.Product
	Computer *models.Computer `json:"computer,omitempty"`
	Printer  *models.Printer  `json:"printer,omitempty"`
	Laptop   *models.Laptop   `json:"laptop,omitempty"`
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Select(&products, `SELECT pid, ptype, pprice, description, pname FROM products ORDER BY pid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(pid int) (ProductDetail, error) {
	var detail ProductDetail
	err := s.db.Get(&detail.Product,
		`SELECT pid, ptype, pprice, description, pname FROM products WHERE pid = $1`, pid)
	if err == sql.ErrNoRows {
		return ProductDetail{}, fmt.Errorf("product %d: %w", pid, ErrNotFound)
	}
	if err != nil {
		return ProductDetail{}, fmt.Errorf("failed to load product %d: %w", pid, err)
	}

	var computer models.Computer
	err = s.db.Get(&computer, `SELECT pid, cputype FROM computers WHERE pid = $1`, pid)
	if err == nil {
		detail.Computer = &computer
		return detail, nil
	}
	if err != sql.ErrNoRows {
		return ProductDetail{}, fmt.Errorf("failed to load computer extension: %w", err)
	}

	var printer models.Printer
	err = s.db.Get(&printer, `SELECT pid, printertype, resolution FROM printers WHERE pid = $1`, pid)
	if err == nil {
		detail.Printer = &printer
		return detail, nil
	}
	if err != sql.ErrNoRows {
		return ProductDetail{}, fmt.Errorf("failed to load printer extension: %w", err)
	}

	var laptop models.Laptop
	err = s.db.Get(&laptop, `SELECT pid, weight, btype FROM laptops WHERE pid = $1`, pid)
	if err == nil {
		detail.Laptop = &laptop
		return detail, nil
	}
	if err != sql.ErrNoRows {
		return ProductDetail{}, fmt.Errorf("failed to load laptop extension: %w", err)
	}

	return detail, nil
}
