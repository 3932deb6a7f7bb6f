package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"techstore-server/database"
)

// ReportService runs the sales statistics queries over committed
// transactions. It is stateless; every call reads the latest data.
type ReportService struct {
	db *database.DB
}

func NewReportService(db *database.DB) *ReportService {
	return &ReportService{db: db}
}

// DateRange is a closed interval on transaction date: both endpoints count.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type CardRevenue struct {
	CCNumber string          `json:"ccnumber" db:"ccnumber"`
	Revenue  decimal.Decimal `json:"revenue" db:"revenue"`
}

type CustomerRevenue struct {
	CID     int             `json:"cid" db:"cid"`
	Name    string          `json:"name" db:"name"`
	Revenue decimal.Decimal `json:"revenue" db:"revenue"`
}

type ProductTransactionCount struct {
	PID       int    `json:"pid" db:"pid"`
	PName     string `json:"pname" db:"pname"`
	Purchases int    `json:"purchases" db:"purchases"`
}

type ProductReach struct {
	PID       int    `json:"pid" db:"pid"`
	PName     string `json:"pname" db:"pname"`
	Customers int    `json:"customers" db:"customers"`
}

type CardMaxAmount struct {
	CCNumber  string          `json:"ccnumber" db:"ccnumber"`
	MaxAmount decimal.Decimal `json:"max_amount" db:"max_amount"`
}

type CategoryAverage struct {
	PType    string          `json:"ptype" db:"ptype"`
	AvgValue decimal.Decimal `json:"avg_value" db:"avg_value"`
}

// RevenueByCard sums line-item sale prices per credit card across all
// transactions. Note this is the sum of pricesold alone, not price times
// quantity; that is the historical definition of this report and it is kept
// as-is.
func (s *ReportService) RevenueByCard() ([]CardRevenue, error) {
	var out []CardRevenue
	err := s.db.Select(&out, `
		SELECT t.ccnumber, SUM(ai.pricesold) AS revenue
		FROM transactions t
		JOIN basket_items ai ON ai.bid = t.bid
		GROUP BY t.ccnumber`)
	if err != nil {
		return nil, fmt.Errorf("revenue by card query failed: %w", err)
	}
	return out, nil
}

// TopCustomers returns the ten customers with the highest summed line-item
// sale prices, highest first. Like RevenueByCard, revenue here is the sum
// of pricesold.
func (s *ReportService) TopCustomers() ([]CustomerRevenue, error) {
	var out []CustomerRevenue
	err := s.db.Select(&out, `
		SELECT c.cid, c.fname || ' ' || c.lname AS name, SUM(ai.pricesold) AS revenue
		FROM transactions t
		JOIN customers c ON t.cid = c.cid
		JOIN basket_items ai ON ai.bid = t.bid
		GROUP BY c.cid, c.fname, c.lname
		ORDER BY SUM(ai.pricesold) DESC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top customers query failed: %w", err)
	}
	return out, nil
}

// ProductTransactionCounts counts (transaction, line item) rows per product
// for transactions dated within the range.
func (s *ReportService) ProductTransactionCounts(dates DateRange) ([]ProductTransactionCount, error) {
	var out []ProductTransactionCount
	err := s.db.Select(&out, `
		SELECT ai.pid, p.pname, COUNT(*) AS purchases
		FROM transactions t
		JOIN basket_items ai ON ai.bid = t.bid
		JOIN products p ON ai.pid = p.pid
		WHERE t.tdate BETWEEN $1 AND $2
		GROUP BY ai.pid, p.pname`,
		dates.Start, dates.End)
	if err != nil {
		return nil, fmt.Errorf("product transaction counts query failed: %w", err)
	}
	return out, nil
}

// BestSellingByReach returns the product bought by the most distinct
// customers in the range, or nil when no transactions fall in it.
func (s *ReportService) BestSellingByReach(dates DateRange) (*ProductReach, error) {
	var out []ProductReach
	err := s.db.Select(&out, `
		SELECT p.pid, p.pname, COUNT(DISTINCT t.cid) AS customers
		FROM transactions t
		JOIN basket_items ai ON ai.bid = t.bid
		JOIN products p ON ai.pid = p.pid
		WHERE t.tdate BETWEEN $1 AND $2
		GROUP BY p.pid, p.pname
		ORDER BY COUNT(DISTINCT t.cid) DESC
		LIMIT 1`,
		dates.Start, dates.End)
	if err != nil {
		return nil, fmt.Errorf("best selling by reach query failed: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

// MaxTransactionByCard reports, per credit card, the largest single
// transaction amount in the range. A transaction's amount is the sum of
// quantity * pricesold over its basket's line items.
func (s *ReportService) MaxTransactionByCard(dates DateRange) ([]CardMaxAmount, error) {
	var out []CardMaxAmount
	err := s.db.Select(&out, `
		SELECT ccnumber, MAX(total) AS max_amount
		FROM (
			SELECT t.ccnumber AS ccnumber, SUM(ai.quantity * ai.pricesold) AS total
			FROM transactions t
			JOIN basket_items ai ON ai.bid = t.bid
			WHERE t.tdate BETWEEN $1 AND $2
			GROUP BY t.bid, t.ccnumber
		) totals
		GROUP BY ccnumber`,
		dates.Start, dates.End)
	if err != nil {
		return nil, fmt.Errorf("max transaction by card query failed: %w", err)
	}
	return out, nil
}

// CategoryAverages computes the average of current catalog price times
// quantity per line item, grouped by product category, highest average
// first.
func (s *ReportService) CategoryAverages(dates DateRange) ([]CategoryAverage, error) {
	var out []CategoryAverage
	err := s.db.Select(&out, `
		SELECT p.ptype, AVG(p.pprice * ai.quantity) AS avg_value
		FROM products p
		JOIN basket_items ai ON p.pid = ai.pid
		JOIN transactions t ON ai.bid = t.bid
		WHERE t.tdate BETWEEN $1 AND $2
		GROUP BY p.ptype
		ORDER BY AVG(p.pprice * ai.quantity) DESC`,
		dates.Start, dates.End)
	if err != nil {
		return nil, fmt.Errorf("category averages query failed: %w", err)
	}
	return out, nil
}

// ReportKind enumerates the available reports. The set is closed: Run
// rejects anything it does not know about.
type ReportKind int

const (
	ReportRevenueByCard ReportKind = iota
	ReportTopCustomers
	ReportProductTransactionCounts
	ReportBestSellingByReach
	ReportMaxTransactionByCard
	ReportCategoryAverages
)

// NeedsDateRange reports whether the kind is parameterized by a date range.
func (k ReportKind) NeedsDateRange() bool {
	switch k {
	case ReportRevenueByCard, ReportTopCustomers:
		return false
	default:
		return true
	}
}

// Run dispatches to the typed report methods. Kinds that need a date range
// fail when dates is nil.
func (s *ReportService) Run(kind ReportKind, dates *DateRange) (interface{}, error) {
	if kind.NeedsDateRange() && dates == nil {
		return nil, fmt.Errorf("report kind %d requires a date range", kind)
	}
	switch kind {
	case ReportRevenueByCard:
		return s.RevenueByCard()
	case ReportTopCustomers:
		return s.TopCustomers()
	case ReportProductTransactionCounts:
		return s.ProductTransactionCounts(*dates)
	case ReportBestSellingByReach:
		return s.BestSellingByReach(*dates)
	case ReportMaxTransactionByCard:
		return s.MaxTransactionByCard(*dates)
	case ReportCategoryAverages:
		return s.CategoryAverages(*dates)
	default:
		return nil, fmt.Errorf("unknown report kind %d", kind)
	}
}
