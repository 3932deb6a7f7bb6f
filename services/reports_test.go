package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techstore-server/database"
	"techstore-server/models"
)

// seedSalesData builds a small committed history:
//
//	txn bid=1  cid=1  card 1111  2024-01-10  items: (p10 qty2 @10.00) (p11 qty1 @5.00)
//	txn bid=2  cid=2  card 2222  2024-01-31  items: (p10 qty1 @40.00)
//	txn bid=3  cid=1  card 1111  2024-02-02  items: (p11 qty3 @5.00)
//
// The February transaction sits just outside a [Jan 1, Jan 31] window.
func seedSalesData(t *testing.T, db *database.DB) {
	t.Helper()
	seedCustomer(t, db, 1, "Ada", "Lovelace")
	seedCustomer(t, db, 2, "Alan", "Turing")
	seedProduct(t, db, 10, "computer", "Desktop X", "40.00")
	seedProduct(t, db, 11, "printer", "InkFast", "5.00")
	seedCard(t, db, 1, "1111")
	seedCard(t, db, 2, "2222")
	seedAddress(t, db, 1, "Home")
	seedAddress(t, db, 2, "Office")

	seedTransaction(t, db,
		models.Transaction{BID: 1, CID: 1, SAName: "Home", CCNumber: "1111", TDate: date(2024, time.January, 10), TTag: "Pending"},
		[]models.BasketItem{
			{PID: 10, Quantity: 2, PriceSold: decimal.RequireFromString("10.00")},
			{PID: 11, Quantity: 1, PriceSold: decimal.RequireFromString("5.00")},
		})
	seedTransaction(t, db,
		models.Transaction{BID: 2, CID: 2, SAName: "Office", CCNumber: "2222", TDate: date(2024, time.January, 31), TTag: "Pending"},
		[]models.BasketItem{
			{PID: 10, Quantity: 1, PriceSold: decimal.RequireFromString("40.00")},
		})
	seedTransaction(t, db,
		models.Transaction{BID: 3, CID: 1, SAName: "Home", CCNumber: "1111", TDate: date(2024, time.February, 2), TTag: "Pending"},
		[]models.BasketItem{
			{PID: 11, Quantity: 3, PriceSold: decimal.RequireFromString("5.00")},
		})
}

func january() DateRange {
	return DateRange{Start: date(2024, time.January, 1), End: date(2024, time.January, 31)}
}

func TestRevenueByCard(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	svc := NewReportService(db)

	out, err := svc.RevenueByCard()
	require.NoError(t, err)
	require.Len(t, out, 2)

	byCard := map[string]decimal.Decimal{}
	for _, row := range out {
		byCard[row.CCNumber] = row.Revenue
	}
	// Sum of pricesold alone: card 1111 gets 10+5 (Jan) + 5 (Feb) = 20
	assert.True(t, byCard["1111"].Equal(decimal.RequireFromString("20.00")), "got %s", byCard["1111"])
	assert.True(t, byCard["2222"].Equal(decimal.RequireFromString("40.00")), "got %s", byCard["2222"])
}

func TestTopCustomers(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	svc := NewReportService(db)

	out, err := svc.TopCustomers()
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Card 2222's single 40.00 line beats Ada's 20.00 of summed pricesold
	assert.Equal(t, 2, out[0].CID)
	assert.Equal(t, "Alan Turing", out[0].Name)
	assert.True(t, out[0].Revenue.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, 1, out[1].CID)
	assert.True(t, out[1].Revenue.Equal(decimal.RequireFromString("20.00")))
}

func TestProductTransactionCountsInclusiveRange(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	svc := NewReportService(db)

	out, err := svc.ProductTransactionCounts(january())
	require.NoError(t, err)

	counts := map[int]int{}
	for _, row := range out {
		counts[row.PID] = row.Purchases
	}
	// p10 appears in txn 1 and txn 2 (Jan 31 is inclusive); p11 only in
	// txn 1 because txn 3 is dated February
	assert.Equal(t, 2, counts[10])
	assert.Equal(t, 1, counts[11])
}

func TestBestSellingByReach(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	svc := NewReportService(db)

	top, err := svc.BestSellingByReach(january())
	require.NoError(t, err)
	require.NotNil(t, top)
	// p10 was bought by both customers in January, p11 by one
	assert.Equal(t, 10, top.PID)
	assert.Equal(t, 2, top.Customers)

	empty, err := svc.BestSellingByReach(DateRange{
		Start: date(2020, time.January, 1),
		End:   date(2020, time.December, 31),
	})
	require.NoError(t, err)
	assert.Nil(t, empty)
}

func TestMaxTransactionByCard(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	svc := NewReportService(db)

	out, err := svc.MaxTransactionByCard(DateRange{
		Start: date(2024, time.January, 1),
		End:   date(2024, time.December, 31),
	})
	require.NoError(t, err)

	byCard := map[string]decimal.Decimal{}
	for _, row := range out {
		byCard[row.CCNumber] = row.MaxAmount
	}
	// Card 1111: txn 1 totals 2*10+1*5 = 25, txn 3 totals 3*5 = 15
	assert.True(t, byCard["1111"].Equal(decimal.RequireFromString("25.00")), "got %s", byCard["1111"])
	assert.True(t, byCard["2222"].Equal(decimal.RequireFromString("40.00")), "got %s", byCard["2222"])
}

func TestCategoryAverages(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	svc := NewReportService(db)

	out, err := svc.CategoryAverages(january())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// Averages use the current catalog price, not pricesold: computer lines
	// average (40*2 + 40*1)/2 = 60, printer lines (5*1)/1 = 5
	assert.Equal(t, "computer", out[0].PType)
	assert.True(t, out[0].AvgValue.Equal(decimal.RequireFromString("60.00")), "got %s", out[0].AvgValue)
	assert.Equal(t, "printer", out[1].PType)
	assert.True(t, out[1].AvgValue.Equal(decimal.RequireFromString("5.00")), "got %s", out[1].AvgValue)
}

func TestRunDispatch(t *testing.T) {
	db := newTestDB(t)
	seedSalesData(t, db)
	svc := NewReportService(db)

	out, err := svc.Run(ReportRevenueByCard, nil)
	require.NoError(t, err)
	assert.Len(t, out.([]CardRevenue), 2)

	dates := january()
	out, err = svc.Run(ReportProductTransactionCounts, &dates)
	require.NoError(t, err)
	assert.NotEmpty(t, out.([]ProductTransactionCount))

	// Date-ranged kinds refuse to run without a range
	_, err = svc.Run(ReportCategoryAverages, nil)
	assert.Error(t, err)

	_, err = svc.Run(ReportKind(99), &dates)
	assert.Error(t, err)
}
