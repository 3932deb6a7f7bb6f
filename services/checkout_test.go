package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutHappyPath(t *testing.T) {
	db := newTestDB(t)
	baskets := NewBasketService(db)
	checkout := NewCheckoutService(db)

	seedCustomer(t, db, 1, "Ada", "Lovelace")
	seedProduct(t, db, 10, "computer", "Desktop X", "999.99")
	seedCard(t, db, 1, "4111111111111111")
	seedAddress(t, db, 1, "Home")

	basket, _, err := baskets.GetOrCreateOpenBasket(1, 0)
	require.NoError(t, err)
	_, err = baskets.AddProduct(basket.BID, 10, 1)
	require.NoError(t, err)

	txn, err := checkout.Checkout(1, basket.BID, "Home", "4111111111111111")
	require.NoError(t, err)
	assert.Equal(t, basket.BID, txn.BID)
	assert.Equal(t, 1, txn.CID)
	assert.Equal(t, "Pending", txn.TTag)
	assert.False(t, txn.TDate.IsZero())
}

func TestCheckoutTwiceFailsAndWritesNothing(t *testing.T) {
	db := newTestDB(t)
	baskets := NewBasketService(db)
	checkout := NewCheckoutService(db)

	seedCustomer(t, db, 1, "Ada", "Lovelace")
	seedProduct(t, db, 10, "computer", "Desktop X", "999.99")
	seedCard(t, db, 1, "4111111111111111")
	seedAddress(t, db, 1, "Home")

	basket, _, err := baskets.GetOrCreateOpenBasket(1, 0)
	require.NoError(t, err)
	_, err = baskets.AddProduct(basket.BID, 10, 1)
	require.NoError(t, err)

	_, err = checkout.Checkout(1, basket.BID, "Home", "4111111111111111")
	require.NoError(t, err)

	_, err = checkout.Checkout(1, basket.BID, "Home", "4111111111111111")
	assert.ErrorIs(t, err, ErrBasketClosed)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM transactions WHERE bid = $1`, basket.BID))
	assert.Equal(t, 1, count)
}

func TestCheckoutRejectsForeignAddressAndCard(t *testing.T) {
	db := newTestDB(t)
	baskets := NewBasketService(db)
	checkout := NewCheckoutService(db)

	seedCustomer(t, db, 1, "Ada", "Lovelace")
	seedCustomer(t, db, 2, "Alan", "Turing")
	seedProduct(t, db, 10, "computer", "Desktop X", "999.99")
	seedCard(t, db, 1, "4111111111111111")
	seedAddress(t, db, 1, "Home")
	seedCard(t, db, 2, "5555444433332222")
	seedAddress(t, db, 2, "Office")

	basket, _, err := baskets.GetOrCreateOpenBasket(1, 0)
	require.NoError(t, err)
	_, err = baskets.AddProduct(basket.BID, 10, 1)
	require.NoError(t, err)

	// Another customer's address
	_, err = checkout.Checkout(1, basket.BID, "Office", "4111111111111111")
	assert.ErrorIs(t, err, ErrNotFound)

	// Another customer's card
	_, err = checkout.Checkout(1, basket.BID, "Home", "5555444433332222")
	assert.ErrorIs(t, err, ErrNotFound)

	// Checking out someone else's basket
	_, err = checkout.Checkout(2, basket.BID, "Office", "5555444433332222")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckoutEmptyBasket(t *testing.T) {
	db := newTestDB(t)
	baskets := NewBasketService(db)
	checkout := NewCheckoutService(db)

	seedCustomer(t, db, 1, "Ada", "Lovelace")
	seedCard(t, db, 1, "4111111111111111")
	seedAddress(t, db, 1, "Home")

	basket, _, err := baskets.GetOrCreateOpenBasket(1, 0)
	require.NoError(t, err)

	_, err = checkout.Checkout(1, basket.BID, "Home", "4111111111111111")
	assert.ErrorIs(t, err, ErrEmptyBasket)
}

func TestCheckoutUnknownBasket(t *testing.T) {
	db := newTestDB(t)
	checkout := NewCheckoutService(db)
	seedCustomer(t, db, 1, "Ada", "Lovelace")

	_, err := checkout.Checkout(1, 42, "Home", "4111111111111111")
	assert.ErrorIs(t, err, ErrNotFound)
}
