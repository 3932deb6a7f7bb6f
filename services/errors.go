package services

import "errors"

// Sentinel errors returned by the basket, checkout and catalog services.
// Handlers translate these to HTTP statuses; anything else is treated as an
// infrastructure failure.
var (
	// ErrNotFound covers unknown ids and entities owned by a different
	// customer. The two cases are deliberately indistinguishable so a
	// caller cannot probe for other customers' cards or addresses.
	ErrNotFound = errors.New("not found")

	// ErrBasketClosed means a transaction already exists for the basket.
	ErrBasketClosed = errors.New("basket already checked out")

	// ErrEmptyBasket rejects checkout of a basket with no line items.
	ErrEmptyBasket = errors.New("basket is empty")
)
