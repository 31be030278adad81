// Package domain defines domain-level errors for the stocks feature.
package domain

import "errors"

// Domain errors for stock quote operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrStockNotFound indicates that the provider has no usable data for the symbol.
	// This is returned when a quote lacks both a display name and a current price.
	ErrStockNotFound = errors.New("stock not found or incomplete data")

	// ErrUpstream indicates that the market-data provider failed unexpectedly.
	// The original provider error is attached via wrapping.
	ErrUpstream = errors.New("market data provider error")
)
