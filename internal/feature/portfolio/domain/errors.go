// Package domain defines domain-level errors for the portfolio feature.
package domain

import "errors"

// Domain errors for portfolio operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrHoldingNotFound indicates that no holding exists with the given id.
	ErrHoldingNotFound = errors.New("portfolio item not found")

	// ErrDuplicateSymbol indicates that a holding with the same symbol is already tracked.
	// Symbols are normalized to uppercase before comparison.
	ErrDuplicateSymbol = errors.New("stock already exists in portfolio")
)
