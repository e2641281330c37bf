package store

import "errors"

var (
	// ErrNotFound is returned when no product exists under the requested id.
	ErrNotFound = errors.New("catalog: product not found")

	// ErrMissingID is returned when a write is attempted on a product
	// without a primary key.
	ErrMissingID = errors.New("catalog: product id is required")
)
