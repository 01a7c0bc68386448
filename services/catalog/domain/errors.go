package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidCategory indicates a category value outside the closed enum.
	ErrInvalidCategory = errors.New("invalid product category")

	// ErrInvalidLimit indicates a list limit outside the allowed [1,100] range.
	ErrInvalidLimit = errors.New("invalid limit")

	// ErrInvalidFeaturedFlag indicates a featured query value that is not a boolean.
	ErrInvalidFeaturedFlag = errors.New("invalid featured flag")

	// ErrInvalidProduct indicates a product definition violating domain constraints.
	ErrInvalidProduct = errors.New("invalid product")
)
