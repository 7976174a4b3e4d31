package entity

import "errors"

var (
	// ErrNotFound is returned by item stores when no item has the given id.
	ErrNotFound = errors.New("item not found")
	// ErrInvalidInput is returned when a numeric field is negative or the
	// name is empty. Validation happens at the store boundary.
	ErrInvalidInput = errors.New("invalid item input")
)
