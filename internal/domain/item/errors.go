package item

import "errors"

var (
	// ErrItemNotFound indicates the item doesn't exist.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidInput indicates invalid item input.
	ErrInvalidInput = errors.New("invalid item input")
)
