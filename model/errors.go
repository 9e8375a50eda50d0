package model

import "errors"

var (
	// ErrInvalidRange is returned when a range would be empty.
	ErrInvalidRange = errors.New("model: invalid range")

	// ErrOverflow is returned when a range or its translation does not fit in uint64.
	ErrOverflow = errors.New("model: overflow")

	// ErrOutOfDomain is the panic value of RangeMap.Get when the value is not in its domain.
	ErrOutOfDomain = errors.New("model: value out of domain")
)
