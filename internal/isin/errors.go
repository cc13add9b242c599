package isin

import "errors"

var (
	// ErrInvalidCharacter is returned when an identifier is not exactly
	// Length characters drawn from [0-9A-Z] after uppercasing.
	ErrInvalidCharacter = errors.New("invalid character in ISIN")

	// ErrOutOfRange is returned when a value lies outside [0, 36^12-1].
	ErrOutOfRange = errors.New("value out of ISIN range")

	// ErrInvalidValue is returned when value text is not a number.
	ErrInvalidValue = errors.New("invalid ISIN value")
)
