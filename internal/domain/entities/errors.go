package entities

import "errors"

// Domain errors
var (
	ErrInvalidFormat = errors.New("invalid transcript format")
	ErrInvalidLength = errors.New("invalid summary length")
)
