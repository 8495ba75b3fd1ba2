package entity

import (
	"errors"

	"token_entities/internal/pkg/validate"
)

var (
	// ErrInvalidAddress is returned by NewToken when the address fails validation.
	ErrInvalidAddress = validate.ErrInvalidAddress
	// ErrInvalidChainID is returned when the chain id is zero.
	ErrInvalidChainID = errors.New("invalid chain id")
	// ErrInvalidDecimals is returned when decimals are outside [0, 255).
	ErrInvalidDecimals = errors.New("invalid decimals")
	// ErrInvalidWrappedToken is returned when a native currency is paired with
	// a wrapped token from another chain.
	ErrInvalidWrappedToken = errors.New("invalid wrapped token")
	// ErrInvariantViolation is the panic value of a broken caller contract.
	// It is never returned as an ordinary error.
	ErrInvariantViolation = errors.New("invariant violation")
)
