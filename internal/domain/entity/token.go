package entity

import (
	"fmt"
	"strconv"
	"strings"

	"token_entities/internal/pkg/validate"
)

// Token is an ERC20 token: a contract address on a chain plus metadata.
// A Token is immutable after construction.
type Token struct {
	BaseCurrency
	address string
}

var _ Currency = (*Token)(nil)

// NewToken validates the metadata and the address and returns a Token.
// Without WithBypassChecksum the address must pass EIP-55 validation and is
// stored in checksummed form; with it only the structure is checked and the
// address is stored as given.
func NewToken(chainID uint64, address string, decimals int, opts ...CurrencyOption) (*Token, error) {
	o := applyOptions(opts)
	base, err := newBaseCurrency(chainID, decimals, o)
	if err != nil {
		return nil, err
	}

	var parsed string
	if o.bypassChecksum {
		parsed, err = validate.CheckValidAddress(address)
	} else {
		parsed, err = validate.ValidateAndParseAddress(address)
	}
	if err != nil {
		return nil, err
	}

	return &Token{BaseCurrency: base, address: parsed}, nil
}

// MustNewToken is like NewToken but panics on error.
// Use it only for hard-coded definitions.
func MustNewToken(chainID uint64, address string, decimals int, opts ...CurrencyOption) *Token {
	t, err := NewToken(chainID, address, decimals, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Address returns the contract address of the token.
func (t *Token) Address() string { return t.address }

// IsNative always returns false for a token.
func (t *Token) IsNative() bool { return false }

// IsToken always returns true for a token.
func (t *Token) IsToken() bool { return true }

// Equals reports whether other is a token on the same chain with the same
// address. Metadata is not compared.
func (t *Token) Equals(other Currency) bool {
	if other == nil || !other.IsToken() {
		return false
	}
	o, ok := other.(*Token)
	if !ok || o == nil {
		return false
	}
	return t.chainID == o.chainID && strings.EqualFold(t.address, o.address)
}

// SortsBefore reports whether the address of t sorts before the address of
// other, comparing lowercase hex strings.
// It panics with ErrInvariantViolation if the tokens are on different chains
// or have the same address.
func (t *Token) SortsBefore(other *Token) bool {
	if t.chainID != other.chainID {
		panic(fmt.Errorf("%w: CHAIN_IDS", ErrInvariantViolation))
	}
	a, b := strings.ToLower(t.address), strings.ToLower(other.address)
	if a == b {
		panic(fmt.Errorf("%w: ADDRESSES", ErrInvariantViolation))
	}
	return a < b
}

// Wrapped returns the token itself; tokens need no wrapping.
func (t *Token) Wrapped() *Token { return t }

// Key returns the identity of the token.
func (t *Token) Key() TokenKey {
	return NewTokenKey(t.chainID, t.address)
}

func (t *Token) String() string {
	if t.symbol != "" {
		return fmt.Sprintf("%s(%d:%s)", t.symbol, t.chainID, t.address)
	}
	return fmt.Sprintf("%d:%s", t.chainID, t.address)
}

func (*Token) sealed() {}

// TokenKey identifies a token: chain id plus lowercase address.
// Two tokens are Equal iff their keys are equal.
type TokenKey struct {
	ChainID uint64
	Address string
}

// NewTokenKey builds the identity key for an address on a chain.
func NewTokenKey(chainID uint64, address string) TokenKey {
	return TokenKey{ChainID: chainID, Address: strings.ToLower(address)}
}

func (k TokenKey) String() string {
	return strconv.FormatUint(k.ChainID, 10) + ":" + k.Address
}

// SortedPair returns a and b ordered by SortsBefore.
// It panics under the same conditions as SortsBefore.
func SortedPair(a, b *Token) (*Token, *Token) {
	if a.SortsBefore(b) {
		return a, b
	}
	return b, a
}
