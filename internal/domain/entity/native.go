package entity

import "fmt"

// NativeCurrency is the intrinsic asset of a chain (ETH, BNB, ...).
// It has no contract address; Wrapped returns its ERC20 representative.
type NativeCurrency struct {
	BaseCurrency
	wrapped *Token
}

var _ Currency = (*NativeCurrency)(nil)

// NewNativeCurrency returns the native currency of chainID.
// wrapped must be a token on the same chain.
func NewNativeCurrency(chainID uint64, decimals int, wrapped *Token, opts ...CurrencyOption) (*NativeCurrency, error) {
	base, err := newBaseCurrency(chainID, decimals, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	if wrapped == nil {
		return nil, fmt.Errorf("%w: nil wrapped token for chain %d", ErrInvalidWrappedToken, chainID)
	}
	if wrapped.ChainID() != chainID {
		return nil, fmt.Errorf("%w: wrapped token %s is not on chain %d", ErrInvalidWrappedToken, wrapped, chainID)
	}
	return &NativeCurrency{BaseCurrency: base, wrapped: wrapped}, nil
}

// IsNative always returns true for a native currency.
func (n *NativeCurrency) IsNative() bool { return true }

// IsToken always returns false for a native currency.
func (n *NativeCurrency) IsToken() bool { return false }

// Equals reports whether other is the native currency of the same chain.
func (n *NativeCurrency) Equals(other Currency) bool {
	if other == nil || !other.IsNative() {
		return false
	}
	o, ok := other.(*NativeCurrency)
	if !ok || o == nil {
		return false
	}
	return n.chainID == o.chainID
}

// Wrapped returns the token that represents this currency in contracts.
func (n *NativeCurrency) Wrapped() *Token { return n.wrapped }

func (*NativeCurrency) sealed() {}
