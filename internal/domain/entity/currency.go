package entity

import "fmt"

const maxDecimals = 255

// Currency is either a *NativeCurrency or a *Token.
// The set of variants is closed; use IsNative/IsToken or a type switch to dispatch.
type Currency interface {
	IsNative() bool
	IsToken() bool
	ChainID() uint64
	Decimals() uint8
	Symbol() string
	Name() string
	LogoURI() string
	Equals(other Currency) bool
	Wrapped() *Token

	sealed()
}

// BaseCurrency holds the fields shared by native currencies and tokens.
type BaseCurrency struct {
	chainID  uint64
	decimals uint8
	symbol   string
	name     string
	logoURI  string
}

func newBaseCurrency(chainID uint64, decimals int, o currencyOptions) (BaseCurrency, error) {
	if chainID == 0 {
		return BaseCurrency{}, fmt.Errorf("%w: %d", ErrInvalidChainID, chainID)
	}
	if decimals < 0 || decimals >= maxDecimals {
		return BaseCurrency{}, fmt.Errorf("%w: %d", ErrInvalidDecimals, decimals)
	}
	return BaseCurrency{
		chainID:  chainID,
		decimals: uint8(decimals),
		symbol:   o.symbol,
		name:     o.name,
		logoURI:  o.logoURI,
	}, nil
}

// ChainID returns the chain the currency lives on.
func (c BaseCurrency) ChainID() uint64 { return c.chainID }

// Decimals returns the number of decimals used to represent amounts.
func (c BaseCurrency) Decimals() uint8 { return c.decimals }

// Symbol returns the ticker, empty if unknown.
func (c BaseCurrency) Symbol() string { return c.symbol }

// Name returns the display name, empty if unknown.
func (c BaseCurrency) Name() string { return c.name }

// LogoURI returns the logo location, empty if unknown.
func (c BaseCurrency) LogoURI() string { return c.logoURI }

// CurrencyOption sets optional metadata on a currency.
type CurrencyOption func(*currencyOptions)

type currencyOptions struct {
	symbol         string
	name           string
	logoURI        string
	bypassChecksum bool
}

// WithSymbol sets the currency symbol.
func WithSymbol(symbol string) CurrencyOption {
	return func(o *currencyOptions) { o.symbol = symbol }
}

// WithName sets the currency name.
func WithName(name string) CurrencyOption {
	return func(o *currencyOptions) { o.name = name }
}

// WithLogoURI sets the currency logo URI.
func WithLogoURI(uri string) CurrencyOption {
	return func(o *currencyOptions) { o.logoURI = uri }
}

// WithBypassChecksum makes NewToken check only length, prefix and hex
// characters of the address and keep it as given.
// Ignored by NewNativeCurrency.
func WithBypassChecksum() CurrencyOption {
	return func(o *currencyOptions) { o.bypassChecksum = true }
}

func applyOptions(opts []CurrencyOption) currencyOptions {
	var o currencyOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
