package entity

import "fmt"

// NetworkDefinition describes an EVM network and its wrapped native token.
// Definitions are hard-coded; they carry no RPC endpoints.
type NetworkDefinition struct {
	ChainID                   uint64
	Name                      string
	Identifier                string // Уникальный идентификатор сети (например, "ethereum", "bsc")
	NativeSymbol              string
	NativeName                string
	Decimals                  int // Количество десятичных знаков для нативного токена
	BlockExplorerURL          string
	WrappedNativeTokenAddress string
}

// NativeCurrency builds the native currency of the network together with
// its wrapped token. The wrapped address must carry a valid checksum.
func (d NetworkDefinition) NativeCurrency() (*NativeCurrency, error) {
	wrapped, err := NewToken(d.ChainID, d.WrappedNativeTokenAddress, d.Decimals,
		WithSymbol("W"+d.NativeSymbol),
		WithName("Wrapped "+d.NativeName),
	)
	if err != nil {
		return nil, fmt.Errorf("wrapped native token of %s: %w", d.Identifier, err)
	}
	return NewNativeCurrency(d.ChainID, d.Decimals, wrapped,
		WithSymbol(d.NativeSymbol),
		WithName(d.NativeName),
	)
}
