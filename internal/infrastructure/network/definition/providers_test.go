package networkdefinition

import (
	"testing"

	"token_entities/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNetworkDefinitionProvider_ActivatesTracked(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.NewSlogAdapter(), []string{"ethereum", "BSC", "ethereum", "unknown"})

	defs := p.GetAllNetworkDefinitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "ethereum", defs[0].Identifier)
	assert.Equal(t, "bsc", defs[1].Identifier)

	def, ok := p.GetNetworkDefinitionByName("bsc")
	assert.True(t, ok)
	assert.Equal(t, uint64(56), def.ChainID)

	_, ok = p.GetNetworkDefinitionByName("polygon")
	assert.False(t, ok)

	def, ok = p.GetNetworkDefinitionByChainID(1)
	assert.True(t, ok)
	assert.Equal(t, "ethereum", def.Identifier)

	_, ok = p.GetNetworkDefinitionByChainID(137)
	assert.False(t, ok)
}

func TestNetworkDefinitionProvider_NilSafe(t *testing.T) {
	var p *NetworkDefinitionProvider
	assert.Empty(t, p.GetAllNetworkDefinitions())
	_, ok := p.GetNetworkDefinitionByName("ethereum")
	assert.False(t, ok)
	_, ok = p.GetNetworkDefinitionByChainID(1)
	assert.False(t, ok)
}

func TestNativeCurrencies(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.NewSlogAdapter(), []string{"ethereum", "base", "celo"})
	natives := p.NativeCurrencies()
	require.Len(t, natives, 3)

	eth := natives[Ethereum.ChainID]
	require.NotNil(t, eth)
	assert.Equal(t, "ETH", eth.Symbol())
	assert.Equal(t, Ethereum.WrappedNativeTokenAddress, eth.Wrapped().Address())

	// Lowercase definitions are normalized to the checksummed form.
	celo := natives[Celo.ChainID]
	require.NotNil(t, celo)
	assert.Equal(t, "0x471EcE3750Da237f93B8E339c536989b8978a438", celo.Wrapped().Address())
}

func TestKnownIdentifiers(t *testing.T) {
	ids := KnownIdentifiers()
	assert.Len(t, ids, len(allKnownDefinitions))
	assert.Contains(t, ids, "ethereum")
	assert.IsIncreasing(t, ids)
}

func TestNativeCurrencies_AllKnownNetworks(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.NewSlogAdapter(), KnownIdentifiers())
	natives := p.NativeCurrencies()
	assert.Len(t, natives, len(allKnownDefinitions))

	// Several L2s share the 0x42..06 WETH address, so key by chain id, not address.
	for _, def := range allKnownDefinitions {
		native, ok := natives[def.ChainID]
		if assert.True(t, ok, def.Identifier) {
			assert.Equal(t, def.ChainID, native.Wrapped().ChainID(), def.Identifier)
			assert.Equal(t, def.NativeSymbol, native.Symbol(), def.Identifier)
		}
	}

	gnosis := natives[Gnosis.ChainID]
	require.NotNil(t, gnosis)
	assert.Equal(t, "0xe91D153E0b41518A2Ce8Dd3D7944Fa863463a97d", gnosis.Wrapped().Address())
}

func TestNativeCurrencies_NilProvider(t *testing.T) {
	var p *NetworkDefinitionProvider
	assert.NotNil(t, p.NativeCurrencies())
	assert.Empty(t, p.NativeCurrencies())
}
