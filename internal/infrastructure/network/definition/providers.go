package networkdefinition

import (
	"fmt"
	"sort"
	"strings"

	"token_entities/internal/app/port"
	"token_entities/internal/domain/entity"
)

// NetworkDefinitionProvider provides network definitions.
type NetworkDefinitionProvider struct {
	logger            port.Logger
	allNetworkDefs    map[string]entity.NetworkDefinition
	activeNetworkDefs []entity.NetworkDefinition
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Ethereum = entity.NetworkDefinition{
		ChainID:                   1,
		Name:                      "Ethereum Mainnet",
		Identifier:                "ethereum",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://etherscan.io",
		WrappedNativeTokenAddress: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", // WETH
	}
	BSC = entity.NetworkDefinition{
		ChainID:                   56,
		Name:                      "BNB Smart Chain",
		Identifier:                "bsc",
		NativeSymbol:              "BNB",
		NativeName:                "BNB",
		Decimals:                  18,
		BlockExplorerURL:          "https://bscscan.com",
		WrappedNativeTokenAddress: "0xbb4CdB9CBd36B01bD1cBaEBF2De08d9173bc095c", // WBNB
	}
	Polygon = entity.NetworkDefinition{
		ChainID:                   137,
		Name:                      "Polygon PoS",
		Identifier:                "polygon",
		NativeSymbol:              "MATIC",
		NativeName:                "Matic",
		Decimals:                  18,
		BlockExplorerURL:          "https://polygonscan.com",
		WrappedNativeTokenAddress: "0x0d500B1d8E8eF31E21C99d1Db9A6444d3ADf1270", // WMATIC
	}
	Arbitrum = entity.NetworkDefinition{
		ChainID:                   42161,
		Name:                      "Arbitrum One",
		Identifier:                "arbitrum",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://arbiscan.io",
		WrappedNativeTokenAddress: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1", // WETH on Arbitrum
	}
	Avalanche = entity.NetworkDefinition{
		ChainID:                   43114,
		Name:                      "Avalanche C-Chain",
		Identifier:                "avalanche",
		NativeSymbol:              "AVAX",
		NativeName:                "Avalanche",
		Decimals:                  18,
		BlockExplorerURL:          "https://snowtrace.io",
		WrappedNativeTokenAddress: "0xB31f66AA3C1e785363F0875A1B74E27b85FD66c7", // WAVAX
	}
	Base = entity.NetworkDefinition{
		ChainID:                   8453,
		Name:                      "Base Mainnet",
		Identifier:                "base",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://basescan.org",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006", // WETH on Base
	}
	Blast = entity.NetworkDefinition{
		ChainID:                   81457,
		Name:                      "Blast Mainnet",
		Identifier:                "blast",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://blastscan.io",
		WrappedNativeTokenAddress: "0x4300000000000000000000000000000000000004", // WETH on Blast
	}
	Celo = entity.NetworkDefinition{
		ChainID:                   42220,
		Name:                      "Celo Mainnet",
		Identifier:                "celo",
		NativeSymbol:              "CELO",
		NativeName:                "Celo",
		Decimals:                  18,
		BlockExplorerURL:          "https://celoscan.io",
		WrappedNativeTokenAddress: "0x471ece3750da237f93b8e339c536989b8978a438", // CELO itself
	}
	Fantom = entity.NetworkDefinition{
		ChainID:                   250,
		Name:                      "Fantom Opera",
		Identifier:                "fantom",
		NativeSymbol:              "FTM",
		NativeName:                "Fantom",
		Decimals:                  18,
		BlockExplorerURL:          "https://ftmscan.com",
		WrappedNativeTokenAddress: "0x21be370D5312f44cB42ce377BC9b8a0cEF1A4C83", // WFTM
	}
	Gnosis = entity.NetworkDefinition{
		ChainID:                   100,
		Name:                      "Gnosis Chain",
		Identifier:                "gnosis",
		NativeSymbol:              "xDAI",
		NativeName:                "xDAI",
		Decimals:                  18,
		BlockExplorerURL:          "https://gnosisscan.io",
		WrappedNativeTokenAddress: "0xe91D153E0b41518A2Ce8Dd3D7944Fa863463a97d", // WXDAI
	}
	Linea = entity.NetworkDefinition{
		ChainID:                   59144,
		Name:                      "Linea Mainnet",
		Identifier:                "linea",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://lineascan.build",
		WrappedNativeTokenAddress: "0xe5D7C2a44FfDDf6b295A15c148167daaAf5Cf34f", // WETH on Linea
	}
	Mantle = entity.NetworkDefinition{
		ChainID:                   5000,
		Name:                      "Mantle Network",
		Identifier:                "mantle",
		NativeSymbol:              "MNT",
		NativeName:                "Mantle",
		Decimals:                  18,
		BlockExplorerURL:          "https://explorer.mantle.xyz",
		WrappedNativeTokenAddress: "0x78c1b0C915c4FAA5FffA6CAbf0219DA63d7f4cb8", // WMNT (Wrapped MNT)
	}
	Optimism = entity.NetworkDefinition{
		ChainID:                   10,
		Name:                      "OP Mainnet",
		Identifier:                "optimism",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://optimistic.etherscan.io",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006", // WETH on Optimism
	}
	PolygonZkEVM = entity.NetworkDefinition{
		ChainID:                   1101,
		Name:                      "Polygon zkEVM",
		Identifier:                "polygon_zkevm",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://zkevm.polygonscan.com",
		WrappedNativeTokenAddress: "0x4F9A0e7FD2Bf6067db6994CF12E4495Df938E6e9", // WETH on Polygon zkEVM
	}
	Scroll = entity.NetworkDefinition{
		ChainID:                   534352,
		Name:                      "Scroll",
		Identifier:                "scroll",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://scrollscan.com",
		WrappedNativeTokenAddress: "0x5300000000000000000000000000000000000004", // WETH on Scroll
	}
	ZkSync = entity.NetworkDefinition{ // zkSync Era
		ChainID:                   324,
		Name:                      "zkSync Era Mainnet",
		Identifier:                "zksync",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://explorer.zksync.io",
		WrappedNativeTokenAddress: "0x5AEa5775959fBC2557Cc8789bC1bf90A239D9a91", // WETH on zkSync Era
	}
	Zora = entity.NetworkDefinition{
		ChainID:                   7777777,
		Name:                      "Zora Mainnet",
		Identifier:                "zora",
		NativeSymbol:              "ETH",
		NativeName:                "Ether",
		Decimals:                  18,
		BlockExplorerURL:          "https://explorer.zora.energy",
		WrappedNativeTokenAddress: "0x4200000000000000000000000000000000000006", // WETH on Zora (стандартный адрес для многих L2)
	}
)

// allKnownDefinitions is a helper to quickly access all hardcoded definitions.
var allKnownDefinitions = map[string]entity.NetworkDefinition{
	Ethereum.Identifier:     Ethereum,
	BSC.Identifier:          BSC,
	Polygon.Identifier:      Polygon,
	Arbitrum.Identifier:     Arbitrum,
	Avalanche.Identifier:    Avalanche,
	Base.Identifier:         Base,
	Blast.Identifier:        Blast,
	Celo.Identifier:         Celo,
	Fantom.Identifier:       Fantom,
	Gnosis.Identifier:       Gnosis,
	Linea.Identifier:        Linea,
	Mantle.Identifier:       Mantle,
	Optimism.Identifier:     Optimism,
	PolygonZkEVM.Identifier: PolygonZkEVM,
	Scroll.Identifier:       Scroll,
	ZkSync.Identifier:       ZkSync,
	Zora.Identifier:         Zora,
}

// KnownIdentifiers returns the identifiers of all hardcoded networks, sorted.
func KnownIdentifiers() []string {
	ids := make([]string, 0, len(allKnownDefinitions))
	for id := range allKnownDefinitions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NewNetworkDefinitionProvider activates the networks listed in trackedIdentifiers.
// Identifiers without a hardcoded definition are logged and skipped.
func NewNetworkDefinitionProvider(log port.Logger, trackedIdentifiers []string) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger:            log,
		allNetworkDefs:    allKnownDefinitions,
		activeNetworkDefs: make([]entity.NetworkDefinition, 0, len(trackedIdentifiers)),
	}

	activeIdentifiers := make(map[string]struct{})
	for _, raw := range trackedIdentifiers {
		identifier := strings.ToLower(strings.TrimSpace(raw))

		if _, alreadyActive := activeIdentifiers[identifier]; alreadyActive {
			p.logger.Warn(fmt.Sprintf("Duplicate tracked network identifier: %s. Skipping.", identifier))
			continue
		}

		def, ok := p.allNetworkDefs[identifier]
		if !ok {
			p.logger.Warn(fmt.Sprintf("Tracked network '%s' has no hardcoded network definition. Skipping.", identifier))
			continue
		}

		p.activeNetworkDefs = append(p.activeNetworkDefs, def)
		activeIdentifiers[identifier] = struct{}{}
	}

	if len(p.activeNetworkDefs) == 0 {
		p.logger.Warn("No tracked networks matched a network definition. No networks will be active.")
	} else {
		p.logger.Info(fmt.Sprintf("NetworkDefinitionProvider initialized. Active networks: %d", len(p.activeNetworkDefs)))
		for _, netDef := range p.activeNetworkDefs {
			p.logger.Debug(fmt.Sprintf("  - Active network: %s (ID: %s, ChainID: %d)", netDef.Name, netDef.Identifier, netDef.ChainID))
		}
	}

	return p
}

// GetAllNetworkDefinitions returns the list of active (tracked) network definitions.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defsCopy := make([]entity.NetworkDefinition, len(p.activeNetworkDefs))
	copy(defsCopy, p.activeNetworkDefs)
	return defsCopy
}

// GetNetworkDefinitionByName returns a specific network definition by its identifier if it's active.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	for _, def := range p.activeNetworkDefs {
		if def.Identifier == identifier {
			return def, true
		}
	}
	return entity.NetworkDefinition{}, false
}

// GetNetworkDefinitionByChainID returns a specific network definition by its chain ID if it's active.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByChainID(chainID uint64) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	for _, def := range p.activeNetworkDefs {
		if def.ChainID == chainID {
			return def, true
		}
	}
	return entity.NetworkDefinition{}, false
}

// NativeCurrencies builds the native currency of every active network, keyed by chain id.
// Definitions whose wrapped token fails validation are logged and left out.
func (p *NetworkDefinitionProvider) NativeCurrencies() map[uint64]*entity.NativeCurrency {
	if p == nil {
		return map[uint64]*entity.NativeCurrency{}
	}
	natives := make(map[uint64]*entity.NativeCurrency, len(p.activeNetworkDefs))
	for _, def := range p.activeNetworkDefs {
		native, err := def.NativeCurrency()
		if err != nil {
			p.logger.Error("Failed to build native currency", "network", def.Identifier, "error", err)
			continue
		}
		natives[def.ChainID] = native
	}
	return natives
}
