package port

import "token_entities/internal/domain/entity"

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all active network definitions as a slice.
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByName returns a specific network definition by its identifier.
	// Возвращает определение и true, если найдено, иначе false.
	GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool)

	// GetNetworkDefinitionByChainID returns the active network definition for a chain id.
	GetNetworkDefinitionByChainID(chainID uint64) (entity.NetworkDefinition, bool)
}
