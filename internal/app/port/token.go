package port

import "token_entities/internal/domain/entity"

// TokenProvider defines the interface for fetching token definitions.
type TokenProvider interface {
	// GetTokensByNetwork returns validated tokens keyed by chain id for the given networks.
	GetTokensByNetwork(activeNetworkDefs []entity.NetworkDefinition) (map[uint64][]*entity.Token, error)
}

// TokenRegistry stores tokens by identity and hands out canonical orderings.
type TokenRegistry interface {
	Register(tokens ...*entity.Token) int
	Lookup(chainID uint64, address string) (*entity.Token, bool)
	TokensByChain(chainID uint64) []*entity.Token
	Pair(a, b *entity.Token) (*entity.Token, *entity.Token, error)
	Count() int
}
