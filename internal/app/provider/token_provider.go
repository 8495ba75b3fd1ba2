package provider

import (
	"sync"

	"token_entities/internal/app/port"
	"token_entities/internal/domain/entity"
)

type tokenProviderImpl struct {
	loader      port.TokenProvider
	logger      port.Logger
	mu          sync.Mutex
	tokensCache map[uint64][]*entity.Token // Cache loaded tokens
}

// NewTokenProvider wraps loader so that token lists are read from disk only once.
func NewTokenProvider(loader port.TokenProvider, logger port.Logger) port.TokenProvider {
	return &tokenProviderImpl{
		loader: loader,
		logger: logger,
	}
}

// GetTokensByNetwork loads token definitions for the given networks.
// It caches the results after the first successful load; later calls ignore
// activeNetworkDefs and return the cached map.
func (p *tokenProviderImpl) GetTokensByNetwork(activeNetworkDefs []entity.NetworkDefinition) (map[uint64][]*entity.Token, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tokensCache != nil {
		p.logger.Debug("Returning cached tokens by network")
		return p.tokensCache, nil
	}

	p.logger.Debug("Loading tokens", "networks", len(activeNetworkDefs))
	tokens, err := p.loader.GetTokensByNetwork(activeNetworkDefs)
	if err != nil {
		p.logger.Error("Failed to load tokens", "error", err)
		return nil, err
	}

	p.tokensCache = tokens
	p.logger.Info("Tokens loaded and cached successfully", "total_networks_with_tokens", len(tokens))
	return tokens, nil
}
