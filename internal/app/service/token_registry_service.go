package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"token_entities/internal/app/port"
	"token_entities/internal/domain/entity"
	"token_entities/internal/infrastructure/configloader"

	"github.com/patrickmn/go-cache"
)

// ErrInvalidPair is returned by Pair when two tokens cannot form a pair.
var ErrInvalidPair = errors.New("invalid token pair")

// tokenRegistryImpl implements port.TokenRegistry on top of go-cache.
// Keys are TokenKey strings, so lookups ignore address case.
type tokenRegistryImpl struct {
	tokens *cache.Cache
	logger port.Logger
}

// NewTokenRegistry creates an empty registry. Zero expiration in cfg keeps entries forever.
func NewTokenRegistry(cfg configloader.CacheConfig, logger port.Logger) port.TokenRegistry {
	expiration := cache.NoExpiration
	if cfg.DefaultExpirationMinutes > 0 {
		expiration = time.Duration(cfg.DefaultExpirationMinutes) * time.Minute
	}
	cleanup := time.Duration(cfg.CleanupIntervalMinutes) * time.Minute

	return &tokenRegistryImpl{
		tokens: cache.New(expiration, cleanup),
		logger: logger,
	}
}

// Register adds tokens that are not registered yet and returns how many were added.
// A token equal to a registered one is ignored; the first registration wins.
func (r *tokenRegistryImpl) Register(tokens ...*entity.Token) int {
	added := 0
	for _, tok := range tokens {
		if tok == nil {
			continue
		}
		if err := r.tokens.Add(tok.Key().String(), tok, cache.DefaultExpiration); err != nil {
			r.logger.Debug("Token already registered, skipping", "token", tok.String())
			continue
		}
		added++
	}
	return added
}

// Lookup finds a token by chain id and address, ignoring address case.
func (r *tokenRegistryImpl) Lookup(chainID uint64, address string) (*entity.Token, bool) {
	v, ok := r.tokens.Get(entity.NewTokenKey(chainID, address).String())
	if !ok {
		return nil, false
	}
	tok, ok := v.(*entity.Token)
	return tok, ok
}

// TokensByChain returns the tokens of one chain in SortsBefore order.
func (r *tokenRegistryImpl) TokensByChain(chainID uint64) []*entity.Token {
	var out []*entity.Token
	for _, item := range r.tokens.Items() {
		tok, ok := item.Object.(*entity.Token)
		if ok && tok.ChainID() == chainID {
			out = append(out, tok)
		}
	}
	// Lowercase key order is exactly SortsBefore order and never panics on a
	// self-comparison inside the sort.
	slices.SortFunc(out, func(a, b *entity.Token) int {
		return strings.Compare(a.Key().Address, b.Key().Address)
	})
	return out
}

// Pair returns a and b in canonical order. Unlike entity.SortedPair it reports
// cross-chain and identical tokens as ErrInvalidPair instead of panicking.
func (r *tokenRegistryImpl) Pair(a, b *entity.Token) (*entity.Token, *entity.Token, error) {
	if a == nil || b == nil {
		return nil, nil, fmt.Errorf("%w: nil token", ErrInvalidPair)
	}
	if a.ChainID() != b.ChainID() {
		return nil, nil, fmt.Errorf("%w: %s and %s are on different chains", ErrInvalidPair, a, b)
	}
	if a.Equals(b) {
		return nil, nil, fmt.Errorf("%w: %s paired with itself", ErrInvalidPair, a)
	}
	first, second := entity.SortedPair(a, b)
	return first, second, nil
}

// Count returns the number of registered tokens.
func (r *tokenRegistryImpl) Count() int {
	return r.tokens.ItemCount()
}

// LoadFrom registers every token the provider returns for the given networks.
func LoadFrom(registry port.TokenRegistry, provider port.TokenProvider, networks []entity.NetworkDefinition, logger port.Logger) error {
	tokensByChainID, err := provider.GetTokensByNetwork(networks)
	if err != nil {
		return fmt.Errorf("failed to load tokens into registry: %w", err)
	}
	for chainID, tokens := range tokensByChainID {
		added := registry.Register(tokens...)
		logger.Info("Registered tokens", "chain_id", chainID, "added", added, "total_in_list", len(tokens))
	}
	return nil
}
