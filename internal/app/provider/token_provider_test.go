package provider

import (
	"errors"
	"testing"

	"token_entities/internal/domain/entity"
	"token_entities/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls  int
	tokens map[uint64][]*entity.Token
	err    error
}

func (l *countingLoader) GetTokensByNetwork([]entity.NetworkDefinition) (map[uint64][]*entity.Token, error) {
	l.calls++
	return l.tokens, l.err
}

func TestTokenProvider_CachesFirstSuccess(t *testing.T) {
	weth := entity.MustNewToken(1, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18)
	loader := &countingLoader{tokens: map[uint64][]*entity.Token{1: {weth}}}
	p := NewTokenProvider(loader, logger.NewSlogAdapter())

	for i := 0; i < 3; i++ {
		tokens, err := p.GetTokensByNetwork(nil)
		require.NoError(t, err)
		assert.Same(t, weth, tokens[1][0])
	}
	assert.Equal(t, 1, loader.calls)
}

func TestTokenProvider_DoesNotCacheErrors(t *testing.T) {
	loader := &countingLoader{err: errors.New("boom")}
	p := NewTokenProvider(loader, logger.NewSlogAdapter())

	_, err := p.GetTokensByNetwork(nil)
	require.Error(t, err)

	loader.err = nil
	loader.tokens = map[uint64][]*entity.Token{}
	_, err = p.GetTokensByNetwork(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls)
}
