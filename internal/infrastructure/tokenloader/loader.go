package tokenloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"token_entities/internal/app/port"
	"token_entities/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTokenDirectoryPath = "data/tokens"

// tokenListEntry is one element of a <network>.json token list.
type tokenListEntry struct {
	ChainID  uint64 `json:"chainId"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	LogoURI  string `json:"logoURI"`
}

// Options configures a TokenFileLoader.
type Options struct {
	Directory      string
	BypassChecksum bool
	MaxConcurrency int
}

// TokenFileLoader implements the port.TokenProvider interface.
type TokenFileLoader struct {
	tokenDirPath   string
	bypassChecksum bool
	maxConcurrency int
	logger         port.Logger
}

// NewTokenLoader creates a new TokenFileLoader.
func NewTokenLoader(opts Options, logger port.Logger) *TokenFileLoader {
	dir := opts.Directory
	if dir == "" {
		dir = defaultTokenDirectoryPath
	}
	return &TokenFileLoader{
		tokenDirPath:   dir,
		bypassChecksum: opts.BypassChecksum,
		maxConcurrency: opts.MaxConcurrency,
		logger:         logger,
	}
}

// GetTokensByNetwork reads <dir>/<identifier>.json for every active network
// and returns the valid tokens keyed by chain id.
// Invalid entries, entries for another chain and duplicates are logged and skipped.
func (l *TokenFileLoader) GetTokensByNetwork(activeNetworkDefs []entity.NetworkDefinition) (map[uint64][]*entity.Token, error) {
	if _, err := os.Stat(l.tokenDirPath); err != nil {
		return nil, fmt.Errorf("failed to read token directory %s: %w", l.tokenDirPath, err)
	}

	var (
		mu              sync.Mutex
		tokensByChainID = make(map[uint64][]*entity.Token, len(activeNetworkDefs))
	)

	var g errgroup.Group
	if l.maxConcurrency > 0 {
		g.SetLimit(l.maxConcurrency)
	}
	// A broken file only drops its own network, so no goroutine returns an error.
	for _, netDef := range activeNetworkDefs {
		netDef := netDef
		g.Go(func() error {
			tokens := l.loadNetworkFile(netDef)
			if len(tokens) == 0 {
				return nil
			}
			mu.Lock()
			tokensByChainID[netDef.ChainID] = append(tokensByChainID[netDef.ChainID], tokens...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(tokensByChainID) == 0 && len(activeNetworkDefs) > 0 {
		l.logger.Info("No tokens were loaded for any active network.", "token_directory", l.tokenDirPath)
	}
	return tokensByChainID, nil
}

func (l *TokenFileLoader) loadNetworkFile(netDef entity.NetworkDefinition) []*entity.Token {
	filePath := filepath.Join(l.tokenDirPath, netDef.Identifier+".json")
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Debug("No token file for network", "network_identifier", netDef.Identifier, "path", filePath)
		} else {
			l.logger.Warn("Failed to read token file, skipping file.", "path", filePath, "error", err)
		}
		return nil
	}

	var entries []tokenListEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		l.logger.Warn("Failed to unmarshal tokens from file, skipping file.", "path", filePath, "error", err)
		return nil
	}

	seen := make(map[entity.TokenKey]struct{}, len(entries))
	tokens := make([]*entity.Token, 0, len(entries))
	for _, e := range entries {
		if e.ChainID != netDef.ChainID {
			l.logger.Warn("Token has mismatched ChainID in file, skipping token.",
				"file", filePath, "token_symbol", e.Symbol, "token_address", e.Address,
				"token_chain_id", e.ChainID, "expected_chain_id", netDef.ChainID)
			continue
		}

		opts := []entity.CurrencyOption{entity.WithSymbol(e.Symbol), entity.WithName(e.Name), entity.WithLogoURI(e.LogoURI)}
		if l.bypassChecksum {
			opts = append(opts, entity.WithBypassChecksum())
		}
		tok, err := entity.NewToken(e.ChainID, e.Address, e.Decimals, opts...)
		if err != nil {
			l.logger.Warn("Invalid token in file, skipping token.",
				"file", filePath, "token_symbol", e.Symbol, "token_address", e.Address, "error", err)
			continue
		}

		if _, dup := seen[tok.Key()]; dup {
			l.logger.Warn("Duplicate token in file, keeping the first entry.", "file", filePath, "token_address", tok.Address())
			continue
		}
		seen[tok.Key()] = struct{}{}
		tokens = append(tokens, tok)
	}

	l.logger.Info("Loaded tokens for network from file",
		"network_identifier", netDef.Identifier, "file", filePath,
		"count", len(tokens), "skipped", len(entries)-len(tokens))
	return tokens
}
