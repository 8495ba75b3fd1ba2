package main

import (
	"fmt"
	"os"

	"token_entities/internal/app/provider"
	"token_entities/internal/app/service"
	"token_entities/internal/infrastructure/configloader"
	networkdefinition "token_entities/internal/infrastructure/network/definition"
	"token_entities/internal/infrastructure/tokenloader"
	"token_entities/internal/pkg/logger"

	"go.uber.org/zap"
)

const defaultConfigPath = "config/config.yml"

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	os.Exit(run(cfgPath))
}

// run returns the process exit code so that deferred flushes happen before exit.
func run(cfgPath string) int {
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration %s: %v\n", cfgPath, err)
		return 1
	}

	// Основной логгер: zap, slog поверх него через samber/slog-zap
	zapLogger, err := logger.InitZap(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize zap logger: %v\n", err)
		return 1
	}
	defer zapLogger.Sync() //nolint:errcheck

	zapLogger.Info("Configuration loaded", zap.String("path", cfgPath))
	appLogger := logger.NewSlogAdapter()

	netDefProvider := networkdefinition.NewNetworkDefinitionProvider(appLogger, cfg.TrackedNetworkIdentifiers)
	activeNetworks := netDefProvider.GetAllNetworkDefinitions()
	natives := netDefProvider.NativeCurrencies()

	tokenLoader := tokenloader.NewTokenLoader(tokenloader.Options{
		Directory:      cfg.Tokens.Directory,
		BypassChecksum: cfg.Tokens.BypassChecksum,
		MaxConcurrency: cfg.Performance.MaxConcurrentRoutines,
	}, appLogger)
	tokenProvider := provider.NewTokenProvider(tokenLoader, appLogger)

	registry := service.NewTokenRegistry(cfg.Cache, appLogger)
	if err := service.LoadFrom(registry, tokenProvider, activeNetworks, appLogger); err != nil {
		logger.Error("Failed to load token lists", "error", err)
		return 1
	}

	for _, netDef := range activeNetworks {
		tokens := registry.TokensByChain(netDef.ChainID)
		attrs := []any{"network", netDef.Identifier, "chain_id", netDef.ChainID, "tokens", len(tokens)}
		if native, ok := natives[netDef.ChainID]; ok {
			attrs = append(attrs, "native", native.Symbol(), "wrapped", native.Wrapped().Address())
			if _, registered := registry.Lookup(netDef.ChainID, native.Wrapped().Address()); !registered {
				logger.Warn("Wrapped native token is missing from the token list", "network", netDef.Identifier)
			}
		}
		logger.Info("Network summary", attrs...)

		for i, tok := range tokens {
			logger.Info("  token", "network", netDef.Identifier, "position", i, "symbol", tok.Symbol(), "address", tok.Address())
		}
	}

	logger.Info("Token check finished", "registered_tokens", registry.Count(), "networks", len(activeNetworks))
	return 0
}
