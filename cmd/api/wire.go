package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"tokengated-music/config"
	"tokengated-music/internal/adapter/chain"
	"tokengated-music/internal/adapter/gateway"
	"tokengated-music/internal/adapter/pinning"
	"tokengated-music/internal/adapter/threshold"
	"tokengated-music/internal/adapter/wallet"
	"tokengated-music/internal/core/ports"
	"tokengated-music/internal/service"
)

// adapters are the outbound collaborators chosen by configuration.
type adapters struct {
	Wallet    ports.WalletProvider
	Chain     ports.ChainReader
	Pins      ports.PinningService
	Fetcher   ports.ContentFetcher
	Threshold ports.ThresholdCrypto
}

func chainEndpoints(chains map[string]config.ChainConfig) (map[int64]chain.Endpoint, error) {
	out := make(map[int64]chain.Endpoint, len(chains))
	for key, ch := range chains {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("chains.%s: chain id must be decimal", key)
		}
		out[id] = chain.Endpoint{URL: ch.RPCURL, RPS: ch.RPS, Burst: ch.Burst}
	}
	return out, nil
}

// buildAdapters picks the implementation of each outbound port from cfg.
// nonces backs sign-in replay protection of the local threshold domain.
func buildAdapters(cfg *config.Config, nonces ports.NonceStore, log zerolog.Logger) (*adapters, error) {
	var a adapters

	switch cfg.Wallet.Mode {
	case "dev":
		signer, err := wallet.NewKeySigner(cfg.Wallet.DevPrivateKey, cfg.Wallet.DevChainID)
		if err != nil {
			return nil, fmt.Errorf("dev wallet: %w", err)
		}
		log.Warn().Str("address", signer.Address()).Msg("Using in-process dev wallet")
		a.Wallet = signer
	default:
		a.Wallet = wallet.NewProvider(cfg.Wallet.ProviderURL, cfg.Wallet.Timeout)
	}

	endpoints, err := chainEndpoints(cfg.Chains)
	if err != nil {
		return nil, err
	}
	a.Chain = chain.NewRPCReader(endpoints, cfg.Threshold.Timeout)

	switch cfg.Pinning.Mode {
	case "memory":
		mem := pinning.NewMemory()
		log.Warn().Msg("Pinning to memory; content is lost on restart")
		a.Pins = mem
		a.Fetcher = mem
	default:
		a.Pins = pinning.NewPinata(cfg.Pinning.APIURL, cfg.Pinning.JWT, cfg.Pinning.Timeout)
		a.Fetcher = gateway.NewFetcher(cfg.Gateway.BaseURL, cfg.Gateway.Timeout, cfg.Gateway.MaxBytes)
	}

	switch cfg.Threshold.Mode {
	case "remote":
		a.Threshold = threshold.NewRemote(cfg.Threshold.PorterURL, service.NewEthSignatureService(), cfg.Threshold.Timeout)
	default:
		domainKey, err := service.NewAESEncryptionService(cfg.Threshold.DomainKey)
		if err != nil {
			return nil, fmt.Errorf("threshold domain key: %w", err)
		}
		a.Threshold = threshold.NewLocal(threshold.LocalConfig{
			DomainKey:  domainKey,
			NewCipher:  service.NewAESCipher,
			Signatures: service.NewEthSignatureService(),
			Chain:      a.Chain,
			Nonces:     nonces,
			MaxAuthAge: cfg.Threshold.MaxAuthAge,
		}, log)
	}

	return &a, nil
}

// probes reports the reachability of the wallet provider and the threshold runtime.
func (a *adapters) probes() []ports.HealthChecker {
	return []ports.HealthChecker{
		ports.Probe{Dependency: "wallet", Fn: func(ctx context.Context) error {
			_, err := a.Wallet.ChainID(ctx)
			return err
		}},
		ports.Probe{Dependency: "threshold", Fn: a.Threshold.Initialize},
	}
}
