// Package wallet adapts external wallets to ports.WalletProvider.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tokengated-music/internal/adapter/rpc"
	"tokengated-music/pkg/ethsig"
)

var ErrUnknownAccount = errors.New("account not managed by this wallet")

// Provider talks EIP-1193 style JSON-RPC to an external wallet such as
// Frame, Clef or a browser bridge.
type Provider struct {
	rpc *rpc.Client
}

// NewProvider creates a provider for the wallet endpoint at url.
func NewProvider(url string, timeout time.Duration) *Provider {
	return &Provider{rpc: rpc.NewClient(url, timeout, nil)}
}

// Accounts returns the checksummed accounts the wallet currently exposes.
func (p *Provider) Accounts(ctx context.Context) ([]string, error) {
	var raw []string
	if err := p.rpc.Call(ctx, &raw, "eth_accounts"); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		addr, err := ethsig.ChecksumAddress(a)
		if err != nil {
			return nil, fmt.Errorf("eth_accounts: %w", err)
		}
		out = append(out, addr)
	}
	return out, nil
}

func (p *Provider) ChainID(ctx context.Context) (int64, error) {
	var raw string
	if err := p.rpc.Call(ctx, &raw, "eth_chainId"); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(raw, "0x"), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId: parse %q: %w", raw, err)
	}
	return id, nil
}

// SignMessage asks the wallet for a personal_sign signature over message.
func (p *Provider) SignMessage(ctx context.Context, address string, message []byte) ([]byte, error) {
	var raw string
	if err := p.rpc.Call(ctx, &raw, "personal_sign", ethsig.Hex(message), address); err != nil {
		return nil, err
	}
	sig, err := ethsig.FromHex(raw)
	if err != nil {
		return nil, fmt.Errorf("personal_sign: decode signature: %w", err)
	}
	if len(sig) != ethsig.SignatureLength {
		return nil, fmt.Errorf("personal_sign: %w", ethsig.ErrInvalidSignature)
	}
	return sig, nil
}
