// Package chain reads ERC20/ERC721 state over Ethereum JSON-RPC.
package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"tokengated-music/internal/adapter/rpc"
	"tokengated-music/pkg/ethsig"

	"golang.org/x/time/rate"
)

// Function selectors: first four bytes of keccak256 of the signature.
var (
	selectorBalanceOf = mustSelector("balanceOf(address)") // 0x70a08231
	selectorOwnerOf   = mustSelector("ownerOf(uint256)")   // 0x6352211e
)

var (
	ErrUnsupportedChain = errors.New("no rpc endpoint configured for chain")
	ErrEmptyReturn      = errors.New("contract call returned no data")
)

// Endpoint configures the RPC URL of one chain and its request budget.
type Endpoint struct {
	URL   string
	RPS   float64
	Burst int
}

// RPCReader implements ports.ChainReader with eth_call.
type RPCReader struct {
	clients map[int64]*rpc.Client
}

// NewRPCReader creates one rate-limited client per configured chain.
func NewRPCReader(endpoints map[int64]Endpoint, timeout time.Duration) *RPCReader {
	clients := make(map[int64]*rpc.Client, len(endpoints))
	for id, ep := range endpoints {
		if ep.URL == "" {
			continue
		}
		var limiter *rate.Limiter
		if ep.RPS > 0 {
			burst := ep.Burst
			if burst < 1 {
				burst = 1
			}
			limiter = rate.NewLimiter(rate.Limit(ep.RPS), burst)
		}
		clients[id] = rpc.NewClient(ep.URL, timeout, limiter)
	}
	return &RPCReader{clients: clients}
}

// BalanceOf returns balanceOf(owner) of an ERC20 or ERC721 contract.
func (r *RPCReader) BalanceOf(ctx context.Context, chainID int64, contract, owner string) (*big.Int, error) {
	arg, err := addressWord(owner)
	if err != nil {
		return nil, err
	}
	ret, err := r.call(ctx, chainID, contract, append(selectorBalanceOf, arg...))
	if err != nil {
		return nil, fmt.Errorf("balanceOf: %w", err)
	}
	return new(big.Int).SetBytes(ret[:32]), nil
}

// OwnerOf returns the checksummed owner of an ERC721 token.
func (r *RPCReader) OwnerOf(ctx context.Context, chainID int64, contract string, tokenID *big.Int) (string, error) {
	if tokenID == nil || tokenID.Sign() < 0 || tokenID.BitLen() > 256 {
		return "", fmt.Errorf("ownerOf: invalid token id %v", tokenID)
	}
	arg := make([]byte, 32)
	tokenID.FillBytes(arg)

	ret, err := r.call(ctx, chainID, contract, append(selectorOwnerOf, arg...))
	if err != nil {
		return "", fmt.Errorf("ownerOf: %w", err)
	}
	return ethsig.ChecksumAddress(ethsig.Hex(ret[12:32]))
}

func (r *RPCReader) call(ctx context.Context, chainID int64, contract string, data []byte) ([]byte, error) {
	client, ok := r.clients[chainID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	if !ethsig.IsHexAddress(contract) {
		return nil, fmt.Errorf("%w: %q", ethsig.ErrInvalidAddress, contract)
	}

	msg := map[string]string{
		"to":   strings.ToLower(contract),
		"data": ethsig.Hex(data),
	}
	var out string
	if err := client.Call(ctx, &out, "eth_call", msg, "latest"); err != nil {
		return nil, err
	}
	ret, err := ethsig.FromHex(out)
	if err != nil {
		return nil, fmt.Errorf("decode return data: %w", err)
	}
	if len(ret) < 32 {
		return nil, ErrEmptyReturn
	}
	return ret, nil
}

func addressWord(addr string) ([]byte, error) {
	if !ethsig.IsHexAddress(addr) {
		return nil, fmt.Errorf("%w: %q", ethsig.ErrInvalidAddress, addr)
	}
	raw, _ := hex.DecodeString(addr[2:])
	word := make([]byte, 32)
	copy(word[12:], raw)
	return word, nil
}

func mustSelector(signature string) []byte {
	return ethsig.Keccak256([]byte(signature))[:4:4]
}
