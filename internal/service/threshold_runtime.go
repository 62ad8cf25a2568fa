package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
)

// ThresholdRuntime initializes the threshold crypto runtime once per
// process. A failed initialization is retried on the next call.
type ThresholdRuntime struct {
	crypto   ports.ThresholdCrypto
	domain   string
	ritualID int

	mu    sync.Mutex
	ready bool
}

// NewThresholdRuntime wraps crypto for the given deployment domain and ritual.
func NewThresholdRuntime(crypto ports.ThresholdCrypto, domainName string, ritualID int) *ThresholdRuntime {
	return &ThresholdRuntime{crypto: crypto, domain: domainName, ritualID: ritualID}
}

func (r *ThresholdRuntime) ensure(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ready {
		return nil
	}
	if err := r.crypto.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize threshold runtime: %w", err)
	}
	r.ready = true
	return nil
}

// Encrypt seals plaintext under cond on behalf of signer.
func (r *ThresholdRuntime) Encrypt(ctx context.Context, plaintext []byte, cond domain.AccessCondition, signer ports.Signer) ([]byte, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	return r.crypto.Encrypt(ctx, ports.EncryptRequest{
		Domain:    r.domain,
		RitualID:  r.ritualID,
		Plaintext: plaintext,
		Condition: cond,
		Signer:    signer,
	})
}

// Decrypt opens kit with the given condition context.
func (r *ThresholdRuntime) Decrypt(ctx context.Context, kit *domain.MessageKit, cc *domain.ConditionContext) ([]byte, error) {
	if err := r.ensure(ctx); err != nil {
		return nil, err
	}
	return r.crypto.Decrypt(ctx, ports.DecryptRequest{
		Domain:   r.domain,
		RitualID: r.ritualID,
		Kit:      kit,
		Context:  cc,
	})
}

// SignInConfig describes the sign-in message presented to the wallet.
type SignInConfig struct {
	Domain string
	URI    string
}

// NewConditionContext asks signer to prove control of its address for
// the chain the kit's condition is evaluated on.
func NewConditionContext(ctx context.Context, kit *domain.MessageKit, signer ports.Signer, cfg SignInConfig, now time.Time) (*domain.ConditionContext, error) {
	nonce, err := newNonce()
	if err != nil {
		return nil, err
	}
	msg := domain.SignInMessage{
		Domain:   cfg.Domain,
		Address:  signer.Address(),
		URI:      cfg.URI,
		ChainID:  kit.Header.Condition.Chain,
		Nonce:    nonce,
		IssuedAt: now.UTC().Truncate(time.Second),
	}
	text := msg.String()

	sig, err := signer.SignMessage(ctx, []byte(text))
	if err != nil {
		return nil, fmt.Errorf("sign condition context: %w", err)
	}
	return &domain.ConditionContext{
		UserAddress:   signer.Address(),
		SignInMessage: text,
		Signature:     sig,
	}, nil
}

func newNonce() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating nonce: %w", err)
	}
	return hex.EncodeToString(b), nil
}
