package threshold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/ethsig"

	"github.com/rs/zerolog"
)

// clockSkew tolerates sign-in messages issued slightly in the future.
const clockSkew = 30 * time.Second

// Local is an in-process development domain. Payloads are sealed under a
// random data key, the data key is wrapped under the domain key, and the
// condition is checked against live chain state before unwrapping.
type Local struct {
	domainKey  ports.EncryptionService
	newCipher  ports.CipherFactory
	sigs       ports.SignatureService
	chain      ports.ChainReader
	nonces     ports.NonceStore // optional
	maxAuthAge time.Duration
	now        func() time.Time
	log        zerolog.Logger
}

// LocalConfig groups the collaborators of a Local domain.
type LocalConfig struct {
	DomainKey  ports.EncryptionService
	NewCipher  ports.CipherFactory
	Signatures ports.SignatureService
	Chain      ports.ChainReader
	Nonces     ports.NonceStore
	MaxAuthAge time.Duration
}

func NewLocal(cfg LocalConfig, log zerolog.Logger) *Local {
	return &Local{
		domainKey:  cfg.DomainKey,
		newCipher:  cfg.NewCipher,
		sigs:       cfg.Signatures,
		chain:      cfg.Chain,
		nonces:     cfg.Nonces,
		maxAuthAge: cfg.MaxAuthAge,
		now:        time.Now,
		log:        log,
	}
}

func (l *Local) Initialize(ctx context.Context) error {
	if l.domainKey == nil || l.newCipher == nil || l.chain == nil || l.sigs == nil {
		return errors.New("local threshold domain is not fully configured")
	}
	return ctx.Err()
}

// Encrypt seals req.Plaintext and returns an encoded message kit.
func (l *Local) Encrypt(ctx context.Context, req ports.EncryptRequest) ([]byte, error) {
	if err := req.Condition.Validate(); err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}

	dataKey, err := newDataKey()
	if err != nil {
		return nil, err
	}
	c, err := l.newCipher(dataKey)
	if err != nil {
		return nil, err
	}
	payload, err := c.Encrypt(req.Plaintext)
	if err != nil {
		return nil, fmt.Errorf("seal payload: %w", err)
	}
	wrapped, err := l.domainKey.Encrypt(dataKey)
	if err != nil {
		return nil, fmt.Errorf("wrap data key: %w", err)
	}

	spec := req.Condition.Spec()
	sig, err := signKit(ctx, req.Signer, spec, payload)
	if err != nil {
		return nil, err
	}

	kit := &domain.MessageKit{
		Header: domain.MessageKitHeader{
			Version:            1,
			Domain:             req.Domain,
			RitualID:           req.RitualID,
			Condition:          spec,
			Encryptor:          req.Signer.Address(),
			EncryptorSignature: sig,
			WrappedKey:         wrapped,
		},
		Payload: payload,
	}
	return kit.Bytes()
}

// Decrypt verifies the condition context and the condition, then opens the kit.
func (l *Local) Decrypt(ctx context.Context, req ports.DecryptRequest) ([]byte, error) {
	kit, cc := req.Kit, req.Context
	if kit == nil || cc == nil {
		return nil, errors.New("message kit and condition context are required")
	}
	h := kit.Header
	if h.Domain != req.Domain || h.RitualID != req.RitualID {
		return nil, fmt.Errorf("%w: %s/%d", ErrDomainMismatch, h.Domain, h.RitualID)
	}
	if err := verifyKit(l.sigs, kit); err != nil {
		return nil, err
	}

	cond, err := domain.ParseConditionSpec(h.Condition)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedKit, err)
	}
	if err := l.authenticate(ctx, cc, cond.ChainID); err != nil {
		return nil, err
	}
	if err := l.evaluate(ctx, cond, cc.UserAddress); err != nil {
		return nil, err
	}

	dataKey, err := l.domainKey.Decrypt(h.WrappedKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap data key: %w", err)
	}
	c, err := l.newCipher(dataKey)
	if err != nil {
		return nil, err
	}
	return c.Decrypt(kit.Payload)
}

func (l *Local) authenticate(ctx context.Context, cc *domain.ConditionContext, chainID int64) error {
	msg, err := domain.ParseSignInMessage(cc.SignInMessage)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthRejected, err)
	}
	if !ethsig.SameAddress(msg.Address, cc.UserAddress) {
		return fmt.Errorf("%w: address mismatch", ErrAuthRejected)
	}
	if !l.sigs.Verify(cc.UserAddress, []byte(cc.SignInMessage), cc.Signature) {
		return fmt.Errorf("%w: bad signature", ErrAuthRejected)
	}
	if msg.ChainID != chainID {
		return fmt.Errorf("%w: signed for chain %d, condition on %d", ErrAuthRejected, msg.ChainID, chainID)
	}

	now := l.now()
	if msg.IssuedAt.After(now.Add(clockSkew)) {
		return fmt.Errorf("%w: issued in the future", ErrAuthRejected)
	}
	if l.maxAuthAge > 0 && now.Sub(msg.IssuedAt) > l.maxAuthAge {
		return fmt.Errorf("%w: expired", ErrAuthRejected)
	}

	if l.nonces == nil {
		return nil
	}
	fresh, err := l.nonces.Consume(ctx, cc.UserAddress, msg.Nonce, l.maxAuthAge+clockSkew)
	if err != nil {
		return fmt.Errorf("consume nonce: %w", err)
	}
	if !fresh {
		return fmt.Errorf("%w: nonce replayed", ErrAuthRejected)
	}
	return nil
}

func (l *Local) evaluate(ctx context.Context, cond domain.AccessCondition, user string) error {
	switch cond.Kind {
	case domain.ConditionFungibleBalance, domain.ConditionNonFungibleBalance:
		bal, err := l.chain.BalanceOf(ctx, cond.ChainID, cond.ContractAddress, user)
		if err != nil {
			return fmt.Errorf("read balance: %w", err)
		}
		if bal.Cmp(cond.MinBalance) < 0 {
			l.log.Debug().Str("address", user).Str("balance", bal.String()).
				Str("required", cond.MinBalance.String()).Msg("balance below threshold")
			return ErrConditionNotSatisfied
		}
	case domain.ConditionNonFungibleOwnership:
		owner, err := l.chain.OwnerOf(ctx, cond.ChainID, cond.ContractAddress, cond.TokenID)
		if err != nil {
			return fmt.Errorf("read owner: %w", err)
		}
		if !ethsig.SameAddress(owner, user) {
			return ErrConditionNotSatisfied
		}
	default:
		return fmt.Errorf("unsupported condition kind %q", cond.Kind)
	}
	return nil
}
