package service

import (
	"context"
	"fmt"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/apperror"
	"tokengated-music/pkg/ethsig"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService. The provider is the
// source of truth; the session cache only remembers which wallet was
// connected last.
type WalletServiceImpl struct {
	provider ports.WalletProvider
	sigs     ports.SignatureService
	tokens   ports.TokenService
	cache    ports.SessionCache
	audit    ports.AuditService
	signIn   SignInConfig
	ttl      time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	provider ports.WalletProvider,
	sigs ports.SignatureService,
	tokens ports.TokenService,
	cache ports.SessionCache,
	audit ports.AuditService,
	signIn SignInConfig,
	ttl time.Duration,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		provider: provider,
		sigs:     sigs,
		tokens:   tokens,
		cache:    cache,
		audit:    audit,
		signIn:   signIn,
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// Connect authenticates the provider's active account with a signed
// sign-in message and issues a session token.
func (s *WalletServiceImpl) Connect(ctx context.Context) (*ports.ConnectResult, error) {
	address, err := s.activeAccount(ctx)
	if err != nil {
		return nil, err
	}
	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return nil, apperror.ErrWalletUnavailable(fmt.Errorf("chain id: %w", err))
	}

	nonce, err := newNonce()
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	now := s.now().UTC()
	msg := domain.SignInMessage{
		Domain:   s.signIn.Domain,
		Address:  address,
		URI:      s.signIn.URI,
		ChainID:  chainID,
		Nonce:    nonce,
		IssuedAt: now.Truncate(time.Second),
	}
	text := []byte(msg.String())

	sig, err := s.provider.SignMessage(ctx, address, text)
	if err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("connect: wallet refused to sign")
		return nil, apperror.ErrSignatureRejected()
	}
	if !s.sigs.Verify(address, text, sig) {
		s.log.Warn().Str("address", address).Msg("connect: signature does not recover to account")
		return nil, apperror.ErrSignatureRejected()
	}

	session := &domain.WalletSession{
		Address:       address,
		ChainID:       chainID,
		Authenticated: true,
		ConnectedAt:   now,
		LastSeenAt:    now,
	}
	if err := s.cache.Set(ctx, session, s.ttl); err != nil {
		// the hint is optional; connecting still succeeds
		s.log.Warn().Err(err).Str("address", address).Msg("connect: failed to cache session")
	}

	token, expiresAt, err := s.tokens.Generate(address, chainID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.audit.Log(ctx, &domain.AuditLog{
		Address:      &address,
		Action:       domain.AuditActionConnect,
		ResourceType: "wallet",
		ResourceID:   address,
		Details:      fmt.Sprintf(`{"chain_id":%d}`, chainID),
	})
	s.log.Info().Str("address", address).Int64("chain_id", chainID).Msg("wallet connected")

	return &ports.ConnectResult{Session: session, Token: token, ExpiresAt: expiresAt}, nil
}

// Restore revalidates a cached session against the provider's live
// accounts. An empty address falls back to the last connected wallet.
func (s *WalletServiceImpl) Restore(ctx context.Context, address string) (*domain.WalletSession, error) {
	if address == "" {
		last, err := s.cache.LastAddress(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("restore: failed to read last wallet")
		}
		address = last
	}
	if address == "" {
		return nil, apperror.ErrWalletNotConnected()
	}

	cached, err := s.cache.Get(ctx, address)
	if err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("restore: failed to read session")
	}
	if cached == nil {
		return nil, apperror.ErrWalletNotConnected()
	}

	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		s.invalidate(ctx, address, "provider unavailable")
		return nil, apperror.ErrWalletUnavailable(err)
	}
	if !containsAddress(accounts, address) {
		s.invalidate(ctx, address, "account no longer exposed by provider")
		return nil, apperror.ErrWalletNotConnected()
	}

	if chainID, err := s.provider.ChainID(ctx); err == nil {
		cached.ChainID = chainID
	}
	cached.LastSeenAt = s.now().UTC()
	if err := s.cache.Set(ctx, cached, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("restore: failed to refresh session")
	}
	return cached, nil
}

// Disconnect forgets the cached session.
func (s *WalletServiceImpl) Disconnect(ctx context.Context, address string) error {
	if err := s.cache.Delete(ctx, address); err != nil {
		return apperror.ErrDependencyUnavailable(fmt.Errorf("delete session: %w", err))
	}
	s.audit.Log(ctx, &domain.AuditLog{
		Address:      &address,
		Action:       domain.AuditActionDisconnect,
		ResourceType: "wallet",
		ResourceID:   address,
	})
	s.log.Info().Str("address", address).Msg("wallet disconnected")
	return nil
}

// Signer returns a signer for address after checking the provider still
// exposes it.
func (s *WalletServiceImpl) Signer(ctx context.Context, address string) (ports.Signer, error) {
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		return nil, apperror.ErrWalletUnavailable(err)
	}
	if !containsAddress(accounts, address) {
		return nil, apperror.ErrWalletNotConnected()
	}
	checksummed, err := ethsig.ChecksumAddress(address)
	if err != nil {
		return nil, apperror.ErrWalletNotConnected()
	}
	return &providerSigner{provider: s.provider, address: checksummed}, nil
}

func (s *WalletServiceImpl) activeAccount(ctx context.Context) (string, error) {
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		return "", apperror.ErrWalletUnavailable(err)
	}
	if len(accounts) == 0 {
		return "", apperror.ErrWalletNotConnected()
	}
	address, err := ethsig.ChecksumAddress(accounts[0])
	if err != nil {
		return "", apperror.ErrWalletUnavailable(fmt.Errorf("provider account: %w", err))
	}
	return address, nil
}

func (s *WalletServiceImpl) invalidate(ctx context.Context, address, reason string) {
	s.log.Info().Str("address", address).Str("reason", reason).Msg("invalidating cached session")
	if err := s.cache.Delete(ctx, address); err != nil {
		s.log.Warn().Err(err).Str("address", address).Msg("failed to delete session")
	}
}

func containsAddress(accounts []string, address string) bool {
	for _, a := range accounts {
		if ethsig.SameAddress(a, address) {
			return true
		}
	}
	return false
}

type providerSigner struct {
	provider ports.WalletProvider
	address  string
}

func (p *providerSigner) Address() string { return p.address }

func (p *providerSigner) SignMessage(ctx context.Context, message []byte) ([]byte, error) {
	return p.provider.SignMessage(ctx, p.address, message)
}
