package ports

import (
	"context"
	"math/big"
	"time"

	"tokengated-music/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

// EncryptionService handles AES-256-GCM sealing under a fixed key.
type EncryptionService interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// CipherFactory builds an EncryptionService for a raw 32-byte key.
type CipherFactory func(key []byte) (EncryptionService, error)

// SignatureService verifies EIP-191 personal_sign signatures.
type SignatureService interface {
	Recover(message, signature []byte) (string, error)
	Verify(address string, message, signature []byte) bool
}

// TokenService handles JWT session tokens.
type TokenService interface {
	Generate(address string, chainID int64) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Address string
	ChainID int64
}

// --- External boundaries ---

// Signer produces signatures on behalf of one wallet address.
type Signer interface {
	Address() string
	SignMessage(ctx context.Context, message []byte) ([]byte, error)
}

// SignerSource hands out authenticated signers.
type SignerSource interface {
	Signer(ctx context.Context, address string) (Signer, error)
}

// WalletProvider is the authoritative wallet (EIP-1193 style).
type WalletProvider interface {
	Accounts(ctx context.Context) ([]string, error)
	ChainID(ctx context.Context) (int64, error)
	SignMessage(ctx context.Context, address string, message []byte) ([]byte, error)
}

// ChainReader reads token state used by access conditions.
type ChainReader interface {
	BalanceOf(ctx context.Context, chainID int64, contract, owner string) (*big.Int, error)
	OwnerOf(ctx context.Context, chainID int64, contract string, tokenID *big.Int) (string, error)
}

// ThresholdCrypto is the conditional encryption runtime.
type ThresholdCrypto interface {
	Initialize(ctx context.Context) error
	Encrypt(ctx context.Context, req EncryptRequest) ([]byte, error)
	Decrypt(ctx context.Context, req DecryptRequest) ([]byte, error)
}

// EncryptRequest is the input of ThresholdCrypto.Encrypt.
type EncryptRequest struct {
	Domain    string
	RitualID  int
	Plaintext []byte
	Condition domain.AccessCondition
	Signer    Signer
}

// DecryptRequest is the input of ThresholdCrypto.Decrypt.
type DecryptRequest struct {
	Domain   string
	RitualID int
	Kit      *domain.MessageKit
	Context  *domain.ConditionContext
}

// PinningService pins content to a content-addressed network.
type PinningService interface {
	Pin(ctx context.Context, name string, data []byte) (string, error)
	Unpin(ctx context.Context, cid string) error
}

// ContentFetcher reads content by CID.
type ContentFetcher interface {
	Fetch(ctx context.Context, cid string) ([]byte, error)
}

// --- Service Ports (Business Logic) ---

// WalletService manages the connected wallet session.
type WalletService interface {
	Connect(ctx context.Context) (*ConnectResult, error)
	Restore(ctx context.Context, address string) (*domain.WalletSession, error)
	Disconnect(ctx context.Context, address string) error
	Signer(ctx context.Context, address string) (Signer, error)
}

// ConnectResult is returned by a successful wallet connect.
type ConnectResult struct {
	Session   *domain.WalletSession
	Token     string
	ExpiresAt time.Time
}

// PublishService runs the encrypt-and-publish workflow.
type PublishService interface {
	Publish(ctx context.Context, req PublishRequest) (*domain.Track, error)
}

// PublishRequest holds validated input for publishing.
type PublishRequest struct {
	Owner           string
	Title           string
	Artist          string
	Audio           []byte
	CoverArt        []byte // optional
	Condition       domain.ConditionForm
	DurationSeconds float64
	ClientIP        string
}

// LibraryService reads published tracks.
type LibraryService interface {
	GetTrack(ctx context.Context, id uuid.UUID) (*domain.Track, error)
	ListTracks(ctx context.Context, params TrackListParams) ([]domain.Track, int64, error)
}

// PlaybackService owns the single now-playing slot.
type PlaybackService interface {
	Play(ctx context.Context, req PlayRequest) (domain.NowPlaying, error)
	Toggle() (domain.NowPlaying, error)
	Pause() (domain.NowPlaying, error)
	Resume() (domain.NowPlaying, error)
	Stop() domain.NowPlaying
	Seek(position float64) (domain.NowPlaying, error)
	SetVolume(volume float64) domain.NowPlaying
	ToggleMute() domain.NowPlaying
	NowPlaying() domain.NowPlaying
	Blob(id, address string) (*domain.AudioBlob, bool)
	Subscribe() (<-chan domain.NowPlaying, func())
}

// PlayRequest identifies the track and the wallet asking to hear it.
type PlayRequest struct {
	Address  string
	TrackID  uuid.UUID
	ClientIP string
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// OrphanService tracks and reaps pins without metadata.
type OrphanService interface {
	Record(ctx context.Context, cid, reason string, cause error)
	Sweep(ctx context.Context) (int, error)
}
