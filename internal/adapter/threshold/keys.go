package threshold

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/pkg/ethsig"
)

func newDataKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generating data key: %w", err)
	}
	return key, nil
}

// kitDigest is what the encryptor signs: the condition together with the
// payload, so neither can be swapped without breaking the signature.
func kitDigest(cond domain.ConditionSpec, payload []byte) ([]byte, error) {
	raw, err := json.Marshal(cond)
	if err != nil {
		return nil, fmt.Errorf("encode condition: %w", err)
	}
	return ethsig.Keccak256(raw, payload), nil
}

func signKit(ctx context.Context, signer ports.Signer, cond domain.ConditionSpec, payload []byte) ([]byte, error) {
	digest, err := kitDigest(cond, payload)
	if err != nil {
		return nil, err
	}
	sig, err := signer.SignMessage(ctx, digest)
	if err != nil {
		return nil, fmt.Errorf("sign payload: %w", err)
	}
	return sig, nil
}

// verifyKit checks the encryptor signature over the kit's condition and payload.
func verifyKit(sigs ports.SignatureService, kit *domain.MessageKit) error {
	digest, err := kitDigest(kit.Header.Condition, kit.Payload)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedKit, err)
	}
	if !sigs.Verify(kit.Header.Encryptor, digest, kit.Header.EncryptorSignature) {
		return fmt.Errorf("%w: encryptor signature", domain.ErrMalformedKit)
	}
	return nil
}
