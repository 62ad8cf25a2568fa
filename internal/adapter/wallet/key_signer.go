package wallet

import (
	"context"
	"fmt"

	"tokengated-music/pkg/ethsig"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// KeySigner is an in-process wallet holding one secp256k1 key. It is
// meant for development networks and tests.
type KeySigner struct {
	key     *secp256k1.PrivateKey
	address string
	chainID int64
}

// NewKeySigner parses a hex private key.
func NewKeySigner(hexKey string, chainID int64) (*KeySigner, error) {
	key, err := ethsig.ParsePrivateKey(hexKey)
	if err != nil {
		return nil, err
	}
	return &KeySigner{key: key, address: ethsig.PubkeyToAddress(key.PubKey()), chainID: chainID}, nil
}

func (k *KeySigner) Address() string { return k.address }

func (k *KeySigner) Accounts(context.Context) ([]string, error) {
	return []string{k.address}, nil
}

func (k *KeySigner) ChainID(context.Context) (int64, error) {
	return k.chainID, nil
}

func (k *KeySigner) SignMessage(ctx context.Context, address string, message []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !ethsig.SameAddress(address, k.address) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, address)
	}
	return ethsig.Sign(k.key, message), nil
}
