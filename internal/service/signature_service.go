package service

import (
	"tokengated-music/pkg/ethsig"
)

// EthSignatureService implements ports.SignatureService for EIP-191
// personal_sign signatures over secp256k1.
type EthSignatureService struct{}

// NewEthSignatureService creates a new signature service.
func NewEthSignatureService() *EthSignatureService {
	return &EthSignatureService{}
}

// Recover returns the checksummed address that signed message.
func (s *EthSignatureService) Recover(message, signature []byte) (string, error) {
	return ethsig.Recover(message, signature)
}

// Verify reports whether signature over message was produced by address.
func (s *EthSignatureService) Verify(address string, message, signature []byte) bool {
	recovered, err := ethsig.Recover(message, signature)
	if err != nil {
		return false
	}
	return ethsig.SameAddress(recovered, address)
}
