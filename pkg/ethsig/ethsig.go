// Package ethsig implements the Ethereum signing primitives the node needs:
// keccak256, EIP-55 address checksums and EIP-191 personal_sign signatures.
package ethsig

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// SignatureLength is the size of an R || S || V signature.
const SignatureLength = 65

var (
	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Keccak256 hashes the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// HashPersonalMessage returns the EIP-191 digest used by personal_sign.
func HashPersonalMessage(msg []byte) []byte {
	prefix := "\x19Ethereum Signed Message:\n" + strconv.Itoa(len(msg))
	return Keccak256([]byte(prefix), msg)
}

// IsHexAddress reports whether s is a 0x-prefixed 20-byte hex string.
func IsHexAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return false
	}
	b, err := hex.DecodeString(s[2:])
	return err == nil && len(b) == 20
}

// ChecksumAddress returns the EIP-55 mixed-case form of addr.
func ChecksumAddress(addr string) (string, error) {
	if !IsHexAddress(addr) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}
	lower := strings.ToLower(addr[2:])
	hash := hex.EncodeToString(Keccak256([]byte(lower)))

	out := []byte(lower)
	for i, c := range out {
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			out[i] = c - 32
		}
	}
	return "0x" + string(out), nil
}

// SameAddress compares two addresses ignoring case.
func SameAddress(a, b string) bool {
	return IsHexAddress(a) && strings.EqualFold(a, b)
}

// PubkeyToAddress derives the checksummed account address of pub.
func PubkeyToAddress(pub *secp256k1.PublicKey) string {
	raw := pub.SerializeUncompressed()
	addr, _ := ChecksumAddress("0x" + hex.EncodeToString(Keccak256(raw[1:])[12:]))
	return addr
}

// ParsePrivateKey parses a hex encoded 32-byte secp256k1 key.
func ParsePrivateKey(s string) (*secp256k1.PrivateKey, error) {
	b, err := FromHex(s)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(b) != 32 {
		return nil, fmt.Errorf("private key must be 32 bytes, got %d", len(b))
	}
	return secp256k1.PrivKeyFromBytes(b), nil
}

// Sign produces an R || S || V personal_sign signature with V in {27, 28}.
func Sign(key *secp256k1.PrivateKey, msg []byte) []byte {
	compact := ecdsa.SignCompact(key, HashPersonalMessage(msg), false)
	sig := make([]byte, SignatureLength)
	copy(sig, compact[1:])
	sig[64] = compact[0]
	return sig
}

// Recover returns the checksummed address that produced sig over msg.
// V may be encoded as 0/1 or 27/28.
func Recover(msg, sig []byte) (string, error) {
	if len(sig) != SignatureLength {
		return "", fmt.Errorf("%w: length %d", ErrInvalidSignature, len(sig))
	}
	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return "", fmt.Errorf("%w: recovery id %d", ErrInvalidSignature, sig[64])
	}

	compact := make([]byte, SignatureLength)
	compact[0] = 27 + v
	copy(compact[1:], sig[:64])

	pub, _, err := ecdsa.RecoverCompact(compact, HashPersonalMessage(msg))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return PubkeyToAddress(pub), nil
}

// Hex encodes b with a 0x prefix.
func Hex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// FromHex decodes a hex string with or without 0x prefix.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}
