package domain

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
)

// MessageKitMagic prefixes every encoded message kit.
var MessageKitMagic = []byte("TMK1")

const maxKitHeaderLen = 1 << 20

var ErrMalformedKit = errors.New("malformed message kit")

// MessageKitHeader is the public part of a ciphertext: everything a
// decryptor needs to know to request the key.
type MessageKitHeader struct {
	Version            int           `json:"v"`
	Domain             string        `json:"domain"`
	RitualID           int           `json:"ritual_id"`
	Condition          ConditionSpec `json:"condition"`
	Encryptor          string        `json:"encryptor"`
	EncryptorSignature []byte        `json:"encryptor_signature,omitempty"`
	WrappedKey         []byte        `json:"wrapped_key,omitempty"`
}

// MessageKit is a parsed ciphertext.
type MessageKit struct {
	Header  MessageKitHeader
	Payload []byte
}

// Bytes encodes the kit as magic | uint32 header length | header JSON | payload.
func (k *MessageKit) Bytes() ([]byte, error) {
	header, err := json.Marshal(k.Header)
	if err != nil {
		return nil, fmt.Errorf("encode kit header: %w", err)
	}

	var buf bytes.Buffer
	buf.Grow(len(MessageKitMagic) + 4 + len(header) + len(k.Payload))
	buf.Write(MessageKitMagic)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(header)))
	buf.Write(header)
	buf.Write(k.Payload)
	return buf.Bytes(), nil
}

// ParseMessageKit decodes bytes produced by MessageKit.Bytes.
func ParseMessageKit(data []byte) (*MessageKit, error) {
	if len(data) < len(MessageKitMagic)+4 || !bytes.Equal(data[:len(MessageKitMagic)], MessageKitMagic) {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformedKit)
	}
	rest := data[len(MessageKitMagic):]

	n := binary.BigEndian.Uint32(rest[:4])
	rest = rest[4:]
	if n == 0 || n > maxKitHeaderLen || int(n) > len(rest) {
		return nil, fmt.Errorf("%w: header length %d", ErrMalformedKit, n)
	}

	var header MessageKitHeader
	if err := json.Unmarshal(rest[:n], &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedKit, err)
	}
	if header.Version != 1 {
		return nil, fmt.Errorf("%w: version %d", ErrMalformedKit, header.Version)
	}

	return &MessageKit{Header: header, Payload: rest[n:]}, nil
}

// ConditionContext binds a decryption request to a wallet: the user's
// address plus a sign-in message and its signature proving control of it.
type ConditionContext struct {
	UserAddress   string `json:"user_address"`
	SignInMessage string `json:"sign_in_message"`
	Signature     []byte `json:"signature"`
}
