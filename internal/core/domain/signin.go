package domain

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const signInStatement = "Sign in to unlock token-gated music."

// SignInMessage is an EIP-4361 style message the wallet signs to prove
// control of Address.
type SignInMessage struct {
	Domain   string
	Address  string
	URI      string
	ChainID  int64
	Nonce    string
	IssuedAt time.Time
}

func (m SignInMessage) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s wants you to sign in with your Ethereum account:\n", m.Domain)
	fmt.Fprintf(&b, "%s\n\n%s\n\n", m.Address, signInStatement)
	fmt.Fprintf(&b, "URI: %s\n", m.URI)
	b.WriteString("Version: 1\n")
	fmt.Fprintf(&b, "Chain ID: %d\n", m.ChainID)
	fmt.Fprintf(&b, "Nonce: %s\n", m.Nonce)
	fmt.Fprintf(&b, "Issued At: %s", m.IssuedAt.UTC().Format(time.RFC3339))
	return b.String()
}

var ErrMalformedSignIn = errors.New("malformed sign-in message")

// ParseSignInMessage reads back a message produced by SignInMessage.String.
func ParseSignInMessage(s string) (SignInMessage, error) {
	var m SignInMessage
	sc := bufio.NewScanner(strings.NewReader(s))

	if !sc.Scan() {
		return m, ErrMalformedSignIn
	}
	domain, ok := strings.CutSuffix(sc.Text(), " wants you to sign in with your Ethereum account:")
	if !ok || domain == "" {
		return m, fmt.Errorf("%w: header", ErrMalformedSignIn)
	}
	m.Domain = domain

	if !sc.Scan() {
		return m, fmt.Errorf("%w: address", ErrMalformedSignIn)
	}
	m.Address = strings.TrimSpace(sc.Text())

	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), ": ")
		if !found {
			continue
		}
		switch key {
		case "URI":
			m.URI = value
		case "Chain ID":
			id, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return m, fmt.Errorf("%w: chain id", ErrMalformedSignIn)
			}
			m.ChainID = id
		case "Nonce":
			m.Nonce = value
		case "Issued At":
			t, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return m, fmt.Errorf("%w: issued at", ErrMalformedSignIn)
			}
			m.IssuedAt = t
		}
	}
	if m.Nonce == "" || m.IssuedAt.IsZero() {
		return m, fmt.Errorf("%w: missing nonce or issued at", ErrMalformedSignIn)
	}
	return m, nil
}
