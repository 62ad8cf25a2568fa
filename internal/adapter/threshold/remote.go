package threshold

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
)

const maxSidecarResponse = 256 << 20

// Remote bridges to a threshold-network sidecar over JSON. The sidecar's
// ciphertext is carried as the payload of a local message kit so the node
// can read the condition without a round trip.
type Remote struct {
	baseURL string
	sigs    ports.SignatureService
	http    *http.Client
}

// NewRemote targets the sidecar at baseURL. sigs verifies the encryptor
// signature of a kit before it is forwarded for decryption.
func NewRemote(baseURL string, sigs ports.SignatureService, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		sigs:    sigs,
		http:    &http.Client{Timeout: timeout},
	}
}

type remoteEncryptRequest struct {
	Domain    string               `json:"domain"`
	RitualID  int                  `json:"ritual_id"`
	Condition domain.ConditionSpec `json:"condition"`
	Plaintext []byte               `json:"plaintext"`
}

type remoteEncryptResponse struct {
	Ciphertext []byte `json:"ciphertext"`
}

type remoteDecryptRequest struct {
	Domain     string                   `json:"domain"`
	RitualID   int                      `json:"ritual_id"`
	Condition  domain.ConditionSpec     `json:"condition"`
	Ciphertext []byte                   `json:"ciphertext"`
	Context    *domain.ConditionContext `json:"context"`
}

type remoteDecryptResponse struct {
	Plaintext []byte `json:"plaintext"`
}

// Initialize checks that the sidecar is reachable.
func (r *Remote) Initialize(ctx context.Context) error {
	return r.do(ctx, http.MethodGet, "/status", nil, nil)
}

func (r *Remote) Encrypt(ctx context.Context, req ports.EncryptRequest) ([]byte, error) {
	if err := req.Condition.Validate(); err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}
	spec := req.Condition.Spec()

	var resp remoteEncryptResponse
	err := r.do(ctx, http.MethodPost, "/encrypt", remoteEncryptRequest{
		Domain:    req.Domain,
		RitualID:  req.RitualID,
		Condition: spec,
		Plaintext: req.Plaintext,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Ciphertext) == 0 {
		return nil, fmt.Errorf("sidecar returned an empty ciphertext")
	}

	sig, err := signKit(ctx, req.Signer, spec, resp.Ciphertext)
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
		},
		Payload: resp.Ciphertext,
	}
	return kit.Bytes()
}

func (r *Remote) Decrypt(ctx context.Context, req ports.DecryptRequest) ([]byte, error) {
	if req.Kit == nil || req.Context == nil {
		return nil, fmt.Errorf("message kit and condition context are required")
	}
	h := req.Kit.Header
	if h.Domain != req.Domain || h.RitualID != req.RitualID {
		return nil, fmt.Errorf("%w: %s/%d", ErrDomainMismatch, h.Domain, h.RitualID)
	}
	if err := verifyKit(r.sigs, req.Kit); err != nil {
		return nil, err
	}

	var resp remoteDecryptResponse
	err := r.do(ctx, http.MethodPost, "/decrypt", remoteDecryptRequest{
		Domain:     req.Domain,
		RitualID:   req.RitualID,
		Condition:  h.Condition,
		Ciphertext: req.Kit.Payload,
		Context:    req.Context,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Plaintext) == 0 {
		return nil, fmt.Errorf("sidecar returned an empty plaintext")
	}
	return resp.Plaintext, nil
}

func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("threshold sidecar %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxSidecarResponse))
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return ErrConditionNotSatisfied
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuthRejected, strings.TrimSpace(string(raw)))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("threshold sidecar %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
