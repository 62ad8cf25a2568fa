package pinning

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

var ErrNotPinned = errors.New("content not pinned")

// Memory is an in-process content-addressed store. It pins, fetches and
// serves content under /ipfs/<cid>, standing in for a pinning service plus
// gateway on development networks.
type Memory struct {
	mu      sync.RWMutex
	content map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{content: make(map[string][]byte)}
}

// Sum returns the CIDv1 (raw, sha2-256) of data.
func Sum(data []byte) (string, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, mh).String(), nil
}

func (m *Memory) Pin(ctx context.Context, _ string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c, err := Sum(data)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.content[c] = append([]byte(nil), data...)
	m.mu.Unlock()
	return c, nil
}

// Unpin is idempotent.
func (m *Memory) Unpin(ctx context.Context, c string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.content, c)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Fetch(ctx context.Context, c string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	data, ok := m.content[c]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotPinned
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.content)
}

// ServeHTTP serves GET /ipfs/<cid>.
func (m *Memory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, ok := strings.CutPrefix(r.URL.Path, "/ipfs/")
	if !ok || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	data, err := m.Fetch(r.Context(), c)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	_, _ = w.Write(data)
}
