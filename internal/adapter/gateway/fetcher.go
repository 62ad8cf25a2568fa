// Package gateway reads pinned content back through an IPFS HTTP gateway.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
)

var ErrTooLarge = errors.New("content exceeds size limit")

// Fetcher implements ports.ContentFetcher with GET <base>/ipfs/<cid>.
// There is no retry.
type Fetcher struct {
	baseURL  string
	maxBytes int64
	http     *http.Client
}

func NewFetcher(baseURL string, timeout time.Duration, maxBytes int64) *Fetcher {
	return &Fetcher{
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
		http:     &http.Client{Timeout: timeout},
	}
}

func (f *Fetcher) Fetch(ctx context.Context, c string) ([]byte, error) {
	if _, err := cid.Decode(c); err != nil {
		return nil, fmt.Errorf("invalid cid %q: %w", c, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/ipfs/"+c, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gateway: status %d for %s", resp.StatusCode, c)
	}

	body := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("gateway: read %s: %w", c, err)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}
