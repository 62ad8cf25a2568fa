// Package pinning implements ports.PinningService.
package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/ipfs/go-cid"
)

const DefaultPinataURL = "https://api.pinata.cloud"

// Pinata pins content through the Pinata pinning API.
type Pinata struct {
	baseURL string
	jwt     string
	http    *http.Client
}

func NewPinata(baseURL, jwt string, timeout time.Duration) *Pinata {
	if baseURL == "" {
		baseURL = DefaultPinataURL
	}
	return &Pinata{
		baseURL: strings.TrimRight(baseURL, "/"),
		jwt:     jwt,
		http:    &http.Client{Timeout: timeout},
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
	PinSize  int64  `json:"PinSize"`
}

// Pin uploads data as a single file and returns its CID.
func (p *Pinata) Pin(ctx context.Context, name string, data []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(data); err != nil {
		return "", err
	}
	meta, _ := json.Marshal(map[string]string{"name": name})
	if err := mw.WriteField("pinataMetadata", string(meta)); err != nil {
		return "", err
	}
	if err := mw.WriteField("pinataOptions", `{"cidVersion":1}`); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/pinning/pinFileToIPFS", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	raw, err := p.send(req)
	if err != nil {
		return "", fmt.Errorf("pin %s: %w", name, err)
	}
	var resp pinResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("pin %s: decode response: %w", name, err)
	}
	if _, err := cid.Decode(resp.IpfsHash); err != nil {
		return "", fmt.Errorf("pin %s: invalid cid %q: %w", name, resp.IpfsHash, err)
	}
	return resp.IpfsHash, nil
}

func (p *Pinata) Unpin(ctx context.Context, c string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.baseURL+"/pinning/unpin/"+c, nil)
	if err != nil {
		return err
	}
	if _, err := p.send(req); err != nil {
		return fmt.Errorf("unpin %s: %w", c, err)
	}
	return nil
}

func (p *Pinata) send(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+p.jwt)
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}
