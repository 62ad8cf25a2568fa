package service

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"tokengated-music/internal/core/domain"

	"github.com/google/uuid"
)

// BlobStore holds decrypted audio in memory until it is released.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string]*domain.AudioBlob
}

// NewBlobStore creates an empty blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string]*domain.AudioBlob)}
}

// Put registers data decrypted by owner under a fresh id. The content type is sniffed.
func (s *BlobStore) Put(owner string, data []byte) *domain.AudioBlob {
	b := &domain.AudioBlob{
		ID:          uuid.NewString(),
		Owner:       owner,
		Data:        data,
		ContentType: http.DetectContentType(data),
		CreatedAt:   time.Now().UTC(),
	}
	s.mu.Lock()
	s.blobs[b.ID] = b
	s.mu.Unlock()
	return b
}

// Get returns the blob only when owner decrypted it.
func (s *BlobStore) Get(id, owner string) (*domain.AudioBlob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[id]
	if !ok || owner == "" || !strings.EqualFold(b.Owner, owner) {
		return nil, false
	}
	return b, true
}

// Release drops the blob; it reports whether it existed.
func (s *BlobStore) Release(id string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[id]
	delete(s.blobs, id)
	return ok
}

func (s *BlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
