package pinning

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PinFetchUnpin(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	c, err := m.Pin(ctx, "audio", []byte("ciphertext"))
	require.NoError(t, err)
	want, err := Sum([]byte("ciphertext"))
	require.NoError(t, err)
	assert.Equal(t, want, c)
	assert.Equal(t, 1, m.Len())

	again, err := m.Pin(ctx, "dup", []byte("ciphertext"))
	require.NoError(t, err)
	assert.Equal(t, c, again, "same content, same cid")
	assert.Equal(t, 1, m.Len())

	data, err := m.Fetch(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext", string(data))

	require.NoError(t, m.Unpin(ctx, c))
	require.NoError(t, m.Unpin(ctx, c))
	_, err = m.Fetch(ctx, c)
	assert.ErrorIs(t, err, ErrNotPinned)
}

func TestMemory_ServeHTTP(t *testing.T) {
	m := NewMemory()
	c, err := m.Pin(context.Background(), "cover", []byte("png"))
	require.NoError(t, err)

	srv := httptest.NewServer(m)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ipfs/" + c)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png", string(body))

	resp, err = http.Get(srv.URL + "/ipfs/bafkunknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPinata_Pin(t *testing.T) {
	want, err := Sum([]byte("track bytes"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pinning/pinFileToIPFS", r.URL.Path)
		assert.Equal(t, "Bearer secret-jwt", r.Header.Get("Authorization"))
		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		data, _ := io.ReadAll(f)
		assert.Equal(t, "track bytes", string(data))
		assert.Equal(t, "audio.bin", hdr.Filename)
		assert.JSONEq(t, `{"name":"audio.bin"}`, r.FormValue("pinataMetadata"))
		_ = json.NewEncoder(w).Encode(map[string]any{"IpfsHash": want, "PinSize": len(data)})
	}))
	defer srv.Close()

	c, err := NewPinata(srv.URL, "secret-jwt", time.Second).Pin(context.Background(), "audio.bin", []byte("track bytes"))
	require.NoError(t, err)
	assert.Equal(t, want, c)
}

func TestPinata_PinErrors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "invalid jwt", http.StatusUnauthorized)
		}))
		defer srv.Close()
		_, err := NewPinata(srv.URL, "bad", time.Second).Pin(context.Background(), "a", []byte("x"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("garbage cid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"IpfsHash":"not-a-cid"}`))
		}))
		defer srv.Close()
		_, err := NewPinata(srv.URL, "jwt", time.Second).Pin(context.Background(), "a", []byte("x"))
		assert.ErrorContains(t, err, "invalid cid")
	})
}

func TestPinata_Unpin(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	require.NoError(t, NewPinata(srv.URL, "jwt", time.Second).Unpin(context.Background(), "bafkabc"))
	assert.Equal(t, "/pinning/unpin/bafkabc", gotPath)
	assert.Equal(t, http.MethodDelete, gotMethod)
}
