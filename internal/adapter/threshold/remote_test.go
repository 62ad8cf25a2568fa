package threshold

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"
	"tokengated-music/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSidecar reverses plaintext bytes and denies decrypts from deniedAddr.
func fakeSidecar(t *testing.T, deniedAddr string) *httptest.Server {
	t.Helper()
	reverse := func(b []byte) []byte {
		out := make([]byte, len(b))
		for i := range b {
			out[len(b)-1-i] = b[i]
		}
		return out
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /encrypt", func(w http.ResponseWriter, r *http.Request) {
		var req remoteEncryptRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		assert.Equal(t, "ERC20", req.Condition.StandardContractType)
		_ = json.NewEncoder(w).Encode(remoteEncryptResponse{Ciphertext: reverse(req.Plaintext)})
	})
	mux.HandleFunc("POST /decrypt", func(w http.ResponseWriter, r *http.Request) {
		var req remoteDecryptRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			return
		}
		if req.Context.UserAddress == deniedAddr {
			http.Error(w, "condition not met", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(remoteDecryptResponse{Plaintext: reverse(req.Ciphertext)})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRemote_RoundTrip(t *testing.T) {
	artist := newKeySigner(t, artistKey)
	listener := newKeySigner(t, listenerKey)
	r := NewRemote(fakeSidecar(t, artist.addr).URL+"/", service.NewEthSignatureService(), time.Second)
	ctx := context.Background()

	require.NoError(t, r.Initialize(ctx))

	cond, err := domain.BuildCondition(balanceForm("1"))
	require.NoError(t, err)
	raw, err := r.Encrypt(ctx, ports.EncryptRequest{Domain: "lynx", RitualID: 27, Plaintext: []byte("abc"), Condition: cond, Signer: artist})
	require.NoError(t, err)

	kit, err := domain.ParseMessageKit(raw)
	require.NoError(t, err)
	assert.Equal(t, "cba", string(kit.Payload))
	assert.Equal(t, artist.addr, kit.Header.Encryptor)
	assert.NotEmpty(t, kit.Header.EncryptorSignature)

	plain, err := r.Decrypt(ctx, ports.DecryptRequest{
		Domain: "lynx", RitualID: 27, Kit: kit,
		Context: &domain.ConditionContext{UserAddress: listener.addr},
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", string(plain))

	_, err = r.Decrypt(ctx, ports.DecryptRequest{
		Domain: "lynx", RitualID: 27, Kit: kit,
		Context: &domain.ConditionContext{UserAddress: artist.addr},
	})
	assert.ErrorIs(t, err, ErrConditionNotSatisfied)

	_, err = r.Decrypt(ctx, ports.DecryptRequest{
		Domain: "tapir", RitualID: 27, Kit: kit,
		Context: &domain.ConditionContext{UserAddress: listener.addr},
	})
	assert.ErrorIs(t, err, ErrDomainMismatch)
}

func TestRemote_SidecarDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewRemote(srv.URL, service.NewEthSignatureService(), time.Second).Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestRemote_RejectsTamperedKit(t *testing.T) {
	artist := newKeySigner(t, artistKey)
	listener := newKeySigner(t, listenerKey)
	ctx := context.Background()

	var decrypts atomic.Int32
	sidecar := fakeSidecar(t, "")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/decrypt" {
			decrypts.Add(1)
		}
		sidecar.Config.Handler.ServeHTTP(w, req)
	}))
	defer srv.Close()
	r := NewRemote(srv.URL, service.NewEthSignatureService(), time.Second)

	seal := func() *domain.MessageKit {
		cond, err := domain.BuildCondition(balanceForm("100"))
		require.NoError(t, err)
		raw, err := r.Encrypt(ctx, ports.EncryptRequest{Domain: "lynx", RitualID: 27, Plaintext: []byte("gated"), Condition: cond, Signer: artist})
		require.NoError(t, err)
		kit, err := domain.ParseMessageKit(raw)
		require.NoError(t, err)
		return kit
	}

	tests := []struct {
		name   string
		tamper func(*domain.MessageKit)
	}{
		{"lowered threshold", func(k *domain.MessageKit) { k.Header.Condition.ReturnValueTest.Value = "0" }},
		{"swapped contract", func(k *domain.MessageKit) { k.Header.Condition.ContractAddress = listener.addr }},
		{"altered payload", func(k *domain.MessageKit) { k.Payload[0] ^= 0xFF }},
		{"claimed by another encryptor", func(k *domain.MessageKit) { k.Header.Encryptor = listener.addr }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kit := seal()
			tt.tamper(kit)
			_, err := r.Decrypt(ctx, ports.DecryptRequest{
				Domain: "lynx", RitualID: 27, Kit: kit,
				Context: &domain.ConditionContext{UserAddress: listener.addr},
			})
			assert.ErrorIs(t, err, domain.ErrMalformedKit)
		})
	}
	assert.Zero(t, decrypts.Load(), "tampered kits never reach the sidecar")
}

func TestRemote_EmptyPlaintextIsAnError(t *testing.T) {
	artist := newKeySigner(t, artistKey)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/encrypt":
			_ = json.NewEncoder(w).Encode(remoteEncryptResponse{Ciphertext: []byte("sealed")})
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()
	r := NewRemote(srv.URL, service.NewEthSignatureService(), time.Second)

	cond, err := domain.BuildCondition(balanceForm("1"))
	require.NoError(t, err)
	raw, err := r.Encrypt(ctx, ports.EncryptRequest{Domain: "lynx", RitualID: 27, Plaintext: []byte("x"), Condition: cond, Signer: artist})
	require.NoError(t, err)
	kit, err := domain.ParseMessageKit(raw)
	require.NoError(t, err)

	plain, err := r.Decrypt(ctx, ports.DecryptRequest{
		Domain: "lynx", RitualID: 27, Kit: kit,
		Context: &domain.ConditionContext{UserAddress: artist.addr},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty plaintext")
	assert.Nil(t, plain)
}
