package main

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokengated-music/config"
	httpHandler "tokengated-music/internal/adapter/http/handler"
	"tokengated-music/internal/adapter/pinning"
	redisStorage "tokengated-music/internal/adapter/storage/redis"
	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/service"
	"tokengated-music/pkg/ethsig"
)

const (
	testToken    = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	devAddress   = "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf"
	sepoliaChain = "11155111"
)

// testNode runs the full node in dev mode: in-process wallet, memory pinning,
// the local threshold domain, miniredis, and a fake chain answering balanceOf.
type testNode struct {
	server  *httptest.Server
	pins    *pinning.Memory
	tracks  *inMemoryTrackRepo
	audit   *inMemoryAuditRepo
	auditFn func()
	balance atomic.Int64
}

func newTestNode(t *testing.T) *testNode {
	t.Helper()
	gin.SetMode(gin.TestMode)
	n := &testNode{tracks: newInMemoryTrackRepo(), audit: &inMemoryAuditRepo{}}

	chainSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID uint64 `json:"id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		word := make([]byte, 32)
		big.NewInt(n.balance.Load()).FillBytes(word)
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": ethsig.Hex(word)})
	}))
	t.Cleanup(chainSrv.Close)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := devConfig()
	cfg.Chains = map[string]config.ChainConfig{sepoliaChain: {RPCURL: chainSrv.URL}}

	log := zerolog.Nop()
	out, err := buildAdapters(cfg, redisStorage.NewNonceStore(rdb), log)
	require.NoError(t, err)
	n.pins = out.Pins.(*pinning.Memory)

	signIn := service.SignInConfig{Domain: "localhost", URI: "http://localhost:8080"}
	auditSvc := service.NewAuditService(n.audit, log)
	n.auditFn = auditSvc.Flush
	tokenSvc := service.NewJWTTokenService("e2e-secret-key-of-sufficient-size", time.Hour, "tokengated-music")
	walletSvc := service.NewWalletService(out.Wallet, service.NewEthSignatureService(), tokenSvc,
		redisStorage.NewSessionCache(rdb), auditSvc, signIn, time.Hour, log)
	orphanSvc := service.NewOrphanService(newInMemoryOrphanRepo(), out.Pins, 10, log)
	runtime := service.NewThresholdRuntime(out.Threshold, "lynx", 27)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:  walletSvc,
		PublishSvc: service.NewPublishService(runtime, service.NewRelay(out.Pins, orphanSvc, log), n.tracks, walletSvc, auditSvc, log),
		LibrarySvc: service.NewLibraryService(n.tracks),
		PlaybackSvc: service.NewPlaybackService(n.tracks, out.Fetcher, runtime, walletSvc, auditSvc,
			service.NewPlayer(false, nil), service.NewBlobStore(), signIn, log),
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		Idempotency:    redisStorage.NewIdempotencyCache(rdb),
		AuditSvc:       auditSvc,
		Logger:         log,
	})
	n.server = httptest.NewServer(router)
	t.Cleanup(n.server.Close)
	return n
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

func (n *testNode) do(t *testing.T, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (n *testNode) postJSON(t *testing.T, path, token string, body any) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, n.server.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return n.do(t, req)
}

func (n *testNode) connect(t *testing.T) string {
	t.Helper()
	status, env := n.postJSON(t, "/api/v1/wallet/connect", "", map[string]any{})
	require.Equal(t, http.StatusOK, status, env.ErrorCode)
	var out struct {
		Address string `json:"address"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, devAddress, out.Address)
	return out.Token
}

func (n *testNode) publish(t *testing.T, token string, audio []byte, minBalance string) string {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"title":            "Night Drive",
		"artist":           "Lumen",
		"duration_seconds": "184",
		"kind":             "FUNGIBLE_BALANCE",
		"chain":            "sepolia",
		"contract_address": testToken,
		"min_balance":      minBalance,
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("audio", "night-drive.mp3")
	require.NoError(t, err)
	_, _ = fw.Write(audio)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, n.server.URL+"/api/v1/tracks", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	status, env := n.do(t, req)
	require.Equal(t, http.StatusCreated, status, env.ErrorCode)
	var track struct {
		ID       string `json:"id"`
		Owner    string `json:"owner"`
		AudioCID string `json:"audio_cid"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &track))
	assert.Equal(t, devAddress, track.Owner)
	assert.NotEmpty(t, track.AudioCID)
	return track.ID
}

// get issues a GET and returns the status and raw body.
func (n *testNode) get(t *testing.T, path, token string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, n.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestE2E_PublishThenPlay(t *testing.T) {
	n := newTestNode(t)
	audio := bytes.Repeat([]byte("ID3 not really an mp3 "), 64)

	token := n.connect(t)
	trackID := n.publish(t, token, audio, "10")
	require.Equal(t, 1, n.pins.Len())

	// pinned content is the sealed kit, never the plaintext
	stored := n.tracks.tracks
	require.Len(t, stored, 1)
	for _, tr := range stored {
		kit, err := n.pins.Fetch(t.Context(), tr.AudioCID)
		require.NoError(t, err)
		assert.NotContains(t, string(kit), "not really an mp3")
		assert.Equal(t, int64(11155111), tr.Condition.Chain)
	}

	n.balance.Store(25)
	status, env := n.postJSON(t, "/api/v1/player/play", token, map[string]string{"track_id": trackID})
	require.Equal(t, http.StatusOK, status, env.ErrorCode)

	var state domain.NowPlaying
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, domain.PlaybackPlaying, state.Status)
	assert.Equal(t, "Night Drive", state.Title)
	require.NotEmpty(t, state.BlobID)

	code, got := n.get(t, "/api/v1/player/blobs/"+state.BlobID, token)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, audio, got)

	status, env = n.postJSON(t, "/api/v1/player/pause", token, map[string]any{})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.Equal(t, domain.PlaybackPaused, state.Status)

	n.auditFn()
	assert.Subset(t, n.audit.actions(), []domain.AuditAction{
		domain.AuditActionConnect,
		domain.AuditActionPublish,
		domain.AuditActionPlay,
	})
	// control audits are written after the response
	assert.Eventually(t, func() bool {
		n.auditFn()
		return slices.Contains(n.audit.actions(), domain.AuditActionPlayerControl)
	}, time.Second, 10*time.Millisecond)
}

func TestE2E_PlayDeniedBelowBalance(t *testing.T) {
	n := newTestNode(t)
	token := n.connect(t)
	trackID := n.publish(t, token, []byte("short clip"), "10")

	n.balance.Store(9)
	status, env := n.postJSON(t, "/api/v1/player/play", token, map[string]string{"track_id": trackID})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "ACC_001", env.ErrorCode)

	n.auditFn()
	assert.Contains(t, n.audit.actions(), domain.AuditActionAccessDenied)

	// nothing was loaded, so controls have nothing to act on
	status, env = n.postJSON(t, "/api/v1/player/pause", token, map[string]any{})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "PLAY_001", env.ErrorCode)
}

func TestE2E_PlayAtExactMinimumBalance(t *testing.T) {
	n := newTestNode(t)
	audio := make([]byte, 1024)
	for i := range audio {
		audio[i] = byte(i)
	}

	token := n.connect(t)
	trackID := n.publish(t, token, audio, "1")

	n.balance.Store(1)
	status, env := n.postJSON(t, "/api/v1/player/play", token, map[string]string{"track_id": trackID})
	require.Equal(t, http.StatusOK, status, env.ErrorCode)

	var state domain.NowPlaying
	require.NoError(t, json.Unmarshal(env.Data, &state))
	code, got := n.get(t, "/api/v1/player/blobs/"+state.BlobID, token)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, audio, got)
}

func TestE2E_DecryptedAudioNeedsSession(t *testing.T) {
	n := newTestNode(t)
	token := n.connect(t)
	trackID := n.publish(t, token, []byte("secret stems"), "1")

	n.balance.Store(5)
	status, env := n.postJSON(t, "/api/v1/player/play", token, map[string]string{"track_id": trackID})
	require.Equal(t, http.StatusOK, status, env.ErrorCode)
	var state domain.NowPlaying
	require.NoError(t, json.Unmarshal(env.Data, &state))
	require.NotEmpty(t, state.BlobID)

	code, _ := n.get(t, "/api/v1/player", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := n.get(t, "/api/v1/player/blobs/"+state.BlobID, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.NotContains(t, string(body), "secret stems")

	code, _ = n.get(t, "/api/v1/player", token)
	assert.Equal(t, http.StatusOK, code)
}

func TestE2E_PublishRequiresWallet(t *testing.T) {
	n := newTestNode(t)

	req, err := http.NewRequest(http.MethodPost, n.server.URL+"/api/v1/tracks", http.NoBody)
	require.NoError(t, err)
	status, env := n.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_003", env.ErrorCode)
	assert.Zero(t, n.pins.Len())
}
