package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tokengated-music/config"
	httpHandler "tokengated-music/internal/adapter/http/handler"
	pgStorage "tokengated-music/internal/adapter/storage/postgres"
	redisStorage "tokengated-music/internal/adapter/storage/redis"
	"tokengated-music/internal/core/ports"
	"tokengated-music/internal/service"
	"tokengated-music/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("TGM_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config:\n%v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("threshold", cfg.Threshold.Mode).
		Str("pinning", cfg.Pinning.Mode).
		Str("wallet", cfg.Wallet.Mode).
		Msg("Starting token-gated music node")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate schema")
	}

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Repositories and caches
	trackRepo := pgStorage.NewTrackRepo(pool, cfg.Metadata.ModelID, cfg.Metadata.ContextID)
	orphanRepo := pgStorage.NewOrphanRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	sessionCache := redisStorage.NewSessionCache(rdb)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	nonceStore := redisStorage.NewNonceStore(rdb)

	out, err := buildAdapters(cfg, nonceStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build adapters")
	}

	signIn := service.SignInConfig{Domain: cfg.Wallet.SignInDomain, URI: cfg.Wallet.SignInURI}

	// Core services
	auditSvc := service.NewAuditService(auditRepo, log)
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	walletSvc := service.NewWalletService(
		out.Wallet,
		service.NewEthSignatureService(),
		tokenSvc,
		sessionCache,
		auditSvc,
		signIn,
		cfg.Wallet.SessionTTL,
		log,
	)
	orphanSvc := service.NewOrphanService(orphanRepo, out.Pins, cfg.Reaper.BatchSize, log)
	runtime := service.NewThresholdRuntime(out.Threshold, cfg.Threshold.Domain, cfg.Threshold.RitualID)

	publishSvc := service.NewPublishService(
		runtime,
		service.NewRelay(out.Pins, orphanSvc, log),
		trackRepo,
		walletSvc,
		auditSvc,
		log,
	)
	librarySvc := service.NewLibraryService(trackRepo)
	playbackSvc := service.NewPlaybackService(
		trackRepo,
		out.Fetcher,
		runtime,
		walletSvc,
		auditSvc,
		service.NewPlayer(cfg.Player.MuteRestoresPrevious, nil),
		service.NewBlobStore(),
		signIn,
		log,
	)

	if cfg.Reaper.Enabled {
		go orphanSvc.Run(ctx, cfg.Reaper.Interval)
	}

	openAPISpec, err := os.ReadFile("docs/api/openapi.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("OpenAPI document not found, /swagger disabled")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		PublishSvc:     publishSvc,
		LibrarySvc:     librarySvc,
		PlaybackSvc:    playbackSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		Idempotency:    idempotencyCache,
		AuditSvc:       auditSvc,
		HealthCheckers: append([]ports.HealthChecker{
			pgStorage.HealthProbe(pool),
			redisStorage.HealthProbe(rdb),
		}, out.probes()...),
		OpenAPISpec:    openAPISpec,
		AllowedOrigin:  cfg.Wallet.SignInURI,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	auditSvc.Flush()

	log.Info().Msg("Server exited")
}
