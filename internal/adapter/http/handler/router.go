package handler

import (
	"tokengated-music/internal/adapter/http/middleware"
	"tokengated-music/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	PublishSvc     ports.PublishService
	LibrarySvc     ports.LibraryService
	PlaybackSvc    ports.PlaybackService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore   // nil = rate limiting disabled
	Idempotency    ports.IdempotencyStore // nil = Idempotency-Key ignored
	AuditSvc       ports.AuditService     // nil = control audit disabled
	HealthCheckers []ports.HealthChecker
	OpenAPISpec    []byte // served under /swagger when set
	AllowedOrigin  string // browser origin admitted on the events websocket
	MaxBodyBytes   int64
	MaxUploadBytes int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}
	maxUpload := deps.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 100 << 20
	}
	jsonBody := middleware.MaxBodySize(maxBody)

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	mountSwagger(r, deps.OpenAPISpec)

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1")

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := v1.Group("/wallet", jsonBody)
	{
		wallet.POST("/connect", rl("wallet_connect"), walletHandler.Connect)
		wallet.GET("/session", walletHandler.Session)
		wallet.POST("/disconnect", jwtAuth, walletHandler.Disconnect)
	}

	v1.POST("/conditions/validate", jsonBody, ValidateCondition)

	trackHandler := NewTrackHandler(deps.PublishSvc, deps.LibrarySvc, deps.Idempotency, deps.Logger)
	tracks := v1.Group("/tracks")
	{
		tracks.POST("", jwtAuth, rl("publish"), middleware.MaxBodySize(maxUpload), trackHandler.Publish)
		tracks.GET("", trackHandler.List)
		tracks.GET("/:id", trackHandler.Get)
	}

	playerHandler := NewPlayerHandler(deps.PlaybackSvc)
	player := v1.Group("/player")
	{
		player.GET("", jwtAuth, playerHandler.State)
		player.GET("/blobs/:id", jwtAuth, playerHandler.Blob)
		player.GET("/events", jwtAuth, Events(deps.PlaybackSvc, deps.AllowedOrigin, deps.Logger))

		controls := player.Group("", jwtAuth, jsonBody)
		controls.POST("/play", rl("play"), playerHandler.Play)
		controls.POST("/toggle", rl("player"), playerHandler.Toggle)
		controls.POST("/pause", rl("player"), playerHandler.Pause)
		controls.POST("/resume", rl("player"), playerHandler.Resume)
		controls.POST("/stop", rl("player"), playerHandler.Stop)
		controls.POST("/seek", rl("player"), playerHandler.Seek)
		controls.POST("/volume", rl("player"), playerHandler.Volume)
		controls.POST("/mute", rl("player"), playerHandler.Mute)
	}

	return r
}
