package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"tokengated-music/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

type probeResult struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Every dependency is probed in parallel;
// one failing probe marks the node degraded.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			mu      sync.Mutex
			results = make(map[string]probeResult, len(checkers))
		)

		var g errgroup.Group
		for _, checker := range checkers {
			g.Go(func() error {
				ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
				defer cancel()

				start := time.Now()
				err := checker.Ping(ctx)
				res := probeResult{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
				if err != nil {
					res.Status = "unhealthy"
					res.Error = err.Error()
				}

				mu.Lock()
				results[checker.Name()] = res
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		status, code := "healthy", http.StatusOK
		for _, r := range results {
			if r.Status != "healthy" {
				status, code = "degraded", http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(code, gin.H{
			"status":       status,
			"dependencies": results,
		})
	}
}
