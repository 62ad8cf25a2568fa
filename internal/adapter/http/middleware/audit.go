package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"tokengated-music/internal/core/domain"
	"tokengated-music/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful player control writes. Connect, publish
// and play are audited by their services, which know the resource ids.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapPathToAction(c.FullPath())
		if action == "" {
			return
		}

		var addr *string
		if a := Address(c); a != "" {
			addr = &a
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Address:      addr,
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/v1/player/toggle", "/api/v1/player/pause", "/api/v1/player/resume",
		"/api/v1/player/stop", "/api/v1/player/seek", "/api/v1/player/volume", "/api/v1/player/mute":
		return domain.AuditActionPlayerControl, "player"
	}
	return "", ""
}
