package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"tokengated-music/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// originChecker admits requests without an Origin header (native clients)
// and browser pages served from allowed. An empty allowed falls back to
// same-host only.
func originChecker(allowed string) func(*http.Request) bool {
	var want *url.URL
	if u, err := url.Parse(allowed); err == nil && u.Host != "" {
		want = u
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		if want == nil {
			return strings.EqualFold(u.Host, r.Host)
		}
		return strings.EqualFold(u.Scheme, want.Scheme) && strings.EqualFold(u.Host, want.Host)
	}
}

// Events handles GET /api/v1/player/events. The connection receives the
// current snapshot, then every state change as a JSON message.
func Events(playbackSvc ports.PlaybackService, allowedOrigin string, log zerolog.Logger) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigin),
	}
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn().Err(err).Str("remote_addr", c.Request.RemoteAddr).Msg("websocket upgrade failed")
			return
		}
		defer conn.Close()

		updates, cancel := playbackSvc.Subscribe()
		defer cancel()

		closed := make(chan struct{})
		go readPump(conn, closed, log)

		ping := time.NewTicker(pingPeriod)
		defer ping.Stop()

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(playbackSvc.NowPlaying()); err != nil {
			return
		}

		for {
			select {
			case <-closed:
				return
			case state, ok := <-updates:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(state); err != nil {
					log.Debug().Err(err).Msg("websocket write failed")
					return
				}
			case <-ping.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}

// readPump discards client messages and signals when the peer goes away.
func readPump(conn *websocket.Conn, closed chan<- struct{}, log zerolog.Logger) {
	defer close(closed)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("websocket error")
			}
			return
		}
	}
}
