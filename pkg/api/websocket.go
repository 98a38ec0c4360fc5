package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// workflowStream handles GET /ws/workflow/:id: upgrades to WebSocket and
// streams the workflow's events (catch-up first, then live) until the
// workflow reaches a terminal state or the client disconnects.
func (s *Server) workflowStream(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Same-origin is always accepted; the config may allow more.
		OriginPatterns: s.allowedWSOrigins,
	})
	if err != nil {
		// Accept already wrote the HTTP error response.
		return
	}

	// Blocks until the connection closes.
	s.connManager.HandleConnection(c.Request.Context(), conn, c.Param("id"))
}
