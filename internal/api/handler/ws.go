package handler

import (
	"net/http"

	"givego/backend/internal/chathub"
	"givego/backend/internal/config"
	"givego/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the HTTP connection and attaches the client to the
// relay. The token is validated here once; room-level standing is re-checked
// by the relay on every join and send.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	userID, err := h.userIDFromHeader(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		Relay:  h.Relay,
		UserID: userID,
		Conn:   conn,
		Send:   make(chan models.ChatMessage, config.SendBufferSize),
	}

	h.Relay.RegisterCh <- client
	client.Run()
}
