package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/atharvakonge/portfolio-tracker/internal/models"
)

const writeWait = 10 * time.Second

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins (for development and demo)
	},
}

// PublishQuote handles POST /api/market/quotes. The quote is validated
// and relayed to every connected /ws/quotes client.
func (h *Handler) PublishQuote(c *gin.Context) {
	var req models.MarketQuote
	if !bindJSON(c, &req) {
		return
	}

	delivered, err := h.hub.Publish(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"symbol":    req.Symbol,
		"delivered": delivered,
	})
}

// StreamQuotes handles GET /ws/quotes
func (h *Handler) StreamQuotes(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	quotes, cancel := h.hub.Subscribe()
	defer cancel()

	h.log.Info().Str("remote", c.Request.RemoteAddr).Msg("quote stream client connected")

	// Clients only listen; reading is how a close gets noticed
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			h.log.Info().Str("remote", c.Request.RemoteAddr).Msg("quote stream client disconnected")
			return

		case quote, ok := <-quotes:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(quote); err != nil {
				h.log.Warn().Err(err).Msg("websocket write failed")
				return
			}
		}
	}
}
