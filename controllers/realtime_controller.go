package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// MarketFeed upgrades the request and keeps the client subscribed to
// listing/reservation broadcasts until it disconnects.
func MarketFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &services.WSClient{
		UserID: c.GetUint("userID"),
		Role:   c.GetString("role"),
		Conn:   conn,
	}
	d.Hub.Register(client)

	// Reads are discarded; the socket exists to push events out. EOF or a
	// protocol error tears the client down.
	go func() {
		defer d.Hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
