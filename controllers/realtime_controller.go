package controllers

import (
	"net/http"
	"time"

	"github.com/Lviers/NutriGabay/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ProgressSocket streams today's progress to a user's dashboard: every
// consumption event pushes the updated daily row to all subscribers.
func ProgressSocket(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &services.WSClient{UserID: userID, Conn: conn}
	services.Hub.Register(client)

	// Keep connections alive through proxies.
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := client.Write(websocket.PingMessage, nil); err != nil {
				services.Hub.Unregister(client)
				return
			}
		}
	}()

	// Read loop ends on client close/error.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			services.Hub.Unregister(client)
			return
		}
	}
}
