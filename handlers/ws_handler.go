package handlers

import (
	ws "github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	hub "github.com/lessonbooker/server/websocket"
)

// ServeWs upgrades an authenticated connection and keeps it registered
// with the change-notification hub until it closes. The socket is
// one-way: the server pushes refresh events, the client only refetches.
func ServeWs(c *ws.Conn) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		c.Close()
		return
	}
	claims := token.Claims.(jwt.MapClaims)
	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		c.Close()
		return
	}

	client := &hub.Client{UserID: userID, Conn: c}
	hub.Register <- client
	defer func() {
		hub.Unregister <- client
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
