package realtime

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeConn pumps hub events to a websocket connection and keeps it alive
// until the peer goes away. The connection only receives events addressed
// to its own user room.
func ServeConn(hub *Hub, ws *websocket.Conn, userID uuid.UUID) {
	conn := &Conn{
		ID:     uuid.New().String(),
		UserID: userID,
		Send:   make(chan []byte, 256),
	}

	hub.Register(conn)
	defer hub.Unregister(conn)

	go func() {
		for msg := range conn.Send {
			if err := ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()

	// Drain reads; the socket is receive-only, state changes go over HTTP.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}
