package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Conn is one connected websocket. A user joins the room keyed by their own
// id; several connections of the same user all receive the room's events.
type Conn struct {
	ID     string
	UserID uuid.UUID
	Send   chan []byte
}

type Hub struct {
	conns      map[string]*Conn
	register   chan *Conn
	unregister chan *Conn
	mu         sync.RWMutex
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns:      make(map[string]*Conn),
		register:   make(chan *Conn),
		unregister: make(chan *Conn),
		log:        log,
	}
}

func (h *Hub) Register(conn *Conn) {
	h.register <- conn
}

func (h *Hub) Unregister(conn *Conn) {
	h.unregister <- conn
}

// SendToUser delivers an event to every connection in the user's room.
// Slow consumers are skipped, never blocked on.
func (h *Hub) SendToUser(userID uuid.UUID, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		h.log.Error().Err(err).Msg("marshal realtime event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.conns {
		if conn.UserID == userID {
			select {
			case conn.Send <- payload:
			default:
			}
		}
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn.ID] = conn
			h.mu.Unlock()
			h.log.Debug().Str("conn", conn.ID).Str("user", conn.UserID.String()).Msg("ws connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.conns[conn.ID]; ok {
				delete(h.conns, conn.ID)
				close(old.Send)
				h.log.Debug().Str("conn", conn.ID).Msg("ws disconnected")
			}
			h.mu.Unlock()
		}
	}
}
