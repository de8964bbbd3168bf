package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const eventsChannel = "realtime:events"

func NewRedis(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

// Notifier pushes an event to a user's room. Delivery is best-effort; the
// write path never depends on it.
type Notifier interface {
	NotifyUser(ctx context.Context, userID uuid.UUID, event interface{})
}

type envelope struct {
	UserID  uuid.UUID       `json:"user_id"`
	Payload json.RawMessage `json:"payload"`
}

// Bridge fans realtime events out through Redis pub/sub so they reach the
// addressed room regardless of which instance holds the socket.
type Bridge struct {
	rdb *redis.Client
	hub *Hub
	log zerolog.Logger
}

func NewBridge(rdb *redis.Client, hub *Hub, log zerolog.Logger) *Bridge {
	return &Bridge{rdb: rdb, hub: hub, log: log}
}

func (b *Bridge) NotifyUser(ctx context.Context, userID uuid.UUID, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		b.log.Error().Err(err).Msg("marshal realtime event")
		return
	}
	env, err := json.Marshal(envelope{UserID: userID, Payload: payload})
	if err != nil {
		b.log.Error().Err(err).Msg("marshal realtime envelope")
		return
	}
	if err := b.rdb.Publish(ctx, eventsChannel, env).Err(); err != nil {
		b.log.Error().Err(err).Msg("publish realtime event")
	}
}

// Run subscribes to the events channel and re-delivers to local rooms.
// Blocks until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, eventsChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				b.log.Error().Err(err).Msg("decode realtime envelope")
				continue
			}
			b.hub.SendToUser(env.UserID, json.RawMessage(env.Payload))
		}
	}
}
