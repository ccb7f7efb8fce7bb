package hub

//go:generate go run go.uber.org/mock/mockgen -source=./hub.go -destination=./mocks/hub_mock.go -package=mocks

import (
	"concierge/config"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	UserChannelPrefix = "chat:user:"
	StaffChannel      = "chat:staff"

	defaultSendBufferSize = 256
)

// Broadcaster pushes chat events to every instance's connected clients.
type Broadcaster interface {
	PublishUser(ctx context.Context, userID string, event any) error
	PublishStaff(ctx context.Context, event any) error
}

// Connection is one websocket client. Staff connections follow the staff channel,
// guest connections follow their own thread.
type Connection struct {
	UserID string
	Staff  bool
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub keeps the local websocket connections and relays Redis Pub/Sub traffic to them.
// Without a Redis client it delivers locally only.
type Hub struct {
	users map[string]map[*Connection]struct{}
	staff map[*Connection]struct{}

	redis  *redis.Client
	pubsub *redis.PubSub
	cfg    *config.Config

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc
}

// New builds a hub that also follows the Redis channels, for processes that serve
// websocket clients.
func New(redisClient *redis.Client, cfg *config.Config) *Hub {
	h := newHub(redisClient, cfg)

	if redisClient != nil {
		h.pubsub = redisClient.PSubscribe(h.ctx, UserChannelPrefix+"*", StaffChannel)
	}

	return h
}

// NewPublisher builds a hub that only publishes. It never subscribes, so a process
// without websocket clients does not hold a subscriber nobody reads from.
func NewPublisher(redisClient *redis.Client, cfg *config.Config) *Hub {
	return newHub(redisClient, cfg)
}

func newHub(redisClient *redis.Client, cfg *config.Config) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		users:      make(map[string]map[*Connection]struct{}),
		staff:      make(map[*Connection]struct{}),
		redis:      redisClient,
		cfg:        cfg,
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// NewConnection builds a connection with the configured send buffer.
func (h *Hub) NewConnection(userID string, staff bool, conn *websocket.Conn) *Connection {
	size := defaultSendBufferSize
	if h.cfg != nil && h.cfg.Chat.SendBufferSize > 0 {
		size = h.cfg.Chat.SendBufferSize
	}

	return &Connection{
		UserID: userID,
		Staff:  staff,
		Conn:   conn,
		Send:   make(chan []byte, size),
	}
}

// Run serves registrations until Shutdown. Call it in its own goroutine.
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			if conn.Staff {
				h.staff[conn] = struct{}{}
			} else {
				if h.users[conn.UserID] == nil {
					h.users[conn.UserID] = make(map[*Connection]struct{})
				}
				h.users[conn.UserID][conn] = struct{}{}
			}
			h.mu.Unlock()

			log.Debug().Str("user_id", conn.UserID).Bool("staff", conn.Staff).Msg("chat client connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			h.remove(conn)
			h.mu.Unlock()

			log.Debug().Str("user_id", conn.UserID).Bool("staff", conn.Staff).Msg("chat client disconnected")
		}
	}
}

// remove drops conn and closes its Send channel once. Callers hold mu.
func (h *Hub) remove(conn *Connection) {
	if conn.Staff {
		if _, ok := h.staff[conn]; ok {
			delete(h.staff, conn)
			close(conn.Send)
		}

		return
	}

	conns, ok := h.users[conn.UserID]
	if !ok {
		return
	}

	if _, exists := conns[conn]; exists {
		delete(conns, conn)
		close(conn.Send)
	}

	if len(conns) == 0 {
		delete(h.users, conn.UserID)
	}
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}

			h.deliver(msg.Channel, []byte(msg.Payload))
		}
	}
}

func (h *Hub) deliver(channel string, data []byte) {
	switch {
	case channel == StaffChannel:
		h.broadcastStaff(data)
	case strings.HasPrefix(channel, UserChannelPrefix):
		h.broadcastUser(strings.TrimPrefix(channel, UserChannelPrefix), data)
	}
}

func (h *Hub) broadcastUser(userID string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.users[userID] {
		push(conn, data)
	}
}

func (h *Hub) broadcastStaff(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.staff {
		push(conn, data)
	}
}

// push never blocks; a slow client loses the frame.
func push(conn *Connection, data []byte) {
	select {
	case conn.Send <- data:
	default:
		log.Warn().Str("user_id", conn.UserID).Msg("chat send buffer full, dropping event")
	}
}

func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.ctx.Done():
	}
}

func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.ctx.Done():
	}
}

// PublishUser sends event to every connection of the guest thread on any instance.
func (h *Hub) PublishUser(ctx context.Context, userID string, event any) error {
	return h.publish(ctx, UserChannelPrefix+userID, event)
}

// PublishStaff sends event to every staff connection on any instance.
func (h *Hub) PublishStaff(ctx context.Context, event any) error {
	return h.publish(ctx, StaffChannel, event)
}

func (h *Hub) publish(ctx context.Context, channel string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal chat event: %w", err)
	}

	if h.redis == nil {
		h.deliver(channel, data)

		return nil
	}

	if err = h.redis.Publish(ctx, channel, data).Err(); err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("redis publish failed, delivering locally")

		h.deliver(channel, data)

		return fmt.Errorf("failed to publish chat event: %w", err)
	}

	return nil
}

// ConnectionCount reports the local connections.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := len(h.staff)
	for _, conns := range h.users {
		total += len(conns)
	}

	return total
}

func (h *Hub) Shutdown() {
	h.cancel()

	if h.pubsub != nil {
		if err := h.pubsub.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close chat subscription")
		}
	}
}
