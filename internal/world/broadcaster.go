package world

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pingPeriod = 30 * time.Second
)

// Broadcaster fans board updates out to every websocket client.
type Broadcaster struct {
	world      *World
	clients    map[*websocket.Conn]string // conn -> client id
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	outbox     chan []byte
	mu         sync.RWMutex
	WriteMu    map[*websocket.Conn]*sync.Mutex // Per-conn write locks
}

func NewBroadcaster(w *World) *Broadcaster {
	return &Broadcaster{
		world:      w,
		clients:    make(map[*websocket.Conn]string),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		outbox:     make(chan []byte, 64), // Buffered so strikes never wait on slow clients
		WriteMu:    make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Message is the envelope for everything pushed to clients.
type Message struct {
	Action string        `json:"action"`
	Board  *Snapshot     `json:"board,omitempty"`
	Strike *StrikeReport `json:"strike,omitempty"`
	Tile   *TileInfo     `json:"tile,omitempty"`
	Error  string        `json:"error,omitempty"`
}

func (b *Broadcaster) Run() {
	pingTicker := time.NewTicker(pingPeriod)
	defer pingTicker.Stop()

	for {
		select {
		case conn := <-b.register:
			id := uuid.NewString()
			lock := &sync.Mutex{}
			b.mu.Lock()
			b.clients[conn] = id
			b.WriteMu[conn] = lock
			b.mu.Unlock()
			log.Printf("Client %s connected (%d total)", id, b.ClientCount())

			// Send initial board
			snap := b.world.Snapshot()
			if err := b.SendTo(conn, Message{Action: "board", Board: &snap}); err != nil {
				log.Println("Initial send error:", err)
				b.drop(conn)
			}

		case conn := <-b.unregister:
			b.drop(conn)

		case data := <-b.outbox:
			b.writeAll(websocket.TextMessage, data)

		case <-pingTicker.C:
			b.writeAll(websocket.PingMessage, nil)
		}
	}
}

func (b *Broadcaster) Register(conn *websocket.Conn) {
	b.register <- conn
}

func (b *Broadcaster) Unregister(conn *websocket.Conn) {
	b.unregister <- conn
}

// ClientCount reports how many clients are connected.
func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *Broadcaster) drop(conn *websocket.Conn) {
	b.mu.Lock()
	id, ok := b.clients[conn]
	if ok {
		delete(b.clients, conn)
		delete(b.WriteMu, conn)
	}
	b.mu.Unlock()
	if ok {
		conn.Close()
		log.Printf("Client %s disconnected (%d left)", id, b.ClientCount())
	}
}

// SendTo writes one message to a single client under its write lock.
func (b *Broadcaster) SendTo(conn *websocket.Conn, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	b.mu.RLock()
	mu, ok := b.WriteMu[conn]
	b.mu.RUnlock()
	if !ok {
		return websocket.ErrCloseSent
	}

	mu.Lock()
	defer mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}

// writeAll must only be called from Run.
func (b *Broadcaster) writeAll(msgType int, data []byte) {
	var failed []*websocket.Conn

	b.mu.RLock()
	for conn, id := range b.clients {
		mu, ok := b.WriteMu[conn]
		if !ok {
			continue
		}
		mu.Lock()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(msgType, data); err != nil {
			log.Printf("Broadcast error to %s: %v", id, err)
			failed = append(failed, conn)
		}
		mu.Unlock()
	}
	b.mu.RUnlock()

	for _, conn := range failed {
		b.drop(conn)
	}
}

func (b *Broadcaster) publish(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Println("Broadcast marshal error:", err)
		return
	}

	select {
	case b.outbox <- data:

	default:
		log.Println("Broadcast outbox full, dropping", msg.Action)
	}
}

// BroadcastStrike pushes the tiles that fell in a strike.
func (b *Broadcaster) BroadcastStrike(report StrikeReport) {
	b.publish(Message{Action: "fell", Strike: &report})
}

// BroadcastBoard pushes a full snapshot, used after resets.
func (b *Broadcaster) BroadcastBoard() {
	snap := b.world.Snapshot()
	b.publish(Message{Action: "board", Board: &snap})
}
