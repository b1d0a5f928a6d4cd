package websocket

import (
	"sync"
	"time"

	gorilla "github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// connection wraps a client socket. Writes are serialized; reads happen only in the connection's own loop.
type connection struct {
	socket    *gorilla.Conn
	mu        sync.Mutex
	sessionID string
}

func (that *connection) send(msg Message) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.socket.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return that.socket.WriteJSON(msg)
}

func (that *connection) close() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	_ = that.socket.WriteControl(
		gorilla.CloseMessage,
		gorilla.FormatCloseMessage(gorilla.CloseGoingAway, "server shutdown"),
		time.Now().Add(writeWait),
	)

	return that.socket.Close()
}

// hub groups connections by session.
type hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*connection]struct{}
	all      map[*connection]struct{}
}

func newHub() *hub {
	return &hub{
		sessions: make(map[string]map[*connection]struct{}),
		all:      make(map[*connection]struct{}),
	}
}

func (that *hub) register(conn *connection) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.all[conn] = struct{}{}
}

// attach moves conn to sessionID, leaving any previous session.
func (that *hub) attach(conn *connection, sessionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.leave(conn)

	conns, ok := that.sessions[sessionID]
	if !ok {
		conns = make(map[*connection]struct{})
		that.sessions[sessionID] = conns
	}

	conns[conn] = struct{}{}
	conn.sessionID = sessionID
}

func (that *hub) unregister(conn *connection) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.leave(conn)
	delete(that.all, conn)
}

func (that *hub) leave(conn *connection) {
	conns, ok := that.sessions[conn.sessionID]
	if !ok {
		return
	}

	delete(conns, conn)
	if len(conns) == 0 {
		delete(that.sessions, conn.sessionID)
	}
}

func (that *hub) session(conn *connection) string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return conn.sessionID
}

func (that *hub) connections(sessionID string) []*connection {
	that.mu.RLock()
	defer that.mu.RUnlock()

	conns := make([]*connection, 0, len(that.sessions[sessionID]))
	for conn := range that.sessions[sessionID] {
		conns = append(conns, conn)
	}

	return conns
}

func (that *hub) snapshot() []*connection {
	that.mu.RLock()
	defer that.mu.RUnlock()

	conns := make([]*connection, 0, len(that.all))
	for conn := range that.all {
		conns = append(conns, conn)
	}

	return conns
}
