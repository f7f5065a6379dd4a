package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matt-g-everett/robotface/face"
)

const (
	sendQueue  = 64
	writeWait  = 5 * time.Second
	readLimit  = 512
	typeFace   = "face"
	typeLogRow = "log"
)

type message struct {
	Type  string      `json:"type"`
	State *face.State `json:"state,omitempty"`
	SVG   string      `json:"svg,omitempty"`
	Entry *face.Entry `json:"entry,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans face updates and log entries out to WebSocket clients. A client
// that cannot keep up is dropped.
type Hub struct {
	stage    *face.Stage
	theme    face.Theme
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// NewHub creates a Hub following stage.
func NewHub(stage *face.Stage, theme face.Theme) *Hub {
	h := new(Hub)
	h.stage = stage
	h.theme = theme
	h.clients = make(map[*client]struct{})

	stage.View.Subscribe(func(s face.State) {
		h.onFace(s)
	})
	stage.Journal.Subscribe(func(e face.Entry) {
		h.broadcast(encode(message{Type: typeLogRow, Entry: &e}))
	})
	return h
}

func encode(m message) []byte {
	b, err := json.Marshal(m)
	if err != nil {
		log.Printf("hub: encode %s: %v", m.Type, err)
	}
	return b
}

func (h *Hub) faceMessage(s face.State) []byte {
	return encode(message{Type: typeFace, State: &s, SVG: face.SVG(s, h.theme)})
}

// onFace broadcasts s and reports whether anyone was listening.
func (h *Hub) onFace(s face.State) bool {
	if h.Clients() == 0 {
		return false
	}
	h.broadcast(h.faceMessage(s))
	return true
}

func (h *Hub) broadcast(b []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- b:
		default:
			log.Printf("hub: dropping slow client %s", c.conn.RemoteAddr())
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeWS upgrades the request and streams the face to it, starting with the
// current face and the log backlog.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("hub: upgrade: %v", err)
		return
	}

	// the backlog is taken with journal delivery held, so no entry is both
	// in it and broadcast after
	var c *client
	h.stage.Journal.Attach(func(backlog []face.Entry) {
		h.mu.Lock()
		defer h.mu.Unlock()
		c = &client{conn: conn, send: make(chan []byte, sendQueue+len(backlog)+1)}
		c.send <- h.faceMessage(h.stage.View.Snapshot())
		for i := range backlog {
			c.send <- encode(message{Type: typeLogRow, Entry: &backlog[i]})
		}
		h.clients[c] = struct{}{}
	}, func(face.Entry) {})()

	go c.writePump()
	c.readPump()
	h.remove(c)
}

func (c *client) writePump() {
	defer c.conn.Close()
	for b := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump discards incoming messages and returns when the peer goes away.
func (c *client) readPump() {
	c.conn.SetReadLimit(readLimit)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
