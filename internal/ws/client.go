package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	// Outbound queue depth per connection.
	sendBuffer = 64
)

// Client wraps one websocket connection. All writes go through the
// buffered send queue so the read loop and the event forwarder never
// write to the connection directly.
type Client struct {
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan ServerMessage
	closed bool
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan ServerMessage, sendBuffer),
	}
}

// enqueue queues a message for delivery, dropping it if the queue is
// full or the client is shutting down. A slow client loses messages
// rather than stalling the room.
func (c *Client) enqueue(msg ServerMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- msg:
	default:
		// Queue full, drop
	}
}

// close stops the write pump after the queue drains. Safe to call more
// than once.
func (c *Client) close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
	c.mu.Unlock()
}

// writePump pumps queued messages to the websocket connection and
// keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readCommand reads the next command from the peer. The read deadline
// is kept alive by the pong handler.
func (c *Client) readCommand() (Command, error) {
	var cmd Command
	err := c.conn.ReadJSON(&cmd)
	return cmd, err
}

func (c *Client) configureRead() {
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
}
