// Package ws binds the scan.Session state machine to a real websocket
// transport: it accepts connections on a loopback listener, performs the
// handshake, and drives one scan.Session per connection until it closes.
package ws

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeTimeout bounds a single frame write, grounded in the companion TUI
// client's own writeTimeout (internal/client/ws.go) — a loopback write
// should never actually take this long, it only guards against a wedged
// socket never returning from WriteMessage.
const writeTimeout = 10 * time.Second

// client adapts a single websocket connection to scan.Sink. Send is the
// only thing anyone outside this file calls: it hands a frame to outbox and
// returns immediately, never blocking the session goroutine that called it.
// A background pump owns the connection and is the only goroutine that ever
// writes to it, so a Generate reply and an active search's Result/Progress/
// Done frames never interleave at the byte level.
type client struct {
	conn   *websocket.Conn
	outbox chan []byte
	once   sync.Once
}

func newClient(conn *websocket.Conn) *client {
	c := &client{conn: conn, outbox: make(chan []byte, 64)}
	go c.pump()
	return c
}

// Send implements scan.Sink. A client that can't keep up is disconnected
// rather than backing up a search's event pump.
func (c *client) Send(data []byte) error {
	select {
	case c.outbox <- data:
		return nil
	default:
		log.Println("ws client too slow, disconnecting")
		c.close()
		return errClientBufferFull
	}
}

func (c *client) close() {
	c.once.Do(func() { close(c.outbox) })
}

// pump drains outbox onto the wire until it's closed or a write fails.
func (c *client) pump() {
	defer c.conn.Close()
	for msg := range c.outbox {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
