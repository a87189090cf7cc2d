package ws

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/tojo17/seedfinder/internal/scan"
)

// Namespace groups this package's sentinel errors in logs, in the style of
// ygrebnov-workers' namespaced error list.
const Namespace = "ws"

// errClientBufferFull means a connection's outbound buffer was full when a
// frame was pushed; the connection is disconnected rather than backed up.
var errClientBufferFull = errors.New(Namespace + ": client send buffer full")

// Listener accepts the single websocket endpoint this backend exposes and
// spawns one scan.Session per accepted connection (spec.md §4.1).
type Listener struct {
	addr           string
	maxConcurrency int
	batchSize      int32
	upgrader       websocket.Upgrader
}

// NewListener builds a Listener bound to addr (host:port). maxConcurrency
// and batchSize are forwarded to every session as the process-wide
// worker-count ceiling and per-worker batch size (0 for either means "use
// the scan package's own default"). Origin checking is permissive: the
// backend only ever binds loopback and is reached by a companion tool
// running on the same machine, so there is no cross-origin boundary worth
// enforcing (spec.md never specifies one).
func NewListener(addr string, maxConcurrency int, batchSize int32) *Listener {
	return &Listener{
		addr:           addr,
		maxConcurrency: maxConcurrency,
		batchSize:      batchSize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ListenAndServe blocks, serving the websocket endpoint until the process
// is killed or an unrecoverable listen error occurs.
func (l *Listener) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", l.handleUpgrade)
	log.Printf("Started. Listening on %s.", l.addr)
	if err := http.ListenAndServe(l.addr, mux); err != nil {
		return fmt.Errorf("%s: listen on %s: %w", Namespace, l.addr, err)
	}
	return nil
}

func (l *Listener) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("%s: upgrade failed: %v", Namespace, err)
		return
	}

	id := uuid.NewString()
	c := newClient(conn)
	session := scan.NewSession(id, c, l.maxConcurrency, l.batchSize)
	log.Printf("session %s: connected", id)

	defer func() {
		session.Close()
		c.close()
		conn.Close()
		log.Printf("session %s: disconnected", id)
	}()

	for {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage || len(raw) == 0 {
			// Binary and empty frames carry no command; spec.md §6 is
			// silent on them, so they are ignored rather than treated as
			// protocol errors.
			continue
		}
		if err := session.HandleFrame(raw); err != nil {
			log.Printf("session %s: %v", id, err)
			return
		}
	}
}
