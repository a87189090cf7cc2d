package scan

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tojo17/seedfinder/internal/galaxy"
	"github.com/tojo17/seedfinder/internal/rules"
	"github.com/tojo17/seedfinder/internal/wsproto"
)

// Sink is the outbound half of a session's transport: one call to Send per
// frame, never interleaved at the byte level (spec.md §5). Implementations
// (internal/ws) typically serialize all Sends through a single writer
// goroutine fed by a buffered channel.
type Sink interface {
	Send(data []byte) error
}

// GenerateFunc runs the galaxy-generation function off the caller's
// goroutine when Session.handleGenerate is on the hot path of a message
// pump. Exposed as a field (not a free function call) so tests can swap in
// a deterministic stub without depending on internal/galaxy's RNG.
type GenerateFunc func(galaxy.GameDesc) galaxy.Galaxy

type searchHandle struct {
	tracker   *CompletionTracker
	cancelled *atomic.Bool
	events    *eventQueue
}

// Session is the per-connection state machine described in spec.md §4.2: it
// decodes inbound command frames, runs Generate off the command pump, and
// starts/stops Find searches, multiplexing a running search's Progress and
// Result frames onto the same outbound Sink.
type Session struct {
	id   string
	sink Sink

	generate       GenerateFunc
	maxConcurrency int
	batchSize      int32

	mu     sync.Mutex
	active *searchHandle
}

// NewSession constructs a Session bound to sink. id is a correlation
// identifier used only in log lines (spec.md never puts it on the wire).
// maxConcurrency is the process-wide worker-count ceiling from
// internal/config; pass 0 for no additional ceiling beyond spec.md §4.2's
// own range-based clamp. batchSize is the per-worker reservation size from
// internal/config; pass 0 to use DefaultBatchSize.
func NewSession(id string, sink Sink, maxConcurrency int, batchSize int32) *Session {
	return &Session{id: id, sink: sink, generate: galaxy.Generate, maxConcurrency: maxConcurrency, batchSize: batchSize}
}

// HandleFrame decodes and dispatches one inbound text frame. A non-nil
// error means the frame was malformed and, per spec.md §7, the caller
// should terminate the connection.
func (s *Session) HandleFrame(raw []byte) error {
	msgType, cmd, err := wsproto.DecodeCommand(raw)
	if err != nil {
		return err
	}

	switch msgType {
	case wsproto.MsgGenerate:
		go s.handleGenerate(cmd.(*wsproto.GenerateCommand))
		return nil
	case wsproto.MsgFind:
		return s.handleFind(cmd.(*wsproto.FindCommand))
	case wsproto.MsgStop:
		s.handleStop()
		return nil
	default:
		return fmt.Errorf("scan: unreachable message type %q", msgType)
	}
}

// Close cancels any running search. Called by the transport when the
// connection is closing, so an in-flight search doesn't keep burning CPU
// for a client that's gone (spec.md §7's "send failure... running search is
// cancelled").
func (s *Session) Close() {
	s.mu.Lock()
	h := s.active
	s.mu.Unlock()
	if h != nil {
		h.cancelled.Store(true)
	}
}

func (s *Session) handleGenerate(cmd *wsproto.GenerateCommand) {
	g := s.generate(cmd.Game)
	s.send(g)
}

func (s *Session) handleFind(cmd *wsproto.FindCommand) error {
	compiled, err := rules.Compile(cmd.Rule)
	if err != nil {
		return fmt.Errorf("scan: invalid Find rule: %w", err)
	}

	rng := SeedRange{Start: cmd.Range[0], End: cmd.Range[1]}

	s.mu.Lock()
	if s.active != nil {
		s.mu.Unlock()
		// Open question (spec.md §9): a Find while one is already running
		// is neither queued, cancels the prior search, nor rejected with a
		// protocol error. It is logged and ignored; the running search is
		// unaffected. This keeps "only one search at a time" literal
		// without inventing new wire semantics (see DESIGN.md).
		log.Printf("session %s: Find received while a search is already running; ignoring", s.id)
		return nil
	}

	log.Println("Receive search request.")
	numWorkers := rng.EffectiveConcurrency(cmd.Concurrency, s.maxConcurrency)
	log.Printf("Concurrency: %d.", numWorkers)

	tracker := NewCompletionTracker(rng, time.Duration(cmd.Autosave)*time.Second, numWorkers)

	cancelled := &atomic.Bool{}
	h := &searchHandle{tracker: tracker, cancelled: cancelled}
	s.active = h
	s.mu.Unlock()

	if numWorkers == 0 {
		// spec.md §7: "Invalid range (end <= start). Effective worker count
		// is zero; the event pump sends Done {start, start} immediately."
		start, end := tracker.Snapshot()
		s.clearActive(h)
		s.send(wsproto.NewDoneFrame(start, end))
		return nil
	}

	h.events = newEventQueue()
	pool := NewWorkerPool(rng, numWorkers, cancelled, h.events, cmd.Game, compiled, s.batchSize)
	pool.Run()
	go s.runEventPump(h)
	return nil
}

func (s *Session) handleStop() {
	s.mu.Lock()
	h := s.active
	s.mu.Unlock()
	if h == nil {
		return
	}
	log.Println("Stopping")
	h.cancelled.Store(true)
}

// runEventPump drains h.events, folding Progress-batch events into the
// tracker and forwarding Result/Progress/Done frames to the sink, per
// spec.md §4.5. It returns once Done has been sent.
func (s *Session) runEventPump(h *searchHandle) {
	for {
		ev, ok := h.events.Pop()
		if !ok {
			return
		}
		switch ev.kind {
		case eventResult:
			s.send(wsproto.NewResultFrame(ev.seed, ev.indexes))

		case eventProgressBatch:
			if start, end, notify := h.tracker.RecordBatch(ev.seedsCompleted); notify {
				log.Printf("Processing: %d.", end)
				s.send(wsproto.NewProgressFrame(start, end))
			}

		case eventFinished:
			if remaining := h.tracker.WorkerFinished(); remaining <= 0 {
				start, end := h.tracker.Snapshot()
				log.Printf("Completed: %d.", end)
				h.events.Close()
				// Clear before sending Done so a Find sent in reply to Done
				// starts a new search instead of being ignored as busy.
				s.clearActive(h)
				s.send(wsproto.NewDoneFrame(start, end))
				return
			}
		}
	}
}

func (s *Session) clearActive(h *searchHandle) {
	s.mu.Lock()
	if s.active == h {
		s.active = nil
	}
	s.mu.Unlock()
}

func (s *Session) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("session %s: marshal error: %v", s.id, err)
		return
	}
	if err := s.sink.Send(data); err != nil {
		// Send failure terminates the session and any running search
		// (spec.md §7); Close is idempotent with the transport's own
		// teardown path.
		s.Close()
	}
}
