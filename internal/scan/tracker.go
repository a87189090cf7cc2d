package scan

import (
	"sync"
	"time"
)

// CompletionTracker tracks which seeds in a SeedRange have completed and
// throttles "completed prefix" notifications to at most one per autosave
// interval. It implements spec.md §4.3 exactly, including duplicate-seed
// idempotence and the "seed outside range is inert" edge case.
//
// CompletionTracker is mutated only by a single goroutine (the session's
// event pump, per spec.md §5) but is guarded by a mutex anyway so that the
// final read performed when emitting Done happens-after every RecordBatch
// call, regardless of which goroutine performs that final read.
type CompletionTracker struct {
	mu sync.Mutex

	progressStart int32
	progressEnd   int32
	pending       map[int32]struct{}

	autosave   time.Duration
	lastNotify time.Time

	workersRemaining int32

	// now is the wall-clock source, injectable so tests can verify the
	// autosave throttle deterministically (spec.md §9).
	now func() time.Time
}

// NewCompletionTracker builds a tracker over rng with the given autosave
// interval and worker count. autosave == 0 means "emit on every non-empty
// batch" (spec.md §4.3's edge case). No Progress has been emitted at
// construction, so the first RecordBatch notifies whatever the autosave
// interval is. rng.Empty() (End <= Start) is a valid,
// non-error range with no seeds — it's spec.md §7's "Invalid range" case,
// which resolves to zero workers and an immediate Done{start,start} rather
// than a constructor error.
func NewCompletionTracker(rng SeedRange, autosave time.Duration, workers int) *CompletionTracker {
	return &CompletionTracker{
		progressStart:    rng.Start,
		progressEnd:      rng.Start,
		pending:          make(map[int32]struct{}),
		autosave:         autosave,
		lastNotify:       time.Time{},
		workersRemaining: int32(workers),
		now:              time.Now,
	}
}

// setClock overrides the wall-clock source and starts the autosave interval
// at the injected clock's current time. Test-only.
func (t *CompletionTracker) setClock(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
	t.lastNotify = now()
}

// RecordBatch applies every seed in seeds to the tracker per spec.md §4.3's
// record_batch algorithm, then reports whether the autosave interval has
// elapsed. When it has, it returns the previous progressStart and the new
// one (which also becomes the new progressStart) and ok=true.
func (t *CompletionTracker) RecordBatch(seeds []int32) (start, end int32, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, seed := range seeds {
		if seed == t.progressEnd {
			t.progressEnd++
			for {
				if _, found := t.pending[t.progressEnd]; !found {
					break
				}
				delete(t.pending, t.progressEnd)
				t.progressEnd++
			}
		} else {
			t.pending[seed] = struct{}{}
		}
	}

	now := t.now()
	if now.Sub(t.lastNotify) < t.autosave {
		return 0, 0, false
	}
	t.lastNotify = now
	old := t.progressStart
	t.progressStart = t.progressEnd
	return old, t.progressStart, true
}

// Snapshot returns the current (progressStart, progressEnd) under lock, for
// the final read before emitting Done (spec.md §4.5).
func (t *CompletionTracker) Snapshot() (start, end int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progressStart, t.progressEnd
}

// WorkerFinished decrements the remaining-worker count and returns the new
// count; 0 means this was the last worker to finish.
func (t *CompletionTracker) WorkerFinished() (remaining int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.workersRemaining--
	return t.workersRemaining
}
