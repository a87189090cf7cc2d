package scan

import (
	"sync/atomic"

	"github.com/tojo17/seedfinder/internal/galaxy"
	"github.com/tojo17/seedfinder/internal/rules"
)

// DefaultBatchSize is the number of seeds a worker reserves from the shared
// cursor per iteration when the caller doesn't override it via
// internal/config. It is a performance tuning knob, not a correctness
// parameter (spec.md §4.4); 200 matches the original Rust source's
// `const BATCH_SIZE: i32 = 200`.
const DefaultBatchSize int32 = 200

// WorkerPool runs a fixed set of workers over a shared atomic cursor,
// emitting events onto a single eventQueue. Each worker holds its own
// clone of desc and rules, per spec.md §3's ownership model.
type WorkerPool struct {
	rng        SeedRange
	cursor     atomic.Int32
	cancelled  *atomic.Bool
	events     *eventQueue
	desc       galaxy.GameDesc
	compiled   *rules.Compiled
	numWorkers int
	batchSize  int32
}

// NewWorkerPool constructs a pool ready to Run. numWorkers must already be
// clamped by the caller via SeedRange.EffectiveConcurrency. batchSize <= 0
// falls back to DefaultBatchSize.
func NewWorkerPool(rng SeedRange, numWorkers int, cancelled *atomic.Bool, events *eventQueue, desc galaxy.GameDesc, compiled *rules.Compiled, batchSize int32) *WorkerPool {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	p := &WorkerPool{
		rng:        rng,
		cancelled:  cancelled,
		events:     events,
		desc:       desc,
		compiled:   compiled,
		numWorkers: numWorkers,
		batchSize:  batchSize,
	}
	p.cursor.Store(rng.Start)
	return p
}

// Run launches numWorkers goroutines and returns immediately; each worker
// emits its own eventFinished when it exits. Run does not block.
func (p *WorkerPool) Run() {
	for i := 0; i < p.numWorkers; i++ {
		go p.runWorker(p.desc.Clone(), p.compiled.Clone())
	}
}

func (p *WorkerPool) runWorker(desc galaxy.GameDesc, compiled *rules.Compiled) {
	for {
		batchStart := p.cursor.Add(p.batchSize) - p.batchSize
		if batchStart >= p.rng.End {
			break
		}
		batchEnd := batchStart + p.batchSize
		if batchEnd > p.rng.End {
			batchEnd = p.rng.End
		}

		completed := make([]int32, 0, batchEnd-batchStart)
		for seed := batchStart; seed < batchEnd; seed++ {
			if p.cancelled.Load() {
				break
			}
			desc.Seed = seed
			g := galaxy.Generate(desc)
			indexes := compiled.Match(g)
			if len(indexes) > 0 {
				p.events.Push(workerEvent{
					kind:    eventResult,
					seed:    seed,
					indexes: append([]int(nil), indexes...),
				})
			}
			completed = append(completed, seed)
		}

		if len(completed) > 0 {
			p.events.Push(workerEvent{kind: eventProgressBatch, seedsCompleted: completed})
		}

		if p.cancelled.Load() {
			break
		}
	}
	p.events.Push(workerEvent{kind: eventFinished})
}
