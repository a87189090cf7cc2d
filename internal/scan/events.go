package scan

// eventKind discriminates the internal messages a worker sends to the
// session's event pump (spec.md §2's "Result and Progress-batch events").
type eventKind int

const (
	eventResult eventKind = iota
	eventProgressBatch
	eventFinished
)

// workerEvent is the internal, not-wire-serialized message type workers
// emit. Exactly one worker produces any given event; ordering within a
// single worker's emissions is preserved (spec.md §4.5), ordering across
// workers is not.
type workerEvent struct {
	kind eventKind

	// eventResult
	seed    int32
	indexes []int

	// eventProgressBatch
	seedsCompleted []int32
}
