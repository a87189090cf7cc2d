// Package scan implements the parallel seed-scanning scheduler: the
// completion-tracking data structure, the worker pool, and the per-connection
// session state machine that coordinates them (spec.md §2–§5).
package scan

// SeedRange is the half-open [Start, End) range of seeds a Find evaluates.
type SeedRange struct {
	Start int32
	End   int32
}

// Len returns the number of seeds in the range, or 0 if End <= Start.
func (r SeedRange) Len() int64 {
	if r.End <= r.Start {
		return 0
	}
	return int64(r.End) - int64(r.Start)
}

// Empty reports whether the range contains no seeds.
func (r SeedRange) Empty() bool {
	return r.End <= r.Start
}

// EffectiveConcurrency clamps the requested worker count to spec.md §4.2:
// min(concurrency, end-start), floored at 1 when the range is non-empty, and
// additionally capped at maxConcurrency (a process-wide ceiling from
// internal/config, independent of any single request). maxConcurrency <= 0
// means "no additional ceiling".
func (r SeedRange) EffectiveConcurrency(requested, maxConcurrency int) int {
	if r.Empty() {
		return 0
	}
	length := r.Len()
	if int64(requested) > length {
		requested = int(length)
	}
	if maxConcurrency > 0 && requested > maxConcurrency {
		requested = maxConcurrency
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}
