// Package sched replays a generated spawn sequence in lockstep with a live
// playback clock. It is queried once per rendered frame and never rescans
// the sequence: a single cursor advances monotonically, so every event is
// returned exactly once per run.
package sched

import "github.com/RogerMinemu/HexBeat/internal/level"

// Scheduler tracks a cursor into a SpawnTime-sorted event sequence. Callers
// must query with non-decreasing time; rewinding without Reset is a logic
// error, not a recoverable condition.
type Scheduler struct {
	events []level.SpawnEvent
	cursor int
	clock  Clock
}

// New wraps a generated sequence. The sequence must already be sorted by
// SpawnTime ascending (the generator's final sort guarantees this).
func New(events []level.SpawnEvent, clock Clock) *Scheduler {
	return &Scheduler{events: events, clock: clock}
}

// Due returns the events whose spawn time has passed as of t, in order,
// advancing the cursor past them. O(1) amortized over a playback run.
func (s *Scheduler) Due(t float64) []level.SpawnEvent {
	start := s.cursor
	for s.cursor < len(s.events) && s.events[s.cursor].SpawnTime <= t {
		s.cursor++
	}
	if s.cursor == start {
		return nil
	}
	return s.events[start:s.cursor]
}

// Poll queries the attached clock once and returns the newly due events.
func (s *Scheduler) Poll() []level.SpawnEvent {
	return s.Due(s.clock.Now())
}

// Reset rewinds the cursor to the start. Call it exactly when the track
// restarts from time zero; a continue-from-death resume must NOT reset, so
// the remaining events stay pending.
func (s *Scheduler) Reset() {
	s.cursor = 0
}

// Remaining returns how many events have not yet fired.
func (s *Scheduler) Remaining() int {
	return len(s.events) - s.cursor
}

// Done reports whether every event has fired.
func (s *Scheduler) Done() bool {
	return s.cursor >= len(s.events)
}
