// Package game ties the analysis pipeline, level generator and scheduler
// into one play-session lifecycle: load a track, play it, die, resume or
// restart. Rendering, input and collision live outside; they consume the
// due-event batches this package hands out.
package game

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/RogerMinemu/HexBeat/internal/analysis"
	"github.com/RogerMinemu/HexBeat/internal/audio"
	"github.com/RogerMinemu/HexBeat/internal/level"
	"github.com/RogerMinemu/HexBeat/internal/sched"
)

type SessionState int

const (
	StateIdle    SessionState = iota
	StateReady                // track loaded, not yet playing
	StatePlaying              // events firing against the clock
	StateDead                 // crashed; resume keeps the cursor
)

// Session owns every per-track artifact. A successful load replaces them
// wholesale; a failed load leaves the previous track fully usable.
type Session struct {
	State     SessionState
	TrackID   uuid.UUID
	TrackPath string
	Analysis  *analysis.TrackAnalysis
	Events    []level.SpawnEvent

	log       *slog.Logger
	seed      uint64
	clock     sched.Clock
	scheduler *sched.Scheduler
}

func NewSession(logger *slog.Logger, seed uint64) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{log: logger, seed: seed}
}

// SetClock attaches the playback clock polled for due events. Set it before
// playback starts; the session never reads a global time source.
func (s *Session) SetClock(c sched.Clock) {
	s.clock = c
}

// LoadTrack decodes a file and builds the full session state. On decode
// failure the load is abandoned and the old state is kept.
func (s *Session) LoadTrack(path string, progress analysis.ProgressFunc) error {
	buf, err := audio.DecodeFile(path)
	if err != nil {
		return err
	}
	s.LoadBuffer(buf, progress)
	s.TrackPath = path
	return nil
}

// LoadBuffer runs analysis and generation over an already-decoded buffer
// and replaces the session's artifacts. Degenerate tracks load fine; they
// just produce an empty (trivially survivable) event sequence.
func (s *Session) LoadBuffer(buf *analysis.WaveformBuffer, progress analysis.ProgressFunc) {
	res := analysis.Analyze(buf, progress)

	gen := level.NewGenerator(level.Config{
		BaseSpeed:   BaseSpeed,
		SpawnRadius: SpawnRadius,
		Thickness:   ObstacleThickness,
	}, level.NewRand(s.seed))
	events := gen.Generate(res.Beats, res.Energy, res.Duration)

	s.TrackID = uuid.New()
	s.TrackPath = ""
	s.Analysis = res
	s.Events = events
	s.scheduler = sched.New(events, s.clock)
	s.State = StateReady

	s.log.Info("track loaded",
		"track", s.TrackID,
		"bpm", res.BPM,
		"duration", res.Duration,
		"beats", len(res.Beats),
		"onsets", len(res.Onsets),
		"events", len(events),
	)
}

// Start marks the session playing from the top.
func (s *Session) Start() {
	s.State = StatePlaying
}

// Poll returns the spawn events newly due at the clock's current time.
func (s *Session) Poll() []level.SpawnEvent {
	if s.scheduler == nil || s.clock == nil || s.State != StatePlaying {
		return nil
	}
	return s.scheduler.Due(s.clock.Now())
}

// Die freezes event delivery until a resume or restart.
func (s *Session) Die() {
	if s.State == StatePlaying {
		s.State = StateDead
	}
}

// Resume continues from the death point. The scheduler cursor is NOT
// reset: everything not yet due keeps firing as playback moves forward.
func (s *Session) Resume() {
	if s.State == StateDead {
		s.State = StatePlaying
	}
}

// Restart rewinds the event cursor for a replay from time zero. The caller
// must rewind the playback clock to zero as well.
func (s *Session) Restart() {
	if s.scheduler != nil {
		s.scheduler.Reset()
	}
	s.State = StatePlaying
}

// Remaining reports how many generated events have not fired yet.
func (s *Session) Remaining() int {
	if s.scheduler == nil {
		return 0
	}
	return s.scheduler.Remaining()
}

// Finished reports whether every generated event has been delivered.
func (s *Session) Finished() bool {
	return s.scheduler != nil && s.scheduler.Done()
}
