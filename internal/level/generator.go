package level

import (
	"sort"

	"github.com/RogerMinemu/HexBeat/internal/analysis"
)

// Generation thresholds and scaling.
const (
	introEvents       = 5   // opening events always use the gentle branch
	introSpeedScale   = 0.8
	hardEnergy        = 0.8
	hardMinDifficulty = 0.3
	mediumEnergy      = 0.5
	easyEnergy        = 0.2
	hardSpeedScale    = 0.8
	mediumSpeedScale  = 0.5
	lowSpeedScale     = 0.7
	bassEmphasis      = 0.7 // bass level that triggers the speed boost
	bassSpeedBoost    = 1.2

	subBeatGapFactor   = 1.5
	subBeatMinEnergy   = 0.6
	subBeatSpeedScale  = 0.9
	defaultBeatSpacing = 0.5
)

// SpawnEvent describes one obstacle: when it must arrive at the ring, when
// it has to be spawned so travel time works out, which sides stay open, and
// how it moves. Every event carries the same shape; there are no sparse
// variants.
type SpawnEvent struct {
	Time      float64 // target arrival time
	SpawnTime float64 // Time - SpawnRadius/Speed
	Gaps      SideSet
	Speed     float64
	Thickness float64
}

// Config carries the geometry contract shared with the external renderer.
// SpawnRadius MUST match the renderer's spawn radius or obstacles arrive
// off-beat.
type Config struct {
	BaseSpeed   float64
	SpawnRadius float64
	Thickness   float64
}

// Generator converts a beat grid plus energy map into a time-ordered spawn
// sequence. It runs once per track, synchronously, after analysis.
type Generator struct {
	cfg Config
	rng Source

	phase       int // rotation phase for cycling patterns
	spiralPhase int // separate phase for the narrow spiral
	emitted     int
	prevGaps    SideSet
	hasPrev     bool
}

func NewGenerator(cfg Config, rng Source) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate walks the beat grid making one pattern decision per beat, then
// densifies long low-activity gaps with sub-beat insertions, and finally
// sorts everything by spawn time. An empty beat grid yields an empty
// sequence; that is valid degenerate output, not an error.
func (g *Generator) Generate(beats []float64, energy *analysis.EnergyMap, duration float64) []SpawnEvent {
	if len(beats) == 0 {
		return nil
	}

	interval := defaultBeatSpacing
	if len(beats) >= 2 {
		interval = beats[1] - beats[0]
	}

	// No events until the player has had time to react to the first one.
	grace := g.cfg.SpawnRadius/(g.cfg.BaseSpeed*0.7) + 2.0

	var events []SpawnEvent
	lastArrival := -interval
	for _, t := range beats {
		if t < grace {
			continue
		}
		if len(events) > 0 && t-lastArrival < interval/2 {
			continue
		}
		e := energy.At(t)
		difficulty := t / duration
		if difficulty > 1 {
			difficulty = 1
		}

		gaps, speed, ok := g.pickPattern(e, difficulty)
		if !ok {
			continue
		}
		if e.Bass > bassEmphasis {
			speed *= bassSpeedBoost
		}
		gaps = g.forceSharedGap(gaps)

		events = append(events, g.spawnEvent(t, gaps, speed))
		g.prevGaps = gaps
		g.hasPrev = true
		g.emitted++
		lastArrival = t
	}

	events = g.densify(events, energy, interval)

	sort.Slice(events, func(i, j int) bool { return events[i].SpawnTime < events[j].SpawnTime })
	return events
}

// pickPattern selects the open-side set and speed for one beat. ok is false
// when a very-low-energy beat is skipped outright.
func (g *Generator) pickPattern(e analysis.EnergySample, difficulty float64) (SideSet, float64, bool) {
	base := g.cfg.BaseSpeed

	switch {
	case g.emitted < introEvents:
		gaps := PatternHalfOpen.Sides(g.phase)
		g.phase++
		return gaps, base * introSpeedScale, true

	case e.Total > hardEnergy && difficulty > hardMinDifficulty:
		speed := base * (1 + difficulty*hardSpeedScale)
		r := g.rng.Float64()
		switch {
		case r < 0.4:
			gaps := PatternNarrow.Sides(g.spiralPhase)
			g.spiralPhase++
			return gaps, speed, true
		case r < 0.7:
			return PatternSingle.Sides(intn(g.rng, NumSides)), speed, true
		default:
			return PatternOpposite.Sides(intn(g.rng, NumSides)), speed, true
		}

	case e.Total > mediumEnergy:
		speed := base * (1 + difficulty*mediumSpeedScale)
		rot := g.phase
		g.phase++
		r := g.rng.Float64()
		switch {
		case r < 0.4:
			return PatternOpposite.Sides(rot), speed, true
		case r < 0.75:
			return PatternAdjacent.Sides(rot), speed, true
		default:
			return PatternSingle.Sides(rot), speed, true
		}

	case e.Total > easyEnergy:
		speed := base * (0.8 + difficulty*0.3)
		rot := intn(g.rng, NumSides)
		if g.rng.Float64() < 0.6 {
			return PatternHalfOpen.Sides(rot), speed, true
		}
		return PatternWide.Sides(rot), speed, true

	default:
		// Half the dead-air beats stay empty.
		if g.rng.Float64() < 0.5 {
			return 0, 0, false
		}
		return PatternAlternating.Sides(intn(g.rng, NumSides)), base * lowSpeedScale, true
	}
}

// forceSharedGap keeps consecutive patterns passable: when the new set shares
// no side with the previous one, a random side of the previous set is opened
// in the new one. Without this the generator could emit a provably unbeatable
// sequence.
func (g *Generator) forceSharedGap(gaps SideSet) SideSet {
	if !g.hasPrev || gaps.Intersects(g.prevGaps) {
		return gaps
	}
	open := g.prevGaps.List()
	return gaps.With(open[intn(g.rng, len(open))])
}

// densify inserts one extra event into every beat-pair gap wider than 1.5
// intervals whose midpoint still carries energy. The inserted pattern opens
// opposite() of the preceding event's first open side, so the pair shares a
// gap by construction; a shared side with the following event is forced the
// same way the primary pass does it.
func (g *Generator) densify(events []SpawnEvent, energy *analysis.EnergyMap, interval float64) []SpawnEvent {
	if len(events) < 2 {
		return events
	}
	out := make([]SpawnEvent, 0, len(events))
	for i := 0; i < len(events); i++ {
		out = append(out, events[i])
		if i+1 >= len(events) {
			break
		}
		prev, next := events[i], events[i+1]
		if next.Time-prev.Time <= subBeatGapFactor*interval {
			continue
		}
		mid := (prev.Time + next.Time) / 2
		if energy.At(mid).Total <= subBeatMinEnergy {
			continue
		}
		gaps := PatternOpposite.Sides(prev.Gaps.First())
		if !gaps.Intersects(next.Gaps) {
			open := next.Gaps.List()
			gaps = gaps.With(open[intn(g.rng, len(open))])
		}
		out = append(out, g.spawnEvent(mid, gaps, prev.Speed*subBeatSpeedScale))
	}
	return out
}

// spawnEvent back-calculates the spawn time so the obstacle arrives exactly
// at t after travelling SpawnRadius at the chosen speed.
func (g *Generator) spawnEvent(t float64, gaps SideSet, speed float64) SpawnEvent {
	return SpawnEvent{
		Time:      t,
		SpawnTime: t - g.cfg.SpawnRadius/speed,
		Gaps:      gaps,
		Speed:     speed,
		Thickness: g.cfg.Thickness,
	}
}
