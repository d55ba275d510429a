package analysis

// firstBeatThreshold is the total-energy level that anchors the grid: the
// first sample above it is taken as the downbeat.
const firstBeatThreshold = 0.5

// BuildBeatGrid derives uniformly spaced beat timestamps from the detected
// BPM, anchored at the first strong-energy sample (time 0 when none exists).
// Timestamps are emitted while they stay below the track duration.
func BuildBeatGrid(bpm int, energy *EnergyMap, duration float64) []float64 {
	if bpm <= 0 || duration <= 0 {
		return nil
	}

	firstBeat := 0.0
	if energy != nil {
		for _, s := range energy.Samples {
			if s.Total > firstBeatThreshold {
				firstBeat = s.Time
				break
			}
		}
	}

	interval := 60.0 / float64(bpm)
	var beats []float64
	for t := firstBeat; t < duration; t += interval {
		beats = append(beats, t)
	}
	return beats
}
