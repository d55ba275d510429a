package analysis

// Onset detection over the energy map.
const (
	onsetFluxRatio    = 1.8
	onsetNeighborhood = 4     // frames each side; 9-frame span is ~200ms at 25ms hop
	onsetNoiseFloor   = 0.02
	onsetMinSpacing   = 0.080 // seconds between accepted onsets
)

// OnsetEvent is a detected moment of new melodic energy. Intensity is
// max-normalized across the full onset list.
type OnsetEvent struct {
	Time      float64
	Intensity float64
}

// DetectOnsets finds note-onset events by peak-picking the positive-only
// frame-to-frame flux of mid+treble energy against an adaptive local-mean
// threshold. The result may be empty; that is normal for sparse tracks.
func DetectOnsets(energy *EnergyMap) []OnsetEvent {
	if energy == nil || len(energy.Samples) < 3 {
		return nil
	}
	samples := energy.Samples

	flux := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		d := (samples[i].Mid + samples[i].Treble) - (samples[i-1].Mid + samples[i-1].Treble)
		if d > 0 {
			flux[i] = d
		}
	}

	var onsets []OnsetEvent
	var maxIntensity float64
	lastTime := -onsetMinSpacing
	for i := 1; i < len(flux)-1; i++ {
		lo := i - onsetNeighborhood
		if lo < 0 {
			lo = 0
		}
		hi := i + onsetNeighborhood
		if hi >= len(flux) {
			hi = len(flux) - 1
		}
		var mean float64
		for j := lo; j <= hi; j++ {
			mean += flux[j]
		}
		mean /= float64(hi - lo + 1)

		t := samples[i].Time
		if flux[i] <= onsetFluxRatio*mean ||
			flux[i] <= flux[i-1] || flux[i] <= flux[i+1] ||
			flux[i] <= onsetNoiseFloor ||
			t-lastTime < onsetMinSpacing {
			continue
		}
		onsets = append(onsets, OnsetEvent{Time: t, Intensity: flux[i]})
		if flux[i] > maxIntensity {
			maxIntensity = flux[i]
		}
		lastTime = t
	}

	if maxIntensity > 0 {
		for i := range onsets {
			onsets[i].Intensity /= maxIntensity
		}
	}
	return onsets
}
