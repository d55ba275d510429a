package analysis

// ProgressFunc receives ordered (message, percent) notifications while the
// pipeline runs. Purely informational; it carries no control-flow effect.
type ProgressFunc func(message string, percent int)

// TrackAnalysis bundles every artifact produced for one loaded track. The
// whole value is replaced wholesale when a new track loads.
type TrackAnalysis struct {
	BPM      int
	Energy   *EnergyMap
	Beats    []float64
	Onsets   []OnsetEvent
	Spectrum []SpectrumFrame
	Duration float64
}

// Analyze runs the full pipeline synchronously: energy, tempo, beat grid,
// onsets, spectrum. Each stage completes before the next starts. A degenerate
// track (empty buffer, too few peaks) still produces a complete result using
// documented defaults rather than an error.
func Analyze(buf *WaveformBuffer, progress ProgressFunc) *TrackAnalysis {
	report := func(msg string, pct int) {
		if progress != nil {
			progress(msg, pct)
		}
	}

	mono := buf.Mono()
	sampleRate := 0
	duration := 0.0
	if buf != nil {
		sampleRate = buf.SampleRate
		duration = buf.Duration
	}

	report("analyzing energy", 0)
	energy := AnalyzeEnergy(mono, sampleRate)

	report("detecting tempo", 35)
	bpm := DetectBPM(mono, sampleRate)

	report("building beat grid", 55)
	beats := BuildBeatGrid(bpm, energy, duration)

	report("detecting onsets", 65)
	onsets := DetectOnsets(energy)

	report("computing spectrum", 80)
	spectrum := AnalyzeSpectrum(mono, sampleRate)

	report("analysis complete", 100)
	return &TrackAnalysis{
		BPM:      bpm,
		Energy:   energy,
		Beats:    beats,
		Onsets:   onsets,
		Spectrum: spectrum,
		Duration: duration,
	}
}
