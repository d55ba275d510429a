package analysis

import "math"

// Energy windowing.
const (
	EnergyWindow = 0.050 // seconds per analysis window
	EnergyHop    = 0.025 // seconds between window starts

	maxWindowSamples = 512
	energyGain       = 4.0
	normFloor        = 0.001
)

// Band split by window position. A coarse time-domain proxy for frequency
// content, not a true spectral split.
const (
	bassFrac = 0.15
	midFrac  = 0.35
)

// EnergySample holds normalized per-band loudness at one point in time.
// After full-track normalization every band lies in [0,1].
type EnergySample struct {
	Time   float64
	Bass   float64
	Mid    float64
	Treble float64
	Total  float64
}

// EnergyMap is the time-ordered energy sequence with fixed hop spacing.
type EnergyMap struct {
	Samples []EnergySample
	hop     float64
}

// AnalyzeEnergy slices mono samples into 50ms windows every 25ms, computes
// RMS energy for the bass/mid/treble index bands and the whole window, then
// max-normalizes each band across the full track. An empty input produces an
// empty map; consumers treat that as all-zero energy.
func AnalyzeEnergy(samples []float64, sampleRate int) *EnergyMap {
	m := &EnergyMap{hop: EnergyHop}
	if len(samples) == 0 || sampleRate <= 0 {
		return m
	}

	hopSamples := int(EnergyHop * float64(sampleRate))
	if hopSamples < 1 {
		hopSamples = 1
	}
	windowSamples := int(EnergyWindow * float64(sampleRate))
	if windowSamples > maxWindowSamples {
		windowSamples = maxWindowSamples
	}
	if windowSamples < 1 {
		windowSamples = 1
	}

	var maxBass, maxMid, maxTreble, maxTotal float64
	for start := 0; start < len(samples); start += hopSamples {
		end := start + windowSamples
		if end > len(samples) {
			end = len(samples)
		}
		win := samples[start:end]
		n := len(win)

		bassEnd := int(float64(n) * bassFrac)
		midEnd := int(float64(n) * (bassFrac + midFrac))

		s := EnergySample{
			Time:   float64(start) / float64(sampleRate),
			Bass:   rms(win[:bassEnd]) * energyGain,
			Mid:    rms(win[bassEnd:midEnd]) * energyGain,
			Treble: rms(win[midEnd:]) * energyGain,
			Total:  rms(win) * energyGain,
		}
		maxBass = math.Max(maxBass, s.Bass)
		maxMid = math.Max(maxMid, s.Mid)
		maxTreble = math.Max(maxTreble, s.Treble)
		maxTotal = math.Max(maxTotal, s.Total)
		m.Samples = append(m.Samples, s)
	}

	// Per-band max-normalization over the whole track. Offline and
	// non-causal: the maxima are only known after the full pass.
	maxBass = math.Max(maxBass, normFloor)
	maxMid = math.Max(maxMid, normFloor)
	maxTreble = math.Max(maxTreble, normFloor)
	maxTotal = math.Max(maxTotal, normFloor)
	for i := range m.Samples {
		m.Samples[i].Bass /= maxBass
		m.Samples[i].Mid /= maxMid
		m.Samples[i].Treble /= maxTreble
		m.Samples[i].Total /= maxTotal
	}
	return m
}

// NewEnergyMap wraps pre-built samples with the given hop spacing (the
// standard hop when zero). For callers that synthesize energy.
func NewEnergyMap(samples []EnergySample, hop float64) *EnergyMap {
	if hop <= 0 {
		hop = EnergyHop
	}
	return &EnergyMap{Samples: samples, hop: hop}
}

// At returns the sample covering time t, clamped to the last sample past the
// end of the track. An empty map yields a zero sample.
func (m *EnergyMap) At(t float64) EnergySample {
	if m == nil || len(m.Samples) == 0 {
		return EnergySample{}
	}
	i := int(t / m.hop)
	if i < 0 {
		i = 0
	}
	if i >= len(m.Samples) {
		i = len(m.Samples) - 1
	}
	return m.Samples[i]
}

// Len returns the number of samples in the map.
func (m *EnergyMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Samples)
}

func rms(win []float64) float64 {
	if len(win) == 0 {
		return 0
	}
	var sum float64
	for _, v := range win {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(win)))
}
