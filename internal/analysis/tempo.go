package analysis

import (
	"math"
	"sort"
)

// Tempo detection.
const (
	// DefaultBPM is used whenever the track yields too few peaks for a
	// tempo estimate.
	DefaultBPM = 120

	tempoWindow       = 0.010 // seconds per energy window
	tempoNeighborhood = 40    // windows each side for the local average
	tempoPeakRatio    = 1.5
	minBeatInterval   = 0.25 // 240 BPM
	maxBeatInterval   = 2.0  // 30 BPM
	minBPM            = 80
	maxBPM            = 180
)

// DetectBPM estimates a single tempo from onset-peak spacing: 10ms energy
// windows, local-average peak picking, median inter-peak interval, then
// octave-folding into [80,180] BPM. Robust enough to pace gameplay, not a
// musicological estimate.
func DetectBPM(samples []float64, sampleRate int) int {
	if len(samples) == 0 || sampleRate <= 0 {
		return DefaultBPM
	}

	winSamples := int(tempoWindow * float64(sampleRate))
	if winSamples < 1 {
		winSamples = 1
	}
	numWindows := len(samples) / winSamples
	if numWindows < 3 {
		return DefaultBPM
	}

	// Mean-square energy per window.
	energies := make([]float64, numWindows)
	for i := 0; i < numWindows; i++ {
		win := samples[i*winSamples : (i+1)*winSamples]
		var sum float64
		for _, v := range win {
			sum += v * v
		}
		energies[i] = sum / float64(len(win))
	}

	// A window is a peak when it beats 1.5x the local average and both
	// immediate neighbors.
	var peaks []float64
	for i := 1; i < numWindows-1; i++ {
		lo := i - tempoNeighborhood
		if lo < 0 {
			lo = 0
		}
		hi := i + tempoNeighborhood
		if hi >= numWindows {
			hi = numWindows - 1
		}
		var avg float64
		for j := lo; j <= hi; j++ {
			avg += energies[j]
		}
		avg /= float64(hi - lo + 1)

		if energies[i] > tempoPeakRatio*avg && energies[i] > energies[i-1] && energies[i] > energies[i+1] {
			peaks = append(peaks, float64(i)*tempoWindow)
		}
	}
	if len(peaks) < 2 {
		return DefaultBPM
	}

	// Inter-peak intervals inside the plausible beat range.
	var intervals []float64
	for i := 1; i < len(peaks); i++ {
		dt := peaks[i] - peaks[i-1]
		if dt >= minBeatInterval && dt <= maxBeatInterval {
			intervals = append(intervals, dt)
		}
	}
	if len(intervals) == 0 {
		return DefaultBPM
	}

	bpm := 60.0 / median(intervals)

	// Octave-fold into the playable range.
	for bpm < minBPM {
		bpm *= 2
	}
	for bpm > maxBPM {
		bpm /= 2
	}
	return int(math.Round(bpm))
}

func median(v []float64) float64 {
	s := make([]float64, len(v))
	copy(s, v)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}
