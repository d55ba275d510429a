package analysis

import "math"

// Synthetic signal generators for tests.

func genSine(freq, amp float64, sampleRate, frames int) []float64 {
	out := make([]float64, frames)
	omega := 2 * math.Pi * freq / float64(sampleRate)
	for i := range out {
		out[i] = amp * math.Sin(omega*float64(i))
	}
	return out
}

// genPulseTrain emits a decaying 10ms burst at every beat of the given BPM
// over dur seconds, silence in between. The decay keeps the burst's first
// analysis window strictly louder than its neighbors.
func genPulseTrain(bpm float64, sampleRate int, dur float64) []float64 {
	out := make([]float64, int(dur*float64(sampleRate)))
	burstLen := sampleRate / 100 // 10ms
	interval := 60.0 / bpm
	for t := 0.0; t < dur; t += interval {
		start := int(t * float64(sampleRate))
		for i := 0; i < burstLen && start+i < len(out); i++ {
			decay := 1.0 - float64(i)/float64(burstLen)
			out[start+i] = 0.9 * decay * math.Sin(2*math.Pi*220*float64(i)/float64(sampleRate))
		}
	}
	return out
}

// constEnergyMap builds a map with the given constant band levels, one
// sample per standard hop, covering dur seconds.
func constEnergyMap(total, bass float64, dur float64) *EnergyMap {
	n := int(dur / EnergyHop)
	samples := make([]EnergySample, n)
	for i := range samples {
		samples[i] = EnergySample{
			Time:   float64(i) * EnergyHop,
			Bass:   bass,
			Mid:    total / 2,
			Treble: total / 2,
			Total:  total,
		}
	}
	return NewEnergyMap(samples, EnergyHop)
}
