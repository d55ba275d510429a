package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fluxMap builds an energy map whose mid channel follows the given values,
// one per standard hop. Treble stays zero so mid+treble == mid.
func fluxMap(mid []float64) *EnergyMap {
	samples := make([]EnergySample, len(mid))
	for i, v := range mid {
		samples[i] = EnergySample{Time: float64(i) * EnergyHop, Mid: v}
	}
	return NewEnergyMap(samples, EnergyHop)
}

func TestDetectOnsetsSingleSpike(t *testing.T) {
	// One clear spike and one bump under the noise floor: exactly one
	// onset, at the spike, with normalized intensity 1.
	mid := make([]float64, 40)
	mid[10] = 0.8
	mid[30] = 0.015 // below the 0.02 floor
	onsets := DetectOnsets(fluxMap(mid))
	require.Len(t, onsets, 1)
	assert.InDelta(t, 10*EnergyHop, onsets[0].Time, 1e-9)
	assert.InDelta(t, 1.0, onsets[0].Intensity, 1e-9)
}

func TestDetectOnsetsMinSpacing(t *testing.T) {
	// Two spikes 50ms apart: the second lands inside the 80ms refractory
	// window and is dropped.
	mid := make([]float64, 60)
	mid[10] = 0.8
	mid[12] = 0.8
	onsets := DetectOnsets(fluxMap(mid))
	require.Len(t, onsets, 1)
	assert.InDelta(t, 10*EnergyHop, onsets[0].Time, 1e-9)
}

func TestDetectOnsetsIntensityNormalization(t *testing.T) {
	mid := make([]float64, 80)
	mid[10] = 0.8
	mid[50] = 0.4
	onsets := DetectOnsets(fluxMap(mid))
	require.Len(t, onsets, 2)
	assert.InDelta(t, 1.0, onsets[0].Intensity, 1e-9)
	assert.InDelta(t, 0.5, onsets[1].Intensity, 1e-9)
}

func TestDetectOnsetsEmpty(t *testing.T) {
	assert.Nil(t, DetectOnsets(nil))
	assert.Nil(t, DetectOnsets(fluxMap(nil)))
	assert.Nil(t, DetectOnsets(fluxMap(make([]float64, 50))), "flat energy has no onsets")
}
