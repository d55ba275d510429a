package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBPMPulseTrain(t *testing.T) {
	samples := genPulseTrain(120, 44100, 10)
	bpm := DetectBPM(samples, 44100)
	assert.InDelta(t, 120, bpm, 2)
}

func TestDetectBPMOctaveFoldUp(t *testing.T) {
	// 60 BPM pulses fold up into the [80,180] range.
	samples := genPulseTrain(60, 44100, 12)
	bpm := DetectBPM(samples, 44100)
	assert.InDelta(t, 120, bpm, 2)
}

func TestDetectBPMOctaveFoldDown(t *testing.T) {
	samples := genPulseTrain(240, 44100, 10)
	bpm := DetectBPM(samples, 44100)
	assert.InDelta(t, 120, bpm, 2)
}

func TestDetectBPMDefaultOnSilence(t *testing.T) {
	assert.Equal(t, DefaultBPM, DetectBPM(make([]float64, 44100*3), 44100))
}

func TestDetectBPMDefaultOnEmpty(t *testing.T) {
	assert.Equal(t, DefaultBPM, DetectBPM(nil, 44100))
}

func TestDetectBPMDefaultOnSinglePeak(t *testing.T) {
	// One burst only: fewer than two peaks, no intervals.
	samples := make([]float64, 44100*3)
	burst := genPulseTrain(240, 44100, 0.01)
	copy(samples[44100:], burst)
	assert.Equal(t, DefaultBPM, DetectBPM(samples, 44100))
}

func TestMedian(t *testing.T) {
	assert.InDelta(t, 0.5, median([]float64{0.5, 2.0, 0.4, 0.5, 0.6}), 1e-9)
	assert.InDelta(t, 0.5, median([]float64{0.4, 0.6}), 1e-9)
}
