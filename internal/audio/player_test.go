package audio

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogerMinemu/HexBeat/internal/analysis"
)

func TestTrackReaderCountsConsumption(t *testing.T) {
	r := &trackReader{data: make([]byte, 100)}
	chunk := make([]byte, 30)

	n, err := r.Read(chunk)
	require.NoError(t, err)
	assert.Equal(t, 30, n)
	assert.EqualValues(t, 30, r.consumed())

	for {
		if _, err := r.Read(chunk); err == io.EOF {
			break
		}
	}
	assert.EqualValues(t, 100, r.consumed())
}

func TestPlayerClockMath(t *testing.T) {
	// Half the rendered bytes consumed means half the track played.
	src := &trackReader{data: make([]byte, 44100*frameBytes)}
	p := &Player{src: src, sampleRate: 44100}
	assert.Zero(t, p.Now())

	io.CopyN(io.Discard, src, int64(22050*frameBytes))
	assert.InDelta(t, 0.5, p.Now(), 1e-9)
	assert.False(t, p.Finished())

	io.Copy(io.Discard, src)
	assert.InDelta(t, 1.0, p.Now(), 1e-9)
	assert.True(t, p.Finished())
}

func TestRenderStereoPacking(t *testing.T) {
	buf := analysis.NewWaveformBuffer([][]float64{{0.5, -0.25}, {-1, 1}}, 44100)
	data := renderStereo(buf)
	require.Len(t, data, 2*frameBytes)

	readF32 := func(off int) float64 {
		bits := uint32(data[off]) | uint32(data[off+1])<<8 |
			uint32(data[off+2])<<16 | uint32(data[off+3])<<24
		return float64(math.Float32frombits(bits))
	}
	assert.InDelta(t, 0.5, readF32(0), 1e-6)
	assert.InDelta(t, -1.0, readF32(4), 1e-6)
	assert.InDelta(t, -0.25, readF32(8), 1e-6)
	assert.InDelta(t, 1.0, readF32(12), 1e-6)
}

func TestRenderStereoMonoDuplicates(t *testing.T) {
	buf := analysis.NewWaveformBuffer([][]float64{{0.75}}, 44100)
	data := renderStereo(buf)
	require.Len(t, data, frameBytes)
	assert.Equal(t, data[0:4], data[4:8], "mono copies to both channels")
}

func TestNewPlayerRejectsEmptyTrack(t *testing.T) {
	_, err := NewPlayer(analysis.NewWaveformBuffer(nil, 44100), 1)
	assert.Error(t, err)
}
