package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"

	"github.com/RogerMinemu/HexBeat/internal/analysis"
)

const (
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	frameBytes = ChannelCount * 4
)

// Player plays a decoded track and doubles as the playback clock: Now()
// reports seconds of audio handed to the device, so it satisfies sched.Clock.
// Pausing the player freezes the clock; there is no global audio state.
type Player struct {
	ctx        *oto.Context
	ready      chan struct{}
	player     oto.Player
	src        *trackReader
	sampleRate int
	volume     float64
}

// NewPlayer renders the buffer to a float32 stereo stream and opens an audio
// context at the track's sample rate.
func NewPlayer(buf *analysis.WaveformBuffer, volume float64) (*Player, error) {
	if buf.Empty() {
		return nil, errors.New("audio: empty track")
	}
	ctx, ready, err := oto.NewContext(buf.SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: context: %w", err)
	}
	return &Player{
		ctx:        ctx,
		ready:      ready,
		src:        &trackReader{data: renderStereo(buf)},
		sampleRate: buf.SampleRate,
		volume:     volume,
	}, nil
}

// Play starts (or resumes) playback. Blocks until the audio context is ready
// on first call.
func (p *Player) Play() {
	<-p.ready
	if p.player == nil {
		p.player = p.ctx.NewPlayer(p.src)
		p.player.SetVolume(p.volume)
	}
	p.player.Play()
}

// Pause halts playback; the position clock stops with it.
func (p *Player) Pause() {
	if p.player != nil {
		p.player.Pause()
	}
}

// Playing reports whether audio is being fed to the device.
func (p *Player) Playing() bool {
	return p.player != nil && p.player.IsPlaying()
}

// Finished reports whether the whole track has been consumed.
func (p *Player) Finished() bool {
	return p.src.consumed() >= int64(len(p.src.data))
}

// Now implements the playback clock: seconds since track start.
func (p *Player) Now() float64 {
	return float64(p.src.consumed()) / float64(frameBytes) / float64(p.sampleRate)
}

// Close releases the device player.
func (p *Player) Close() {
	if p.player != nil {
		p.player.Close()
		p.player = nil
	}
}

// trackReader feeds rendered samples to the device and counts what it has
// handed over. The device goroutine reads concurrently with clock queries,
// hence the atomic position.
type trackReader struct {
	data []byte
	pos  int64
}

func (r *trackReader) Read(p []byte) (int, error) {
	pos := atomic.LoadInt64(&r.pos)
	if pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[pos:])
	atomic.AddInt64(&r.pos, int64(n))
	return n, nil
}

func (r *trackReader) consumed() int64 {
	return atomic.LoadInt64(&r.pos)
}

// renderStereo packs the buffer as interleaved float32 LE stereo. Mono
// tracks are duplicated to both channels.
func renderStereo(buf *analysis.WaveformBuffer) []byte {
	left := buf.Channels[0]
	right := left
	if len(buf.Channels) > 1 {
		right = buf.Channels[1]
	}
	out := make([]byte, len(left)*frameBytes)
	for i := range left {
		r := left[i]
		if i < len(right) {
			r = right[i]
		}
		putStereoF32LR(out, i, left[i], r)
	}
	return out
}

// putStereoF32LR writes independent left/right samples in [-1,1] as float32
// LE at frame i.
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}
