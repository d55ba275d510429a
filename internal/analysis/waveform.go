package analysis

// WaveformBuffer is an immutable decoded audio track: per-channel sample
// arrays in [-1,1], the sample rate and the duration in seconds. It is
// produced once by the decoder and read-only to the analysis pipeline.
type WaveformBuffer struct {
	Channels   [][]float64
	SampleRate int
	Duration   float64
}

// NewWaveformBuffer builds a buffer from per-channel samples. Duration is
// derived from the first channel.
func NewWaveformBuffer(channels [][]float64, sampleRate int) *WaveformBuffer {
	w := &WaveformBuffer{Channels: channels, SampleRate: sampleRate}
	if len(channels) > 0 && sampleRate > 0 {
		w.Duration = float64(len(channels[0])) / float64(sampleRate)
	}
	return w
}

// Mono returns the first channel, or nil for an empty buffer. Analysis runs
// on this channel only.
func (w *WaveformBuffer) Mono() []float64 {
	if w == nil || len(w.Channels) == 0 {
		return nil
	}
	return w.Channels[0]
}

// Empty reports whether the buffer holds no samples.
func (w *WaveformBuffer) Empty() bool {
	return len(w.Mono()) == 0
}
