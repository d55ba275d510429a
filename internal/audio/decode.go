// Package audio hosts the external collaborators the analysis core consumes:
// file decoding into a WaveformBuffer and real playback with a queryable
// position clock.
package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/RogerMinemu/HexBeat/internal/analysis"
)

// DecodeFile decodes an audio file into a WaveformBuffer. A decode failure
// is fatal for this load; the caller abandons the attempt and keeps whatever
// track was valid before.
func DecodeFile(path string) (*analysis.WaveformBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}
	buf, err := Decode(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	return buf, nil
}

// Decode decodes from r using the codec implied by ext (".wav", ".mp3",
// ".flac", ".ogg"). r is closed by the underlying decoder.
func Decode(r io.ReadCloser, ext string) (*analysis.WaveformBuffer, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(r)
	case ".mp3":
		streamer, format, err = mp3.Decode(r)
	case ".flac":
		streamer, format, err = flac.Decode(r)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(r)
	default:
		r.Close()
		return nil, fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	defer streamer.Close()
	return drain(streamer, format)
}

// drain pulls the whole stream into per-channel float64 slices. Mono files
// come out as a single channel; anything else keeps left and right.
func drain(streamer beep.Streamer, format beep.Format) (*analysis.WaveformBuffer, error) {
	var left, right []float64
	chunk := make([][2]float64, 2048)
	for {
		n, ok := streamer.Stream(chunk)
		for i := 0; i < n; i++ {
			left = append(left, chunk[i][0])
			right = append(right, chunk[i][1])
		}
		if !ok {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	channels := [][]float64{left}
	if format.NumChannels > 1 {
		channels = append(channels, right)
	}
	return analysis.NewWaveformBuffer(channels, int(format.SampleRate)), nil
}
