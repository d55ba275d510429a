package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrum framing.
const (
	spectrumFrameSize = 1024
	spectrumHopSize   = 512
)

// SpectrumFrame holds FFT bin magnitudes for one Hann-windowed frame,
// max-normalized across the track. Consumed by visual-sync collaborators;
// gameplay pacing never reads it.
type SpectrumFrame struct {
	Time       float64
	Magnitudes []float64
}

// AnalyzeSpectrum computes magnitude spectra over the mono samples. Tracks
// shorter than one frame produce no output.
func AnalyzeSpectrum(samples []float64, sampleRate int) []SpectrumFrame {
	if sampleRate <= 0 || len(samples) < spectrumFrameSize {
		return nil
	}

	window := hannWindow(spectrumFrameSize)
	fft := fourier.NewFFT(spectrumFrameSize)
	windowed := make([]float64, spectrumFrameSize)

	var frames []SpectrumFrame
	var maxMag float64
	for start := 0; start+spectrumFrameSize <= len(samples); start += spectrumHopSize {
		for i := 0; i < spectrumFrameSize; i++ {
			windowed[i] = samples[start+i] * window[i]
		}
		coeffs := fft.Coefficients(nil, windowed)
		mags := make([]float64, len(coeffs))
		for i, c := range coeffs {
			mags[i] = cmplx.Abs(c)
			if mags[i] > maxMag {
				maxMag = mags[i]
			}
		}
		frames = append(frames, SpectrumFrame{
			Time:       float64(start) / float64(sampleRate),
			Magnitudes: mags,
		})
	}

	if maxMag > 0 {
		for _, f := range frames {
			for i := range f.Magnitudes {
				f.Magnitudes[i] /= maxMag
			}
		}
	}
	return frames
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
