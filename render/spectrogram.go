// Package render computes spectrograms and draws detection overview
// images: a spectrogram panel with region rectangles above a smoothed
// energy panel with the threshold line.
package render

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-rois/dsp/window"
)

// Errors returned by spectrogram computation.
var (
	ErrEmptyInput   = errors.New("render: empty input")
	ErrShortSignal  = errors.New("render: signal shorter than one frame")
	ErrInvalidFrame = errors.New("render: invalid frame parameters")
)

// Spectrogram holds a power spectrogram in dB, frame-major with
// fftSize/2+1 bins per frame.
type Spectrogram struct {
	Power      [][]float64
	SampleRate float64
	FFTSize    int
	Hop        int
}

// ComputeSpectrogram slices the signal into Hann-windowed frames of
// fftSize samples every hop samples and returns the per-frame power
// spectra in dB. The floor is clamped at -120 dB.
func ComputeSpectrogram(sig []float64, sampleRate float64, fftSize, hop int) (*Spectrogram, error) {
	if len(sig) == 0 {
		return nil, ErrEmptyInput
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("render: sample rate must be > 0: %g", sampleRate)
	}
	if fftSize < 2 || hop < 1 {
		return nil, fmt.Errorf("%w: fftSize %d, hop %d", ErrInvalidFrame, fftSize, hop)
	}
	if len(sig) < fftSize {
		return nil, ErrShortSignal
	}

	win, err := window.Hann(fftSize)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	fft := fourier.NewFFT(fftSize)
	frames := 1 + (len(sig)-fftSize)/hop
	power := make([][]float64, frames)

	frame := make([]float64, fftSize)
	for f := 0; f < frames; f++ {
		off := f * hop
		for i := range frame {
			frame[i] = sig[off+i] * win[i]
		}
		coeffs := fft.Coefficients(nil, frame)

		row := make([]float64, len(coeffs))
		for k, c := range coeffs {
			p := real(c)*real(c) + imag(c)*imag(c)
			row[k] = powerDB(p)
		}
		power[f] = row
	}

	return &Spectrogram{
		Power:      power,
		SampleRate: sampleRate,
		FFTSize:    fftSize,
		Hop:        hop,
	}, nil
}

// Duration returns the time span covered by the frames in seconds.
func (s *Spectrogram) Duration() float64 {
	if len(s.Power) == 0 {
		return 0
	}
	return float64((len(s.Power)-1)*s.Hop+s.FFTSize) / s.SampleRate
}

// MaxFreq returns the Nyquist frequency of the spectrogram in Hz.
func (s *Spectrogram) MaxFreq() float64 {
	return s.SampleRate / 2
}

const floorDB = -120.0

func powerDB(p float64) float64 {
	if p <= 0 {
		return floorDB
	}
	db := 10 * math.Log10(p)
	if db < floorDB {
		return floorDB
	}
	return db
}
