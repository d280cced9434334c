package fir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-rois/dsp/window"
)

// ErrInvalidBand reports malformed band edges: low >= high, edges
// outside (0, Nyquist), or a transition bandwidth that collapses to
// zero. Band validation happens eagerly at design time; nothing is
// clamped silently.
var ErrInvalidBand = errors.New("fir: invalid frequency band")

// Bandpass designs a linear-phase bandpass kernel with the given tap
// count, shaped by a Kaiser window with parameter beta.
func Bandpass(taps int, lowHz, highHz, sampleRate, beta float64) ([]float64, error) {
	if err := validateBand(lowHz, highHz, sampleRate); err != nil {
		return nil, err
	}
	if taps < 3 {
		return nil, fmt.Errorf("fir: tap count must be >= 3: %d", taps)
	}

	nyq := sampleRate / 2
	fl := lowHz / nyq
	fh := highHz / nyq

	kern := make([]float64, taps)
	center := float64(taps-1) / 2
	for n := range kern {
		m := float64(n) - center
		kern[n] = fh*sinc(fh*m) - fl*sinc(fl*m)
	}

	window.Apply(window.TypeKaiser, kern, window.WithBeta(beta))
	return kern, nil
}

// Bandreject designs a linear-phase band-reject kernel with the given
// tap count, shaped by a Kaiser window with parameter beta.
//
// The construction subtracts a bandpass from an all-pass impulse, which
// is exact only for odd tap counts; even counts are rejected.
func Bandreject(taps int, lowHz, highHz, sampleRate, beta float64) ([]float64, error) {
	if err := validateBand(lowHz, highHz, sampleRate); err != nil {
		return nil, err
	}
	if taps < 3 {
		return nil, fmt.Errorf("fir: tap count must be >= 3: %d", taps)
	}
	if taps%2 == 0 {
		return nil, fmt.Errorf("fir: band-reject kernel needs an odd tap count: %d", taps)
	}

	nyq := sampleRate / 2
	fl := lowHz / nyq
	fh := highHz / nyq

	kern := make([]float64, taps)
	center := (taps - 1) / 2
	for n := range kern {
		m := float64(n - center)
		kern[n] = fl*sinc(fl*m) - fh*sinc(fh*m)
	}
	kern[center]++

	window.Apply(window.TypeKaiser, kern, window.WithBeta(beta))
	return kern, nil
}

// DesignBand designs a band kernel sized from a stop-band attenuation
// target (dB) and a transition bandwidth of
// transitionFraction*(highHz-lowHz). bandpass selects between passband
// and band-reject behavior.
func DesignBand(lowHz, highHz, sampleRate, attenDB, transitionFraction float64, bandpass bool) ([]float64, error) {
	if err := validateBand(lowHz, highHz, sampleRate); err != nil {
		return nil, err
	}

	widthHz := transitionFraction * (highHz - lowHz)
	if widthHz <= 0 {
		return nil, fmt.Errorf("%w: transition bandwidth %g Hz", ErrInvalidBand, widthHz)
	}

	widthNorm := widthHz / (sampleRate / 2)
	taps, beta, err := window.KaiserOrder(attenDB, widthNorm)
	if err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}

	if bandpass {
		return Bandpass(taps, lowHz, highHz, sampleRate, beta)
	}
	return Bandreject(taps, lowHz, highHz, sampleRate, beta)
}

func validateBand(lowHz, highHz, sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("fir: sample rate must be > 0: %g", sampleRate)
	}

	nyq := sampleRate / 2
	if lowHz <= 0 || highHz >= nyq || highHz <= lowHz {
		return fmt.Errorf("%w: [%g, %g] Hz at %g Hz sample rate", ErrInvalidBand, lowHz, highHz, sampleRate)
	}
	return nil
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x
	return math.Sin(px) / px
}
