package fir

import (
	"math"
	"math/cmplx"
)

// Filter applies a designed band kernel to a signal, one sample at a
// time, through a ring-buffer delay line. The zero value is not usable;
// construct with [New] from a [Bandpass], [Bandreject], or [DesignBand]
// kernel.
type Filter struct {
	taps  []float64
	state []float64
	head  int
}

// New creates a filter from the given kernel. The taps are copied, so
// the caller may reuse the slice.
func New(taps []float64) *Filter {
	t := make([]float64, len(taps))
	copy(t, taps)
	return &Filter{
		taps:  t,
		state: make([]float64, len(taps)),
	}
}

// ProcessSample pushes one input sample through the delay line and
// returns y[n] = sum_k h[k]*x[n-k].
func (f *Filter) ProcessSample(x float64) float64 {
	n := len(f.taps)
	f.state[f.head] = x

	acc := 0.0
	idx := f.head
	for _, c := range f.taps {
		acc += c * f.state[idx]
		if idx == 0 {
			idx = n
		}
		idx--
	}

	f.head++
	if f.head == n {
		f.head = 0
	}
	return acc
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst, leaving src untouched. Both
// slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line so the filter starts from silence again.
func (f *Filter) Reset() {
	for i := range f.state {
		f.state[i] = 0
	}
	f.head = 0
}

// Response evaluates the kernel's complex frequency response at the
// given frequency (Hz) for the given sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var re, im float64
	for k, c := range f.taps {
		s, cs := math.Sincos(w * float64(k))
		re += c * cs
		im -= c * s
	}
	return complex(re, im)
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
