// Package energy reduces a signal to per-window energy values.
//
// The reduction trades temporal resolution for robustness: each
// non-overlapping window collapses to its mean squared amplitude, which
// amplifies sectors of dense energy and shrinks the series to a length
// that wavelet smoothing can process cheaply.
package energy

import (
	"fmt"

	"github.com/cwbudde/algo-rois/dsp/pad"
	"github.com/cwbudde/algo-vecmath"
)

// Windowed computes the mean squared amplitude of s over consecutive,
// non-overlapping windows of windowLen samples. The tail is
// reflect-padded so every window is complete; a length that already
// divides windowLen gets no padding.
//
// The returned times hold each window's temporal midpoint in seconds:
//
//	t[k] = k*windowLen/fs + 0.5*windowLen/fs
//
// so the series is centered in time rather than window-start-aligned.
func Windowed(s []float64, windowLen int, sampleRate float64) (times, energies []float64, err error) {
	if len(s) == 0 {
		return nil, nil, fmt.Errorf("energy: empty signal")
	}
	if windowLen <= 0 {
		return nil, nil, fmt.Errorf("energy: window length must be > 0: %d", windowLen)
	}
	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("energy: sample rate must be > 0: %g", sampleRate)
	}

	padded, err := pad.TailToMultiple(s, windowLen)
	if err != nil {
		return nil, nil, fmt.Errorf("energy: %w", err)
	}

	squared := make([]float64, len(padded))
	vecmath.MulBlock(squared, padded, padded)

	numWindows := len(padded) / windowLen
	energies = make([]float64, numWindows)
	times = make([]float64, numWindows)

	step := float64(windowLen) / sampleRate
	for k := 0; k < numWindows; k++ {
		win := squared[k*windowLen : (k+1)*windowLen]
		var sum float64
		for _, v := range win {
			sum += v
		}
		energies[k] = sum / float64(windowLen)
		times[k] = float64(k)*step + 0.5*step
	}
	return times, energies, nil
}
