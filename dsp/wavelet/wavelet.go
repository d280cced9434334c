// Package wavelet provides Ricker (Mexican-hat) kernels and
// continuous-wavelet-transform smoothing.
//
// The Ricker wavelet is the negative, normalized second derivative of a
// Gaussian: a zero-mean bell with negative side lobes. Convolving a
// series with a Ricker kernel of width w emphasizes localized bumps of
// roughly matching width while cancelling flat background, which makes
// it a matched smoother for event detection.
package wavelet

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-rois/dsp/conv"
)

// ErrEmptyInput is returned when there is no data to transform.
var ErrEmptyInput = errors.New("wavelet: empty input")

// Ricker returns a Ricker wavelet kernel with the given number of
// points and characteristic width (both in samples).
//
//	psi(x) = 2/(sqrt(3w)*pi^(1/4)) * (1 - x^2/w^2) * exp(-x^2/(2w^2))
//
// with x centered on (points-1)/2.
func Ricker(points int, width float64) ([]float64, error) {
	if points <= 0 {
		return nil, fmt.Errorf("wavelet: points must be > 0: %d", points)
	}
	if width <= 0 {
		return nil, fmt.Errorf("wavelet: width must be > 0: %g", width)
	}

	amp := 2 / (math.Sqrt(3*width) * math.Pow(math.Pi, 0.25))
	wsq := width * width
	center := float64(points-1) / 2

	out := make([]float64, points)
	for i := range out {
		x := float64(i) - center
		xsq := x * x
		out[i] = amp * (1 - xsq/wsq) * math.Exp(-xsq/(2*wsq))
	}
	return out, nil
}

// Smooth convolves data with a Ricker kernel of the given width and
// returns a series of the same length. The kernel spans 10x the width,
// capped at the data length.
func Smooth(data []float64, width float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	points := int(math.Min(10*width, float64(len(data))))
	if points < 1 {
		points = 1
	}

	kern, err := Ricker(points, width)
	if err != nil {
		return nil, err
	}

	// Direct convolution keeps exact zeros exact; the FFT path would
	// leave roundoff noise in silent regions, which a strict >0
	// threshold downstream turns into spurious events.
	return conv.DirectMode(data, kern, conv.ModeSame)
}

// CWT computes a continuous wavelet transform of data over the given
// widths, one output row per width.
func CWT(data []float64, widths []float64) ([][]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(widths) == 0 {
		return nil, errors.New("wavelet: no widths")
	}

	rows := make([][]float64, len(widths))
	for i, w := range widths {
		row, err := Smooth(data, w)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}
