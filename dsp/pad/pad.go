// Package pad extends sample slices at their boundaries.
//
// Reflection padding mirrors existing samples around the first and last
// element without repeating the edge sample itself. It avoids the
// discontinuities that zero padding introduces, which matters for
// edge-sensitive operations like windowed energy reduction and wavelet
// convolution.
package pad

import "errors"

// Errors returned by padding functions.
var (
	ErrEmptyInput = errors.New("pad: empty input")
	ErrNegativePad = errors.New("pad: negative pad length")
	ErrNotReflectable = errors.New("pad: input too short to reflect")
)

// Reflect returns s extended by left samples at the front and right
// samples at the back using mirror reflection. The edge sample is not
// repeated: Reflect([1 2 3 4], 2, 2) yields [3 2 1 2 3 4 3 2].
//
// Pads longer than len(s)-1 bounce back and forth across the input.
func Reflect(s []float64, left, right int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	if left < 0 || right < 0 {
		return nil, ErrNegativePad
	}
	if len(s) == 1 && (left > 0 || right > 0) {
		return nil, ErrNotReflectable
	}

	out := make([]float64, left+len(s)+right)
	copy(out[left:], s)

	// Mirror indices walk i-1, i-2, ... from each edge and reverse
	// direction when they hit the opposite edge.
	n := len(s)
	idx, step := 1, 1
	for i := 0; i < left; i++ {
		out[left-1-i] = s[idx]
		idx, step = nextMirror(idx, step, n)
	}
	idx, step = n-2, -1
	for i := 0; i < right; i++ {
		out[left+n+i] = s[idx]
		idx, step = nextMirror(idx, step, n)
	}
	return out, nil
}

// TailToMultiple reflect-pads the tail of s so that the result length is
// an exact multiple of block. A length that already divides block gets
// no padding, not a full extra block.
func TailToMultiple(s []float64, block int) ([]float64, error) {
	if block <= 0 {
		return nil, errors.New("pad: block length must be > 0")
	}
	padLen := (block - len(s)%block) % block
	return Reflect(s, 0, padLen)
}

func nextMirror(idx, step, n int) (int, int) {
	idx += step
	if idx < 0 {
		idx, step = 1, 1
	} else if idx >= n {
		idx, step = n-2, -1
	}
	return idx, step
}
