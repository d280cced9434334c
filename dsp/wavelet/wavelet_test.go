package wavelet

import (
	"math"
	"testing"
)

func TestRickerPeakAndSymmetry(t *testing.T) {
	const width = 4.0
	kern, err := Ricker(41, width)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	amp := 2 / (math.Sqrt(3*width) * math.Pow(math.Pi, 0.25))
	if math.Abs(kern[20]-amp) > 1e-12 {
		t.Fatalf("center amplitude mismatch: got %v want %v", kern[20], amp)
	}
	for i := 0; i < 20; i++ {
		if math.Abs(kern[i]-kern[40-i]) > 1e-12 {
			t.Fatalf("kernel not symmetric at %d", i)
		}
	}
}

func TestRickerZeroCrossingsAtWidth(t *testing.T) {
	kern, err := Ricker(41, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (1 - x^2/w^2) vanishes at x = +-w, i.e. indices 16 and 24.
	if math.Abs(kern[16]) > 1e-12 || math.Abs(kern[24]) > 1e-12 {
		t.Fatalf("expected zero crossings at +-width: %v %v", kern[16], kern[24])
	}
	// Negative lobes just outside the crossings.
	if kern[14] >= 0 || kern[26] >= 0 {
		t.Fatalf("expected negative lobes: %v %v", kern[14], kern[26])
	}
}

func TestRickerNearZeroMean(t *testing.T) {
	kern, err := Ricker(201, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sum float64
	for _, v := range kern {
		sum += v
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("kernel mean not near zero: %v", sum)
	}
}

func TestRickerInvalid(t *testing.T) {
	if _, err := Ricker(0, 1); err == nil {
		t.Fatal("expected error for zero points")
	}
	if _, err := Ricker(10, 0); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestSmoothLengthPreserved(t *testing.T) {
	data := make([]float64, 300)
	out, err := Smooth(data, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(data) {
		t.Fatalf("length mismatch: got %d want %d", len(out), len(data))
	}
}

func TestSmoothHighlightsMatchingBump(t *testing.T) {
	// A rectangular bump of roughly 2*width samples produces a clear
	// positive response centered on the bump.
	data := make([]float64, 400)
	for i := 180; i < 220; i++ {
		data[i] = 1
	}

	out, err := Smooth(data, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	maxIdx, maxVal := 0, math.Inf(-1)
	for i, v := range out {
		if v > maxVal {
			maxIdx, maxVal = i, v
		}
	}
	if maxIdx < 190 || maxIdx > 210 {
		t.Fatalf("response peak not centered on bump: index %d", maxIdx)
	}
	if maxVal <= 0 {
		t.Fatalf("expected positive peak response: %v", maxVal)
	}
	// Flat background cancels to near zero.
	if math.Abs(out[50]) > 1e-9 {
		t.Fatalf("background response not near zero: %v", out[50])
	}
}

func TestSmoothZeroInputStaysZero(t *testing.T) {
	data := make([]float64, 128)
	out, err := Smooth(data, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d not zero: %v", i, v)
		}
	}
}

func TestCWTRowPerWidth(t *testing.T) {
	data := make([]float64, 64)
	data[32] = 1

	rows, err := CWT(data, []float64{1, 2, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("row count mismatch: got %d want 3", len(rows))
	}
	for i, row := range rows {
		if len(row) != len(data) {
			t.Fatalf("row %d length mismatch: %d", i, len(row))
		}
	}
}

func TestCWTEmpty(t *testing.T) {
	if _, err := CWT(nil, []float64{1}); err == nil {
		t.Fatal("expected error for empty data")
	}
	if _, err := CWT([]float64{1, 2}, nil); err == nil {
		t.Fatal("expected error for no widths")
	}
}
