package pad

import (
	"errors"
	"math"
	"testing"
)

func TestReflectBothSides(t *testing.T) {
	got, err := Reflect([]float64{1, 2, 3, 4}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{3, 2, 1, 2, 3, 4, 3, 2}
	assertEqual(t, got, want)
}

func TestReflectLeftOnly(t *testing.T) {
	got, err := Reflect([]float64{1, 2, 3}, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, got, []float64{3, 2, 1, 2, 3})
}

func TestReflectBounce(t *testing.T) {
	// Pads longer than the input bounce across both edges.
	got, err := Reflect([]float64{1, 2, 3}, 4, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, got, []float64{1, 2, 3, 2, 1, 2, 3})
}

func TestReflectZeroPad(t *testing.T) {
	got, err := Reflect([]float64{1, 2}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, got, []float64{1, 2})
}

func TestReflectErrors(t *testing.T) {
	if _, err := Reflect(nil, 1, 1); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Reflect([]float64{1, 2}, -1, 0); !errors.Is(err, ErrNegativePad) {
		t.Fatalf("expected ErrNegativePad, got %v", err)
	}
	if _, err := Reflect([]float64{1}, 1, 0); !errors.Is(err, ErrNotReflectable) {
		t.Fatalf("expected ErrNotReflectable, got %v", err)
	}
}

func TestTailToMultiple(t *testing.T) {
	got, err := TailToMultiple([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got)%3 != 0 {
		t.Fatalf("length %d is not a multiple of 3", len(got))
	}
	assertEqual(t, got, []float64{1, 2, 3, 4, 5, 4})
}

func TestTailToMultipleExact(t *testing.T) {
	// Already a multiple: no samples appended.
	in := []float64{1, 2, 3, 4}
	got, err := TailToMultiple(in, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("expected no padding, got length %d", len(got))
	}
	assertEqual(t, got, in)
}

func assertEqual(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("sample %d mismatch: got %v want %v", i, got, want)
		}
	}
}
