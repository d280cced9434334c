package rois

import (
	"errors"
	"math"
	"testing"
)

func TestMaskEdges(t *testing.T) {
	mask := []bool{false, true, true, false}
	times := []float64{0.5, 1.5, 2.5, 3.5}

	onsets, offsets := maskEdges(mask, times)

	// Edges are stamped with the time before the step plus the constant
	// times[0] half-window correction.
	if len(onsets) != 1 || math.Abs(onsets[0]-1.0) > 1e-12 {
		t.Errorf("onsets = %v, want [1]", onsets)
	}
	if len(offsets) != 1 || math.Abs(offsets[0]-3.0) > 1e-12 {
		t.Errorf("offsets = %v, want [3]", offsets)
	}
}

func TestMaskEdgesNoTransitions(t *testing.T) {
	times := []float64{0.5, 1.5, 2.5}

	onsets, offsets := maskEdges([]bool{false, false, false}, times)
	if len(onsets) != 0 || len(offsets) != 0 {
		t.Errorf("all-false mask: got %v / %v, want none", onsets, offsets)
	}

	onsets, offsets = maskEdges([]bool{true, true, true}, times)
	if len(onsets) != 0 || len(offsets) != 0 {
		t.Errorf("all-true mask: got %v / %v, want none", onsets, offsets)
	}
}

func TestReconcile(t *testing.T) {
	cases := []struct {
		name        string
		onsets      []float64
		offsets     []float64
		wantOnsets  []float64
		wantOffsets []float64
	}{
		{
			name:        "already paired",
			onsets:      []float64{1, 5},
			offsets:     []float64{2, 6},
			wantOnsets:  []float64{1, 5},
			wantOffsets: []float64{2, 6},
		},
		{
			name:        "active at start",
			onsets:      []float64{5},
			offsets:     []float64{2, 6},
			wantOnsets:  []float64{0, 5},
			wantOffsets: []float64{2, 6},
		},
		{
			name:        "active at end",
			onsets:      []float64{1, 5},
			offsets:     []float64{2},
			wantOnsets:  []float64{1, 5},
			wantOffsets: []float64{2, 10},
		},
		{
			name:        "active at both",
			onsets:      []float64{5},
			offsets:     []float64{2},
			wantOnsets:  []float64{0, 5},
			wantOffsets: []float64{2, 10},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			onsets, offsets, err := reconcile(tc.onsets, tc.offsets, 0, 10)
			if err != nil {
				t.Fatalf("reconcile: %v", err)
			}
			if !equalFloats(onsets, tc.wantOnsets) {
				t.Errorf("onsets = %v, want %v", onsets, tc.wantOnsets)
			}
			if !equalFloats(offsets, tc.wantOffsets) {
				t.Errorf("offsets = %v, want %v", offsets, tc.wantOffsets)
			}
		})
	}
}

func TestReconcileMismatch(t *testing.T) {
	_, _, err := reconcile([]float64{1, 3, 5}, []float64{2}, 0, 10)
	if !errors.Is(err, ErrReconciliation) {
		t.Fatalf("err = %v, want ErrReconciliation", err)
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
