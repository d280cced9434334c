package rois

import (
	"errors"
	"fmt"
)

// ErrReconciliation reports an onset/offset count mismatch after
// boundary repair. It indicates a programming defect, not bad input,
// and aborts the detection rather than returning a malformed table.
var ErrReconciliation = errors.New("rois: onset/offset count mismatch after reconciliation")

// maskEdges extracts onset and offset times from mask transitions.
// A false-to-true step at index i is an onset, true-to-false an offset;
// both are stamped with times[i] plus a constant times[0] correction
// for the half-window shift the forward difference introduces.
func maskEdges(mask []bool, times []float64) (onsets, offsets []float64) {
	for i := 0; i+1 < len(mask); i++ {
		switch {
		case !mask[i] && mask[i+1]:
			onsets = append(onsets, times[i]+times[0])
		case mask[i] && !mask[i+1]:
			offsets = append(offsets, times[i]+times[0])
		}
	}
	return onsets, offsets
}

// reconcile pairs onsets with offsets, synthesizing boundary events:
// a signal already active at tmin gets an onset at tmin, one still
// active at tmax gets an offset at tmax. Both inputs must be non-empty.
func reconcile(onsets, offsets []float64, tmin, tmax float64) ([]float64, []float64, error) {
	if onsets[0] > offsets[0] {
		onsets = append([]float64{tmin}, onsets...)
	}
	if onsets[len(onsets)-1] > offsets[len(offsets)-1] {
		offsets = append(offsets, tmax)
	}

	if len(onsets) != len(offsets) {
		return nil, nil, fmt.Errorf("%w: %d onsets, %d offsets",
			ErrReconciliation, len(onsets), len(offsets))
	}
	return onsets, offsets, nil
}
