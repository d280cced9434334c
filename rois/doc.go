// Package rois detects temporally- and spectrally-bounded regions of
// interest (ROIs), such as animal vocalizations, in a one-dimensional
// acoustic signal.
//
// Detection needs two priors: the frequency band the events live in and
// their expected duration. The pipeline runs in four stages:
//
//  1. Bandpass the raw signal with a Kaiser-windowed FIR filter over
//     the expected band.
//  2. Reduce the filtered signal to per-window mean-square energy.
//  3. Smooth the energy series with a Ricker wavelet whose width
//     matches half the expected event duration, then binarize it
//     against a threshold.
//  4. Pair mask transitions into onset/offset intervals, repairing
//     events that were already active at the signal boundaries.
//
// # Usage
//
//	res, err := rois.Detect(samples, rois.Config{
//		SampleRate:  44100,
//		Band:        rois.Band{Low: 2000, High: 8000},
//		EventLength: 0.5,
//	})
//	if err != nil {
//		// malformed band, degenerate window sizing, ...
//	}
//	if res.Empty() {
//		// valid outcome: nothing matched
//	}
//	for _, roi := range res.Table {
//		fmt.Println(roi.Onset, roi.Offset)
//	}
//
// An empty table is a legitimate terminal state, not an error. The
// pipeline is a pure function of its inputs: identical signal and
// configuration produce an identical table, and concurrent calls on
// different signals are safe.
//
// Reported times are causal-filter times: the FIR stage delays the
// signal by half its kernel length and the delay is not compensated.
//
// The approach follows the continuous-wavelet-transform peak detection
// of Du et al., Bioinformatics 22(17), 2006.
package rois
