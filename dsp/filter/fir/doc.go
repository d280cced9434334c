// Package fir provides finite-impulse-response filtering and
// Kaiser-windowed band kernel design.
//
// Two layers are exposed:
//
//   - Kernel design: [Bandpass] and [Bandreject] build linear-phase
//     windowed-sinc kernels from explicit tap counts; [DesignBand]
//     derives the tap count and Kaiser shape from a stop-band
//     attenuation target and a transition bandwidth.
//   - Application: [Filter] runs a kernel over a signal with a
//     circular-buffer delay line.
//
// Application is causal: a kernel of N taps delays the signal by
// (N-1)/2 samples. The delay is not compensated here; consumers that
// interpret absolute times must account for it.
//
// Kernels are not rescaled to unity passband gain. The design follows
// the plain windowed-sinc construction, so the passband gain is close
// to, but not exactly, one.
package fir
