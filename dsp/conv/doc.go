// Package conv provides linear convolution for kernel smoothing and
// FIR application.
//
// Two strategies are offered:
//
//   - Direct convolution: O(N*M) time-domain convolution, best for
//     short kernels
//   - Overlap-add (OLA): FFT-based block convolution, efficient for
//     long signals with longer kernels
//
// For one-shot convolution, use [Convolve], which selects the
// strategy from the kernel length (direct below 64 taps). For repeated
// convolution with the same kernel, create a reusable [OverlapAdd]
// convolver to avoid repeated FFT plan creation.
//
// Output trimming follows the usual modes: [ModeFull] returns the full
// len(a)+len(b)-1 result, [ModeSame] the center portion matching the
// first input, [ModeValid] only the fully overlapping portion.
package conv
