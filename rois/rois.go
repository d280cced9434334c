package rois

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-rois/dsp/energy"
	"github.com/cwbudde/algo-rois/dsp/filter/fir"
	"github.com/cwbudde/algo-rois/dsp/pad"
	"github.com/cwbudde/algo-rois/dsp/wavelet"
)

const (
	defaultAttenuationDB      = 80.0
	defaultTransitionFraction = 0.8
	defaultPadFactor          = 5

	// Fraction of the expected event length used to size the energy
	// window, rounded down to a power of two.
	windowFraction = 0.05
)

// ErrInvalidBand reports malformed band bounds. It is the fir design
// error, re-exported so callers can match it without importing the
// filter package.
var ErrInvalidBand = fir.ErrInvalidBand

// ErrEventLength reports an expected event length too short for the
// configured window: the wavelet scale collapses and window sizing
// degenerates.
var ErrEventLength = errors.New("rois: event length too short for window sizing")

// Band is a frequency band in Hz with Low < High.
type Band struct {
	Low  float64
	High float64
}

// Config holds detection parameters.
//
// SampleRate, Band, and EventLength are required. The remaining fields
// default to Threshold 0, AttenuationDB 80, TransitionFraction 0.8,
// PadFactor 5, and an automatic WindowLength of roughly 5% of the
// expected event length, rounded down to a power of two.
type Config struct {
	SampleRate         float64
	Band               Band
	EventLength        float64 // expected event duration in seconds
	Threshold          float64 // smoothed-energy threshold (strict >)
	AttenuationDB      float64 // filter stop-band attenuation
	TransitionFraction float64 // transition bandwidth as a fraction of the band width
	PadFactor          int     // reflection pad per side, in wavelet scales
	WindowLength       int     // energy window in samples, 0 = auto
}

// ROI is one detected region of interest. Onset and Offset are seconds,
// FMin and FMax the band bounds in Hz. Every ROI of a run carries the
// configured band; there is no per-ROI frequency refinement.
type ROI struct {
	Onset  float64
	FMin   float64
	Offset float64
	FMax   float64
}

// Table is an ordered list of detections.
type Table []ROI

// Result holds the detection table together with the intermediate
// series a renderer needs: the reduced energy, its smoothed form, the
// binary mask, and the window-midpoint timestamps they share.
type Result struct {
	Table     Table
	Times     []float64
	Energy    []float64
	Smoothed  []float64
	Mask      []bool
	Threshold float64
}

// Empty reports whether the run detected nothing. An empty result is a
// valid terminal state, not an error.
func (r Result) Empty() bool {
	return len(r.Table) == 0
}

// Detector runs the detection pipeline with a fixed configuration.
type Detector struct {
	cfg Config
}

// NewDetector creates a detector. Zero-valued optional fields are
// replaced by defaults.
func NewDetector(cfg Config) *Detector {
	return &Detector{cfg: normalizeConfig(cfg)}
}

// Config returns the normalized configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect is a one-shot detection run over the given signal.
func Detect(signal []float64, cfg Config) (Result, error) {
	return NewDetector(cfg).Detect(signal)
}

// Detect runs the pipeline over one signal buffer.
func (d *Detector) Detect(signal []float64) (Result, error) {
	cfg := d.cfg
	if len(signal) == 0 {
		return Result{}, fmt.Errorf("rois: empty signal")
	}
	if cfg.SampleRate <= 0 {
		return Result{}, fmt.Errorf("rois: sample rate must be > 0: %g", cfg.SampleRate)
	}
	if cfg.EventLength <= 0 {
		return Result{}, fmt.Errorf("rois: event length must be > 0: %g", cfg.EventLength)
	}

	kern, err := fir.DesignBand(cfg.Band.Low, cfg.Band.High, cfg.SampleRate,
		cfg.AttenuationDB, cfg.TransitionFraction, true)
	if err != nil {
		return Result{}, err
	}

	filtered := make([]float64, len(signal))
	fir.New(kern).ProcessBlockTo(filtered, signal)

	wl, scale, err := sizing(cfg)
	if err != nil {
		return Result{}, err
	}

	times, energies, err := energy.Windowed(filtered, wl, cfg.SampleRate)
	if err != nil {
		return Result{}, err
	}

	// Reflection padding keeps the wavelet kernel from tasting the
	// series edge; the padded margin is trimmed after smoothing.
	margin := int(scale) * cfg.PadFactor
	padded, err := pad.Reflect(energies, margin, margin)
	if err != nil {
		return Result{}, fmt.Errorf("rois: %w", err)
	}

	smoothed, err := wavelet.Smooth(padded, scale)
	if err != nil {
		return Result{}, fmt.Errorf("rois: %w", err)
	}
	smoothed = smoothed[margin : len(smoothed)-margin]

	mask := binarize(smoothed, cfg.Threshold)
	onsets, offsets := maskEdges(mask, times)

	res := Result{
		Times:     times,
		Energy:    energies,
		Smoothed:  smoothed,
		Mask:      mask,
		Threshold: cfg.Threshold,
	}

	if len(onsets) == 0 || len(offsets) == 0 {
		return res, nil
	}

	duration := float64(len(signal)) / cfg.SampleRate
	onsets, offsets, err = reconcile(onsets, offsets, 0, duration)
	if err != nil {
		return Result{}, err
	}

	table := make(Table, len(onsets))
	for i := range onsets {
		table[i] = ROI{
			Onset:  round5(onsets[i]),
			FMin:   cfg.Band.Low,
			Offset: round5(offsets[i]),
			FMax:   cfg.Band.High,
		}
	}
	res.Table = table
	return res, nil
}

// sizing derives the energy window length and the wavelet scale from
// the expected event length.
func sizing(cfg Config) (wl int, scale float64, err error) {
	eventSamples := cfg.EventLength * cfg.SampleRate

	wl = cfg.WindowLength
	if wl == 0 {
		v := eventSamples * windowFraction
		if v < 1 {
			return 0, 0, ErrEventLength
		}
		wl = 1 << int(math.Floor(math.Log2(v)))
	}
	if wl < 1 || float64(wl) >= eventSamples {
		return 0, 0, ErrEventLength
	}

	// Wavelet width of half the event duration in reduced-series units.
	scale = math.Round(eventSamples / float64(wl) / 2)
	if scale < 1 {
		return 0, 0, ErrEventLength
	}
	return wl, scale, nil
}

func binarize(smoothed []float64, threshold float64) []bool {
	mask := make([]bool, len(smoothed))
	for i, v := range smoothed {
		mask[i] = v > threshold
	}
	return mask
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}

func normalizeConfig(cfg Config) Config {
	if cfg.AttenuationDB <= 0 {
		cfg.AttenuationDB = defaultAttenuationDB
	}
	if cfg.TransitionFraction <= 0 {
		cfg.TransitionFraction = defaultTransitionFraction
	}
	if cfg.PadFactor <= 0 {
		cfg.PadFactor = defaultPadFactor
	}
	if cfg.WindowLength < 0 {
		cfg.WindowLength = 0
	}
	return cfg
}
