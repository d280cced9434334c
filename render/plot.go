package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/cwbudde/algo-rois/rois"
)

// Image layout constants in pixels.
const (
	plotWidth    = 960
	specHeight   = 320
	energyHeight = 160
	gapHeight    = 8
	dynamicRange = 90 // dB shown below the spectrogram peak
)

var (
	roiColor       = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	thresholdColor = color.RGBA{R: 255, G: 160, B: 0, A: 255}
	curveColor     = color.RGBA{R: 96, G: 200, B: 255, A: 255}
	gapColor       = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// WritePNG renders a two-panel overview: the spectrogram with the
// detected regions outlined on top, the smoothed energy with the
// threshold line below. Panels share the time axis.
func WritePNG(w io.Writer, spec *Spectrogram, res rois.Result) error {
	if spec == nil || len(spec.Power) == 0 {
		return ErrEmptyInput
	}

	height := specHeight + gapHeight + energyHeight
	img := image.NewRGBA(image.Rect(0, 0, plotWidth, height))

	drawSpectrogram(img, spec)
	for _, roi := range res.Table {
		drawROI(img, spec, roi)
	}
	for y := specHeight; y < specHeight+gapHeight; y++ {
		for x := 0; x < plotWidth; x++ {
			img.Set(x, y, gapColor)
		}
	}
	drawEnergy(img, spec, res)

	return png.Encode(w, img)
}

func drawSpectrogram(img *image.RGBA, spec *Spectrogram) {
	frames := len(spec.Power)
	bins := len(spec.Power[0])

	peak := float64(floorDB)
	for _, row := range spec.Power {
		for _, v := range row {
			if v > peak {
				peak = v
			}
		}
	}
	floor := peak - dynamicRange

	for x := 0; x < plotWidth; x++ {
		f := x * frames / plotWidth
		row := spec.Power[f]
		for y := 0; y < specHeight; y++ {
			// Low frequencies at the bottom of the panel.
			k := (specHeight - 1 - y) * bins / specHeight
			v := (row[k] - floor) / dynamicRange
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			g := uint8(v * 255)
			img.Set(x, y, color.RGBA{R: g, G: g, B: g, A: 255})
		}
	}
}

func drawROI(img *image.RGBA, spec *Spectrogram, roi rois.ROI) {
	dur := spec.Duration()
	nyq := spec.MaxFreq()
	if dur <= 0 || nyq <= 0 {
		return
	}

	x0 := timeToX(roi.Onset, dur)
	x1 := timeToX(roi.Offset, dur)
	y0 := freqToY(roi.FMax, nyq)
	y1 := freqToY(roi.FMin, nyq)

	for x := x0; x <= x1; x++ {
		img.Set(x, y0, roiColor)
		img.Set(x, y1, roiColor)
	}
	for y := y0; y <= y1; y++ {
		img.Set(x0, y, roiColor)
		img.Set(x1, y, roiColor)
	}
}

func drawEnergy(img *image.RGBA, spec *Spectrogram, res rois.Result) {
	top := specHeight + gapHeight
	for y := top; y < top+energyHeight; y++ {
		for x := 0; x < plotWidth; x++ {
			img.Set(x, y, color.RGBA{A: 255})
		}
	}
	if len(res.Smoothed) == 0 {
		return
	}

	lo, hi := res.Smoothed[0], res.Smoothed[0]
	for _, v := range res.Smoothed {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	lo = math.Min(lo, res.Threshold)
	hi = math.Max(hi, res.Threshold)
	if hi == lo {
		hi = lo + 1
	}

	valueToY := func(v float64) int {
		frac := (v - lo) / (hi - lo)
		y := top + energyHeight - 1 - int(frac*float64(energyHeight-1))
		return clampInt(y, top, top+energyHeight-1)
	}

	ty := valueToY(res.Threshold)
	for x := 0; x < plotWidth; x++ {
		img.Set(x, ty, thresholdColor)
	}

	n := len(res.Smoothed)
	prevY := valueToY(res.Smoothed[0])
	for x := 0; x < plotWidth; x++ {
		i := x * n / plotWidth
		y := valueToY(res.Smoothed[i])
		y0, y1 := y, prevY
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		for yy := y0; yy <= y1; yy++ {
			img.Set(x, yy, curveColor)
		}
		prevY = y
	}
}

func timeToX(t, dur float64) int {
	return clampInt(int(t/dur*float64(plotWidth-1)), 0, plotWidth-1)
}

func freqToY(f, nyq float64) int {
	return clampInt(int((1-f/nyq)*float64(specHeight-1)), 0, specHeight-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
