// Command roidetect finds acoustic regions of interest in a WAV file.
//
// Usage:
//
//	roidetect [flags] -in recording.wav
//
// The signal is bandpass filtered, reduced to windowed energy, smoothed
// with a Ricker wavelet, and thresholded; each detected event is printed
// as an onset/offset pair with the analysis band.
//
// Examples:
//
//	roidetect -in field.wav -low 2000 -high 8000 -len 0.5
//	roidetect -in field.wav -low 2000 -high 8000 -len 0.5 -threshold 0.001
//	roidetect -in field.wav -low 2000 -high 8000 -len 0.5 -csv rois.csv -png rois.png
//	roidetect -demo
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-rois/dsp/signal"
	"github.com/cwbudde/algo-rois/render"
	"github.com/cwbudde/algo-rois/rois"
	"github.com/cwbudde/algo-rois/wavio"
)

func main() {
	in := flag.String("in", "", "input WAV file")
	low := flag.Float64("low", 2000, "band lower bound in Hz")
	high := flag.Float64("high", 8000, "band upper bound in Hz")
	eventLen := flag.Float64("len", 0.5, "expected event length in seconds")
	threshold := flag.Float64("threshold", 0, "smoothed-energy threshold")
	atten := flag.Float64("atten", 80, "filter stop-band attenuation in dB")
	transition := flag.Float64("transition", 0.8, "transition bandwidth as a fraction of the band width")
	padFactor := flag.Int("padfactor", 5, "reflection pad per side, in wavelet scales")
	windowLen := flag.Int("window", 0, "energy window length in samples (0 = automatic)")
	csvPath := flag.String("csv", "", "write the detection table to this CSV file")
	pngPath := flag.String("png", "", "write a spectrogram/energy overview to this PNG file")
	demo := flag.Bool("demo", false, "run on a built-in synthetic burst instead of a file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roidetect [flags] -in recording.wav\n\n")
		fmt.Fprintf(os.Stderr, "Detects acoustic regions of interest in a frequency band.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  roidetect -in field.wav -low 2000 -high 8000 -len 0.5\n")
		fmt.Fprintf(os.Stderr, "  roidetect -in field.wav -low 2000 -high 8000 -len 0.5 -csv rois.csv\n")
		fmt.Fprintf(os.Stderr, "  roidetect -demo\n")
	}
	flag.Parse()

	sig, rate, err := loadSignal(*in, *demo)
	if err != nil {
		fatal(err)
	}

	res, err := rois.Detect(sig, rois.Config{
		SampleRate:         rate,
		Band:               rois.Band{Low: *low, High: *high},
		EventLength:        *eventLen,
		Threshold:          *threshold,
		AttenuationDB:      *atten,
		TransitionFraction: *transition,
		PadFactor:          *padFactor,
		WindowLength:       *windowLen,
	})
	if err != nil {
		fatal(err)
	}

	if res.Empty() {
		fmt.Fprintln(os.Stderr, "no regions detected")
	} else {
		printTable(res.Table)
	}

	if *csvPath != "" {
		if err := writeCSV(*csvPath, res.Table); err != nil {
			fatal(err)
		}
	}
	if *pngPath != "" {
		if err := writePNG(*pngPath, sig, rate, res); err != nil {
			fatal(err)
		}
	}
}

// loadSignal reads the input file, or synthesizes a ten second clip
// with a 5 kHz burst at 4.75 s when -demo is set.
func loadSignal(path string, demo bool) ([]float64, float64, error) {
	if demo {
		const rate = 44100.0
		sig, err := signal.NewGenerator(rate).Burst(5000, 1.0, 10, 4.75, 0.5)
		return sig, rate, err
	}
	if path == "" {
		return nil, 0, fmt.Errorf("no input file (use -in or -demo)")
	}
	return wavio.Read(path)
}

func printTable(table rois.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tonset [s]\toffset [s]\tfmin [Hz]\tfmax [Hz]\t")
	for i, r := range table {
		fmt.Fprintf(w, "%d\t%.5f\t%.5f\t%g\t%g\t\n", i+1, r.Onset, r.Offset, r.FMin, r.FMax)
	}
	w.Flush()
}

func writeCSV(path string, table rois.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rois.WriteCSV(f, table); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(path string, sig []float64, rate float64, res rois.Result) error {
	const (
		fftSize = 1024
		hop     = 512
	)
	spec, err := render.ComputeSpectrogram(sig, rate, fftSize, hop)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, spec, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
