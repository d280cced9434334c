// Package wavio reads and writes mono float64 sample buffers as WAV
// files. Multichannel input is averaged down to mono on read; output is
// always 16-bit mono PCM.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Errors returned by the reader and writer.
var (
	ErrInvalidFile = errors.New("wavio: not a valid WAV file")
	ErrEmptyData   = errors.New("wavio: no samples to write")
)

const writeBitDepth = 16

// Read decodes a WAV file into a mono float64 buffer scaled to
// [-1, 1] and returns it with the file's sample rate. Stereo and
// multichannel files are mixed down by averaging the channels.
func Read(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, 0, ErrInvalidFile
	}

	bitDepth := int(dec.BitDepth)
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, 0, fmt.Errorf("wavio: unsupported bit depth %d", bitDepth)
	}
	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, 0, fmt.Errorf("wavio: unsupported channel count %d", channels)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: decode: %w", err)
	}

	divisor := float64(int(1) << (bitDepth - 1))
	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		out[i] = sum / float64(channels) / divisor
	}
	return out, float64(dec.SampleRate), nil
}

// Write encodes data as a 16-bit mono PCM WAV file. Samples outside
// [-1, 1] are clamped.
func Write(path string, data []float64, sampleRate float64) error {
	if len(data) == 0 {
		return ErrEmptyData
	}
	if sampleRate <= 0 {
		return fmt.Errorf("wavio: sample rate must be > 0: %g", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rate := int(sampleRate)
	enc := wav.NewEncoder(f, rate, writeBitDepth, 1, 1)

	const peak = 1<<(writeBitDepth-1) - 1
	samples := make([]int, len(data))
	for i, v := range data {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		samples[i] = int(v * peak)
	}

	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{SampleRate: rate, NumChannels: 1},
		SourceBitDepth: writeBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}
	return enc.Close()
}
