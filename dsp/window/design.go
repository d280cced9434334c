package window

import (
	"fmt"
	"math"
)

// KaiserBeta returns the Kaiser shape parameter that achieves the given
// stop-band attenuation in dB.
func KaiserBeta(attenDB float64) float64 {
	switch {
	case attenDB > 50:
		return 0.1102 * (attenDB - 8.7)
	case attenDB >= 21:
		d := attenDB - 21
		return 0.5842*math.Pow(d, 0.4) + 0.07886*d
	default:
		return 0
	}
}

// KaiserOrder returns the tap count and Kaiser beta for a filter that
// reaches attenDB of stop-band attenuation over a transition band of
// widthNorm, where widthNorm is the transition width normalized to the
// Nyquist frequency.
//
// The tap count is rounded up to the nearest odd value so that the
// resulting kernel is a Type I linear-phase filter. A Type I kernel has
// no forced zero at Nyquist, which band-reject designs require.
func KaiserOrder(attenDB, widthNorm float64) (int, float64, error) {
	if widthNorm <= 0 {
		return 0, 0, fmt.Errorf("window: transition width must be > 0: %g", widthNorm)
	}
	if attenDB < 8 {
		return 0, 0, fmt.Errorf("window: attenuation too small for Kaiser design: %g dB", attenDB)
	}

	beta := KaiserBeta(attenDB)
	taps := int(math.Ceil((attenDB-7.95)/(2.285*math.Pi*widthNorm))) + 1
	if taps < 3 {
		taps = 3
	}
	if taps%2 == 0 {
		taps++
	}
	return taps, beta, nil
}
