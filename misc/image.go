package misc

import (
	"image/color"
	"math"
)

func LerpFloat64(v1 float64, v2 float64, fraction float64) float64 {
	return v1 + (v2-v1)*fraction
}

// InverseLerpFloat64 is the fraction of the way v lies from v1 to v2.
func InverseLerpFloat64(v1 float64, v2 float64, v float64) float64 {
	return (v - v1) / (v2 - v1)
}

// HSLToRGB converts a hue in turns ([0, 1) wraps), saturation and lightness in
// [0, 1] to an opaque RGBA colour.
// https://en.wikipedia.org/wiki/HSL_and_HSV#HSL_to_RGB
func HSLToRGB(hue float64, saturation float64, lightness float64) color.RGBA {
	hue -= math.Floor(hue)
	saturation = clamp01(saturation)
	lightness = clamp01(lightness)

	if saturation == 0 {
		v := toUint8(lightness)
		return color.RGBA{R: v, G: v, B: v, A: 255}
	}

	var q float64
	if lightness < 0.5 {
		q = lightness * (1 + saturation)
	} else {
		q = lightness + saturation - lightness*saturation
	}
	p := 2*lightness - q

	return color.RGBA{
		R: toUint8(hueToChannel(p, q, hue+1.0/3.0)),
		G: toUint8(hueToChannel(p, q, hue)),
		B: toUint8(hueToChannel(p, q, hue-1.0/3.0)),
		A: 255,
	}
}

func hueToChannel(p float64, q float64, t float64) float64 {
	t -= math.Floor(t)
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func toUint8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
