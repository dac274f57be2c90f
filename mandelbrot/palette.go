package mandelbrot

import (
	"image/color"
	"mandelbrot/misc"
)

type Palette struct {
	InSet      color.RGBA
	Lightness  float64
	Saturation float64
}

func DefaultPalette() Palette {
	return Palette{
		InSet:      color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Lightness:  0.5,
		Saturation: 1.0,
	}
}

// Color maps an escape count to a colour. Points that never escaped get the
// in-set colour, everything else a hue proportional to count/budget.
func (p Palette) Color(count uint, budget uint) color.RGBA {
	if count >= budget {
		return p.InSet
	}
	hue := float64(count) / float64(budget)
	return misc.HSLToRGB(hue, p.Saturation, p.Lightness)
}
