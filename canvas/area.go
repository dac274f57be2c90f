package canvas

import (
	"fmt"
	"image"
	"image/color"
	"mandelbrot/misc"
	"math"
)

const tickCount = 10

// Range is a half open interval [Start, End) on one plot axis.
type Range struct {
	Start float64
	End   float64
}

func (r Range) Empty() bool {
	return !(r.End > r.Start)
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g)", r.Start, r.End)
}

// Span is a half open interval [Start, End) of pixel indices.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Layout is the space kept free around the plotted region, in pixels.
// The Y labels sit to the left of the plot and the X labels below it.
type Layout struct {
	Margin     int
	XLabelArea int
	YLabelArea int
}

// PlottingArea maps real/imaginary coordinates onto a sub rectangle of a
// Canvas. The imaginary axis grows upward.
type PlottingArea struct {
	canvas *Canvas
	imag   Range
	pixels image.Rectangle
	real   Range
}

// PixelRange reports the drawable columns and rows.
func (pa *PlottingArea) PixelRange() (Span, Span) {
	return Span{Start: pa.pixels.Min.X, End: pa.pixels.Max.X}, Span{Start: pa.pixels.Min.Y, End: pa.pixels.Max.Y}
}

// ToPixel maps a plane coordinate to the nearest pixel. ok is false when the
// coordinate falls outside the plotting area.
func (pa *PlottingArea) ToPixel(re float64, im float64) (image.Point, bool) {
	width := float64(pa.pixels.Dx())
	height := float64(pa.pixels.Dy())

	column := int(math.Round(misc.InverseLerpFloat64(pa.real.Start, pa.real.End, re) * width))
	row := int(math.Round(misc.InverseLerpFloat64(pa.imag.Start, pa.imag.End, im) * height))

	p := image.Point{X: pa.pixels.Min.X + column, Y: pa.pixels.Max.Y - 1 - row}
	return p, p.In(pa.pixels)
}

// SetPixel colours the pixel under (re, im). Points outside the area are clipped.
func (pa *PlottingArea) SetPixel(re float64, im float64, colour color.Color) error {
	p, ok := pa.ToPixel(re, im)
	if !ok {
		return nil
	}
	pa.canvas.image.Set(p.X, p.Y, colour)
	return nil
}

// DrawFrame draws the two axis lines bordering the label areas, with evenly
// spaced ticks pointing into them. No mesh lines are drawn over the plot.
func (pa *PlottingArea) DrawFrame(colour color.Color) {
	img := pa.canvas.image
	left := pa.pixels.Min.X - 1
	bottom := pa.pixels.Max.Y

	for y := pa.pixels.Min.Y; y <= bottom; y++ {
		img.Set(left, y, colour)
	}
	for x := left; x < pa.pixels.Max.X; x++ {
		img.Set(x, bottom, colour)
	}

	tickLength := 5
	for i := 0; i <= tickCount; i++ {
		fraction := float64(i) / tickCount
		x := int(math.Round(misc.LerpFloat64(float64(pa.pixels.Min.X), float64(pa.pixels.Max.X-1), fraction)))
		y := int(math.Round(misc.LerpFloat64(float64(pa.pixels.Max.Y-1), float64(pa.pixels.Min.Y), fraction)))
		for t := 1; t <= tickLength; t++ {
			img.Set(x, bottom+t, colour)
			img.Set(left-t, y, colour)
		}
	}
}
