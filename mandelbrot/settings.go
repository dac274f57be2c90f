package mandelbrot

import (
	"fmt"
	"image/color"
	"mandelbrot/canvas"
)

// Viewport is the region of the complex plane being rasterized. Both ranges
// are half open: [RealMin, RealMax) and [ImagMin, ImagMax).
type Viewport struct {
	RealMin float64
	RealMax float64
	ImagMin float64
	ImagMax float64
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g) x [%g, %g)", v.RealMin, v.RealMax, v.ImagMin, v.ImagMax)
}

// Ranges returns the real and imaginary extents as plot axis ranges.
func (v Viewport) Ranges() (canvas.Range, canvas.Range) {
	return canvas.Range{Start: v.RealMin, End: v.RealMax}, canvas.Range{Start: v.ImagMin, End: v.ImagMax}
}

// Settings are the launch constants of a run. They are trusted values, Verify
// only fills in the ones left at their zero value.
type Settings struct {
	Background    color.RGBA
	EscapeColor   color.RGBA
	Height        int
	Lightness     float64
	Margin        int
	MaxIterations uint
	OutputFile    string
	Saturation    float64
	Viewport      Viewport
	Width         int
	XLabelArea    int
	YLabelArea    int
}

func (s *Settings) Verify() error {
	if s.Background == (color.RGBA{}) {
		s.Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if s.EscapeColor == (color.RGBA{}) {
		s.EscapeColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}
	if s.Height <= 0 {
		s.Height = 1200
	}
	if s.Lightness <= 0 {
		s.Lightness = 0.5
	}
	if s.Margin <= 0 {
		s.Margin = 20
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 100
	}
	if s.OutputFile == "" {
		s.OutputFile = "mandelbrot.png"
	}
	if s.Saturation <= 0 {
		s.Saturation = 1.0
	}
	if s.Viewport == (Viewport{}) {
		s.Viewport = Viewport{RealMin: -2.1, RealMax: 0.6, ImagMin: -1.2, ImagMax: 1.2}
	}
	if s.Width <= 0 {
		s.Width = 1600
	}
	if s.XLabelArea <= 0 {
		s.XLabelArea = 10
	}
	if s.YLabelArea <= 0 {
		s.YLabelArea = 10
	}

	if s.Viewport.RealMax <= s.Viewport.RealMin || s.Viewport.ImagMax <= s.Viewport.ImagMin {
		return fmt.Errorf("viewport %s is empty", s.Viewport)
	}
	return nil
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Image: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Margin: %d X Label Area: %d Y Label Area: %d\n", s.Margin, s.XLabelArea, s.YLabelArea)
	output += fmt.Sprintf("Viewport: %s\n", s.Viewport)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Output File: %s\n", s.OutputFile)
	return output
}

func (s *Settings) Layout() canvas.Layout {
	return canvas.Layout{
		Margin:     s.Margin,
		XLabelArea: s.XLabelArea,
		YLabelArea: s.YLabelArea,
	}
}

// Palette returns the colouring policy described by these settings.
func (s *Settings) Palette() Palette {
	return Palette{
		InSet:      s.EscapeColor,
		Lightness:  s.Lightness,
		Saturation: s.Saturation,
	}
}
