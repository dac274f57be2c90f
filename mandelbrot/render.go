package mandelbrot

import (
	"fmt"
	"image/color"
	"mandelbrot/canvas"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

// PixelSetter receives one colour per grid cell, addressed by its complex coordinate.
type PixelSetter func(Coordinate, color.RGBA) error

// PlotArea is the drawable region a Renderer writes into.
type PlotArea interface {
	PixelRange() (columns canvas.Span, rows canvas.Span)
	SetPixel(re float64, im float64, colour color.Color) error
}

// Render walks the width x height grid in row-major order, maps every cell onto
// the viewport and hands the coloured result to setPixel. The first error
// returned by setPixel aborts the walk.
func Render(viewport Viewport, width int, height int, budget uint, palette Palette, setPixel PixelSetter) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	// Step sizes are fixed once so columns and rows never drift
	stepReal := (viewport.RealMax - viewport.RealMin) / float64(width)
	stepImag := (viewport.ImagMax - viewport.ImagMin) / float64(height)

	samples := width * height
	for k := 0; k < samples; k++ {
		c := Coordinate{
			Real: viewport.RealMin + stepReal*float64(k%width),
			Imag: viewport.ImagMin + stepImag*float64(k/width),
		}

		count := EscapeTime(c, budget)
		err := setPixel(c, palette.Color(count, budget))
		if err != nil {
			return fmt.Errorf("unable to set pixel at %s - %w", c, err)
		}
	}
	return nil
}

type Renderer struct {
	logger   bslogger.Logger
	settings Settings
}

func NewRenderer(settings Settings) Renderer {
	return Renderer{
		logger:   bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		settings: settings,
	}
}

// Render fills area using the grid the area reports, not the nominal image size.
func (r *Renderer) Render(area PlotArea) error {
	columns, rows := area.PixelRange()
	width, height := columns.Len(), rows.Len()
	r.logger.Debug(fmt.Sprintf("Rendering %dx%d pixels over %s with %d iterations", width, height, r.settings.Viewport, r.settings.MaxIterations))

	startTime := time.Now()
	var inSet int
	palette := r.settings.Palette()
	err := Render(r.settings.Viewport, width, height, r.settings.MaxIterations, palette, func(c Coordinate, colour color.RGBA) error {
		if colour == palette.InSet {
			inSet++
		}
		return area.SetPixel(c.Real, c.Imag, colour)
	})
	if err != nil {
		r.logger.Error(err.Error())
		return err
	}

	r.logger.Debug(fmt.Sprintf("Rendered %d pixels (%d in set) in %s", width*height, inSet, time.Since(startTime)))
	return nil
}
