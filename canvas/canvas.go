package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"mandelbrot/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

// Canvas is an in-memory bitmap that is written to path once on Present.
type Canvas struct {
	image  *image.RGBA
	logger bslogger.Logger
	path   string
}

// PresentError means the image was drawn but never reached disk.
type PresentError struct {
	Path string
	Err  error
}

func (e *PresentError) Error() string {
	return fmt.Sprintf("unable to write result to %s - %s", e.Path, e.Err)
}

func (e *PresentError) Unwrap() error {
	return e.Err
}

func NewCanvas(width int, height int, path string) *Canvas {
	return &Canvas{
		image:  image.NewRGBA(image.Rect(0, 0, width, height)),
		logger: bslogger.NewLogger("Canvas", bslogger.Normal, nil),
		path:   path,
	}
}

func (c *Canvas) Image() image.Image {
	return c.image
}

func (c *Canvas) Fill(colour color.Color) {
	draw.Draw(c.image, c.image.Bounds(), &image.Uniform{C: colour}, image.Point{}, draw.Src)
}

// ConfigureViewport reserves the layout's margins and label areas around the
// plot and returns the area that maps the given ranges onto the pixels left over.
func (c *Canvas) ConfigureViewport(realRange Range, imagRange Range, layout Layout) (*PlottingArea, error) {
	if realRange.Empty() || imagRange.Empty() {
		return nil, fmt.Errorf("unable to plot empty range %s x %s", realRange, imagRange)
	}

	bounds := c.image.Bounds()
	minX := bounds.Min.X + layout.Margin + layout.YLabelArea
	minY := bounds.Min.Y + layout.Margin
	maxX := bounds.Max.X - layout.Margin
	maxY := bounds.Max.Y - layout.Margin - layout.XLabelArea
	// image.Rect would swap inverted bounds instead of reporting them
	if minX >= maxX || minY >= maxY {
		return nil, errors.New("margins leave no room for the plotting area")
	}
	pixels := image.Rect(minX, minY, maxX, maxY)

	c.logger.Debug(fmt.Sprintf("Plotting area %s on a %s canvas", pixels, bounds))
	return &PlottingArea{
		canvas: c,
		imag:   imagRange,
		pixels: pixels,
		real:   realRange,
	}, nil
}

// Present encodes the canvas as a PNG and writes it to the canvas path.
func (c *Canvas) Present() error {
	err := misc.WriteFile(c.path, func(w io.Writer) error {
		return png.Encode(w, c.image)
	})
	if err != nil {
		return &PresentError{Path: c.path, Err: err}
	}
	c.logger.Debug(fmt.Sprintf("Wrote %s image to %s", c.image.Bounds().Size(), c.path))
	return nil
}
