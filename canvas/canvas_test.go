package canvas

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	realRange = Range{Start: -2.1, End: 0.6}
	imagRange = Range{Start: -1.2, End: 1.2}
	layout    = Layout{Margin: 20, XLabelArea: 10, YLabelArea: 10}
)

func TestConfigureViewportPixelRange(t *testing.T) {
	c := NewCanvas(1600, 1200, "unused.png")
	area, err := c.ConfigureViewport(realRange, imagRange, layout)
	if err != nil {
		t.Fatalf("ConfigureViewport: %v", err)
	}

	columns, rows := area.PixelRange()
	if columns != (Span{Start: 30, End: 1580}) {
		t.Errorf("columns: got %+v, want [30, 1580)", columns)
	}
	if rows != (Span{Start: 20, End: 1170}) {
		t.Errorf("rows: got %+v, want [20, 1170)", rows)
	}
	if columns.Len() != 1550 || rows.Len() != 1150 {
		t.Errorf("size: got %dx%d, want 1550x1150", columns.Len(), rows.Len())
	}
}

func TestConfigureViewportErrors(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		real   Range
		imag   Range
	}{
		{"margins fill canvas", 40, 200, realRange, imagRange},
		{"label area fills canvas", 200, 50, realRange, imagRange},
		{"empty real range", 200, 200, Range{Start: 1, End: 1}, imagRange},
		{"inverted imaginary range", 200, 200, realRange, Range{Start: 1, End: -1}},
	}

	for _, tt := range tests {
		c := NewCanvas(tt.width, tt.height, "unused.png")
		_, err := c.ConfigureViewport(tt.real, tt.imag, layout)
		if err == nil {
			t.Errorf("%s: got nil error", tt.name)
		}
	}
}

func TestToPixelIsPixelExact(t *testing.T) {
	c := NewCanvas(160, 120, "unused.png")
	area, err := c.ConfigureViewport(realRange, imagRange, layout)
	if err != nil {
		t.Fatalf("ConfigureViewport: %v", err)
	}

	columns, rows := area.PixelRange()
	width, height := columns.Len(), rows.Len()
	stepReal := (realRange.End - realRange.Start) / float64(width)
	stepImag := (imagRange.End - imagRange.Start) / float64(height)

	seen := make(map[image.Point]bool)
	for row := 0; row < height; row++ {
		for column := 0; column < width; column++ {
			re := realRange.Start + stepReal*float64(column)
			im := imagRange.Start + stepImag*float64(row)
			p, ok := area.ToPixel(re, im)
			if !ok {
				t.Fatalf("ToPixel(%g, %g): outside the plotting area", re, im)
			}
			want := image.Point{X: columns.Start + column, Y: rows.End - 1 - row}
			if p != want {
				t.Errorf("ToPixel(%g, %g): got %v, want %v", re, im, p, want)
			}
			seen[p] = true
		}
	}
	if len(seen) != width*height {
		t.Errorf("got %d distinct pixels, want %d", len(seen), width*height)
	}
}

func TestSetPixelClips(t *testing.T) {
	c := NewCanvas(160, 120, "unused.png")
	c.Fill(white)
	area, err := c.ConfigureViewport(realRange, imagRange, layout)
	if err != nil {
		t.Fatalf("ConfigureViewport: %v", err)
	}

	outside := [][2]float64{
		{realRange.End, 0},
		{realRange.Start - 1, 0},
		{0, imagRange.End},
		{0, imagRange.Start - 0.5},
	}
	for _, p := range outside {
		err := area.SetPixel(p[0], p[1], red)
		if err != nil {
			t.Errorf("SetPixel(%g, %g): %v", p[0], p[1], err)
		}
	}

	img := c.Image()
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != white {
				t.Fatalf("pixel (%d, %d) changed by a clipped point", x, y)
			}
		}
	}

	// the viewport origin is the lower left drawable pixel
	err = area.SetPixel(realRange.Start, imagRange.Start, red)
	if err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	columns, rows := area.PixelRange()
	if got := color.RGBAModel.Convert(img.At(columns.Start, rows.End-1)); got != red {
		t.Errorf("lower left pixel: got %v, want %v", got, red)
	}
}

func TestDrawFrame(t *testing.T) {
	c := NewCanvas(160, 120, "unused.png")
	c.Fill(white)
	area, err := c.ConfigureViewport(realRange, imagRange, layout)
	if err != nil {
		t.Fatalf("ConfigureViewport: %v", err)
	}
	area.DrawFrame(black)

	img := c.Image()
	columns, rows := area.PixelRange()
	midX := (columns.Start + columns.End) / 2
	midY := (rows.Start + rows.End) / 2

	if got := color.RGBAModel.Convert(img.At(columns.Start-1, midY)); got != black {
		t.Errorf("left axis: got %v, want %v", got, black)
	}
	if got := color.RGBAModel.Convert(img.At(midX, rows.End)); got != black {
		t.Errorf("bottom axis: got %v, want %v", got, black)
	}
	if got := color.RGBAModel.Convert(img.At(midX, midY)); got != white {
		t.Errorf("plot interior: got %v, want %v", got, white)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != white {
		t.Errorf("margin: got %v, want %v", got, white)
	}
}

func TestPresentWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	c := NewCanvas(64, 48, path)
	c.Fill(white)
	c.image.Set(10, 10, red)

	err := c.Present()
	if err != nil {
		t.Fatalf("Present: %v", err)
	}

	// Present overwrites unconditionally
	err = c.Present()
	if err != nil {
		t.Fatalf("Present again: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("bounds: got %v, want 64x48", img.Bounds())
	}
	if got := color.RGBAModel.Convert(img.At(10, 10)); got != red {
		t.Errorf("pixel (10, 10): got %v, want %v", got, red)
	}
	if got := color.RGBAModel.Convert(img.At(0, 0)); got != white {
		t.Errorf("pixel (0, 0): got %v, want %v", got, white)
	}
}

func TestPresentError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	c := NewCanvas(8, 8, path)

	err := c.Present()
	var presentErr *PresentError
	if !errors.As(err, &presentErr) {
		t.Fatalf("Present: got %v, want a *PresentError", err)
	}
	if presentErr.Path != path {
		t.Errorf("Path: got %q, want %q", presentErr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Present: got %v, want it to wrap %v", err, os.ErrNotExist)
	}
}
