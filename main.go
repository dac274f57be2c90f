package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"mandelbrot/canvas"
	"mandelbrot/mandelbrot"
	"mandelbrot/misc"
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/spf13/cobra"
)

var frameColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set to mandelbrot.png",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := bslogger.NewLogger("Mandelbrot", bslogger.Normal, nil)

	var settings mandelbrot.Settings
	err := settings.Verify()
	if misc.CheckError(err, logger, misc.Error, "Verifying settings") {
		return err
	}
	logger.Debug(settings.String())

	err = drawMandelbrot(settings, cmd.OutOrStdout())
	var presentErr *canvas.PresentError
	if errors.As(err, &presentErr) {
		logger.Error(fmt.Sprintf("The image was computed but not saved. Please make sure %s is writable - %s", presentErr.Path, presentErr.Err))
	}
	return err
}

// drawMandelbrot renders settings onto a fresh canvas and writes it to settings.OutputFile.
func drawMandelbrot(settings mandelbrot.Settings, out io.Writer) error {
	root := canvas.NewCanvas(settings.Width, settings.Height, settings.OutputFile)
	root.Fill(settings.Background)

	realRange, imagRange := settings.Viewport.Ranges()
	area, err := root.ConfigureViewport(realRange, imagRange, settings.Layout())
	if err != nil {
		return fmt.Errorf("unable to configure plotting area - %w", err)
	}
	area.DrawFrame(frameColor)

	renderer := mandelbrot.NewRenderer(settings)
	err = renderer.Render(area)
	if err != nil {
		return err
	}

	err = root.Present()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Result has been saved to %s\n", settings.OutputFile)
	return err
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
