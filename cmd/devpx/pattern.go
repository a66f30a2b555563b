package main

import (
	"errors"
	"image"
	"image/color"
	"os"

	errorsGo "github.com/go-errors/errors"
	"github.com/fogleman/gg"
	"github.com/spf13/cobra"

	"github.com/devpx/devpx/scale"
)

func init() { rootCmd.AddCommand(patternCmd) }

var patternCmd = &cobra.Command{
	Use:   patternCmdStr,
	Short: `render a test pattern and rescale it to device pixels`,
	Long: `Render a test pattern and rescale it to device pixels.

` + patternUsageStr + `

The pattern combines a single-pixel border, a checkerboard and a gradient
band. Edge artifacts of a broken resampling blit (dark border rows) show
up immediately on the white margin.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		run(patternFunc(cmd, args))
	},
}

var (
	patternCmdStr   = "pattern"
	patternUsageStr = `usage: ` + os.Args[0] + ` ` + patternCmdStr + ` <output> [<sizeLogical(<w>x<h>)>]`
	errPatternUsage = errors.New(patternUsageStr)
)

func patternFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		size := scale.Size{W: 96, H: 96}
		if len(args) == 2 {
			var err error
			size, err = parseSize(args[1])
			if err != nil {
				return errorsGo.New(errPatternUsage)
			}
		}
		s, err := newScaler()
		if err != nil {
			return err
		}
		m, err := s.RescaleToDevice(testPattern(size.W, size.H))
		if err != nil {
			return err
		}
		return writeImage(args[0], m)
	}
}

func testPattern(w, h int) image.Image {
	const cell = 8
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	for y := cell; y < h-cell; y += cell {
		for x := cell; x < w-cell; x += cell {
			if (x/cell+y/cell)%2 == 0 {
				continue
			}
			dc.DrawRectangle(float64(x), float64(y), cell, cell)
			dc.Fill()
		}
	}
	grad := gg.NewLinearGradient(0, 0, float64(w), 0)
	grad.AddColorStop(0, color.Black)
	grad.AddColorStop(1, color.White)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(cell, float64(h/2-cell), float64(w-2*cell), 2*cell)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, float64(w-1), float64(h-1))
	dc.Stroke()
	return dc.Image()
}
