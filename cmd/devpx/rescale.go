package main

import (
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/devpx/devpx/internal/logx"
	"github.com/devpx/devpx/scale"
)

func init() { rootCmd.AddCommand(rescaleCmd) }

var rescaleCmd = &cobra.Command{
	Use:   rescaleCmdStr,
	Short: `rescale an image file to device pixels`,
	Long: `Rescale an image file to device pixels.

` + rescaleUsageStr + `

Without an explicit target size the image is treated as logical units and
rescaled by the display's scaling factors. The output format follows the
output file extension (png, jpg).`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		run(rescaleFunc(cmd, args))
	},
}

var (
	rescaleCmdStr   = "rescale"
	rescaleUsageStr = `usage: ` + os.Args[0] + ` ` + rescaleCmdStr + ` <input> <output> [<sizeDevice(<w>x<h>)>]`
	errRescaleUsage = errors.New(rescaleUsageStr)
)

func rescaleFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		f, err := os.Open(args[0])
		if err != nil {
			return errorsGo.New(err)
		}
		img, _, err := image.Decode(f)
		_ = f.Close()
		if err != nil {
			return errorsGo.New(err)
		}
		s, err := newScaler()
		if err != nil {
			return err
		}
		var m image.Image
		rescale := func() error {
			if len(args) == 3 {
				target, err := parseSize(args[2])
				if err != nil {
					return err
				}
				m, err = s.Rescale(img, target)
				return err
			}
			m, err = s.RescaleToDevice(img)
			return err
		}
		if err := logx.TimeIt(rescale, `rescaled bitmap`, s, `input`, args[0]); err != nil {
			return err
		}
		return writeImage(args[1], m)
	}
}

func parseSize(s string) (scale.Size, error) {
	sizeParts := strings.SplitN(s, `x`, 2)
	if len(sizeParts) != 2 {
		return scale.Size{}, errorsGo.New(errRescaleUsage)
	}
	w, err := strconv.Atoi(sizeParts[0])
	if err != nil {
		return scale.Size{}, errorsGo.New(errRescaleUsage)
	}
	h, err := strconv.Atoi(sizeParts[1])
	if err != nil {
		return scale.Size{}, errorsGo.New(errRescaleUsage)
	}
	return scale.Size{W: w, H: h}, nil
}

func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errorsGo.New(err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case `.jpg`, `.jpeg`:
		err = jpeg.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return errorsGo.New(err)
	}
	return nil
}
