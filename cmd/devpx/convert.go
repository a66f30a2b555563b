package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	errorsGo "github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/devpx/devpx/scale"
)

func init() { rootCmd.AddCommand(convertCmd) }

var convertCmd = &cobra.Command{
	Use:   convertCmdStr,
	Short: `convert a logical size to device pixels`,
	Long: `Convert a logical size to device pixels.

` + convertUsageStr + `

The conversion rounds each axis to the nearest device pixel, ties away from zero.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(convertFunc(cmd, args))
	},
}

var (
	convertCmdStr   = "convert"
	convertUsageStr = `usage: ` + os.Args[0] + ` ` + convertCmdStr + ` <sizeLogical(<w>x<h>)>`
	errConvertUsage = errors.New(convertUsageStr)
)

func convertFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		sizeParts := strings.SplitN(args[0], `x`, 2)
		if len(sizeParts) != 2 {
			return errorsGo.New(errConvertUsage)
		}
		w, err := strconv.Atoi(sizeParts[0])
		if err != nil {
			return errorsGo.New(errConvertUsage)
		}
		h, err := strconv.Atoi(sizeParts[1])
		if err != nil {
			return errorsGo.New(errConvertUsage)
		}
		s, err := newScaler()
		if err != nil {
			return err
		}
		fmt.Println(s.ToDeviceSize(scale.Size{W: w, H: h}))
		return nil
	}
}
