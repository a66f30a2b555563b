package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/devpx/devpx/internal/consts"
)

var rootCmd = &cobra.Command{
	Use:          consts.LibraryName,
	Short:        `devpx converts logical units and bitmaps to device pixels`,
	Long:         `devpx converts logical units and bitmaps to device pixels.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug errors`)
	rootCmd.PersistentFlags().BoolVar(&verbose, `verbose`, false, `log scaling details to stderr`)
	rootCmd.PersistentFlags().StringVar(&configFile, `config`, ``, `config file (TOML)`)
	rootCmd.PersistentFlags().StringVar(&flagDPI, `dpi`, ``, `forced display density, e.g. "144" or "144x120"`)
	rootCmd.PersistentFlags().StringVar(&flagBackend, `backend`, ``, `resampling backend: `+backendNames())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debug       bool
	verbose     bool
	configFile  string
	flagDPI     string
	flagBackend string
)

func run(fn func() error) {
	if fn == nil {
		log.Fatal(errors.New(consts.ErrNilParam))
	}
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Println(stackFramer.ErrorStack())
		} else {
			log.Fatal(err)
		}
	}
}
