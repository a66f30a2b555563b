package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() { rootCmd.AddCommand(densityCmd) }

var densityCmd = &cobra.Command{
	Use:   `density`,
	Short: `print display density, scaling factors and chosen algorithm`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(densityFunc(cmd, args))
	},
}

func densityFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		s, err := newScaler()
		if err != nil {
			return err
		}
		d := s.Density()
		fmt.Printf("density:          %gx%g dpi\n", d.X, d.Y)
		if s.FellBack() {
			fmt.Println(`                  (query failed, reference density assumed)`)
		}
		fmt.Printf("factor:           %gx%g\n", s.FactorX(), s.FactorY())
		fmt.Printf("scaling required: %t\n", s.ScalingRequired())
		fmt.Printf("algorithm:        %s\n", s.Algorithm())
		return nil
	}
}
