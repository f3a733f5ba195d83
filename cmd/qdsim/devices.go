package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qdsim/device"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the built-in device presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range device.Names() {
			sys, err := device.Builtin(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d dots, %d gates, %s basis states\n",
				sys.Name(), sys.Dots(), sys.Gates(), humanize.Comma(int64(sys.StateCount())))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
