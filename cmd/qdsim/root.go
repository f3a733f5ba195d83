package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qdsim/internal/logging"
)

// logger is rebuilt by PersistentPreRun once the --log-level flag is
// known; commands log diagnostics through it while results go to
// stdout.
var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "qdsim",
	Short: "Classical multi-dot charge-stability simulator",
	Long: `qdsim models the classical electrostatics of coupled quantum dots:
it enumerates charge configurations, finds the minimum-energy one per
gate-voltage point, and sweeps 2-D voltage planes into charge-stability
("honeycomb") diagrams that can be rendered as heatmaps and stored for
later inspection.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger = logging.New(level)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command; any error goes to stderr with a
// non-zero exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "log verbosity: debug, info, warn or error")
}
