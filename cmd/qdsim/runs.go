package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qdsim/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List sweep runs stored in a database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		metas, err := s.ListRuns()
		if err != nil {
			return err
		}
		if len(metas) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no stored runs")

			return nil
		}

		for _, m := range metas {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s %4d×%-4d %d dots  %-10s %s\n",
				m.ID, m.Device, m.NX, m.NY, m.NDots, m.Elapsed, humanize.Time(m.CreatedAt))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)

	runsCmd.Flags().String("db", "qdsim.db", "SQLite database holding the runs")
}
