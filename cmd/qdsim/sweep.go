package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qdsim/device"
	"github.com/katalvlaran/qdsim/dotsystem"
	"github.com/katalvlaran/qdsim/grid"
	"github.com/katalvlaran/qdsim/render"
	"github.com/katalvlaran/qdsim/store"
	"github.com/katalvlaran/qdsim/sweep"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep a 2-D voltage plane into a charge-stability diagram",
	Long: `Sweep evaluates the ground state of the chosen device at every point of
a two-gate voltage plane, runs transition detection on the assembled
grid, and optionally renders the maps as PNG heatmaps and saves the run
to a SQLite database.`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().String("device", "doubledot", "built-in device preset (see 'qdsim devices')")
	sweepCmd.Flags().String("device-file", "", "YAML device definition; overrides --device")
	sweepCmd.Flags().Int("gate-x", 0, "gate index swept along x")
	sweepCmd.Flags().Int("gate-y", 1, "gate index swept along y")
	sweepCmd.Flags().Float64("min", -40, "first axis value [mV]")
	sweepCmd.Flags().Float64("max", 120, "last axis value [mV]")
	sweepCmd.Flags().Int("points", 250, "points per axis")
	sweepCmd.Flags().Int("workers", 1, "worker count; 1 sweeps sequentially")
	sweepCmd.Flags().String("png", "", "write the transition map to this PNG")
	sweepCmd.Flags().String("deloc-png", "", "write the delocalization map to this PNG")
	sweepCmd.Flags().String("db", "", "save the run in this SQLite database")
}

func runSweep(cmd *cobra.Command, args []string) error {
	// --- 1. Resolve the device ---
	sys, err := resolveDevice(cmd)
	if err != nil {
		return err
	}

	gateX, _ := cmd.Flags().GetInt("gate-x")
	gateY, _ := cmd.Flags().GetInt("gate-y")
	min, _ := cmd.Flags().GetFloat64("min")
	max, _ := cmd.Flags().GetFloat64("max")
	points, _ := cmd.Flags().GetInt("points")
	workers, _ := cmd.Flags().GetInt("workers")

	// --- 2. Build the voltage plane ---
	xs, err := grid.Axis(min, max, points)
	if err != nil {
		return err
	}
	ys, err := grid.Axis(min, max, points)
	if err != nil {
		return err
	}
	vg, err := grid.SweepPlane(make([]float64, sys.Gates()), gateX, gateY, xs, ys)
	if err != nil {
		return err
	}

	logger.Info("starting sweep",
		"device", sys.Name(),
		"states", sys.StateCount(),
		"cells", points*points,
		"workers", workers)

	// --- 3. Run it ---
	res, err := sweep.Run(sys, vg,
		sweep.WithWorkers(workers),
		sweep.WithProgress(func(done, total int) {
			logger.Info("sweep progress", "row", done, "rows", total)
		}),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: swept %s cells (%d×%d) in %s\n",
		sys.Name(), humanize.Comma(int64(points*points)), points, points, res.Elapsed)

	// --- 4. Optional artifacts ---
	if err := writeHeatmaps(cmd, sys, res, xs, ys, gateX, gateY); err != nil {
		return err
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.SaveRun(sys.Name(), res)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved run %s to %s\n", id, dbPath)
	}

	return nil
}

// resolveDevice builds the system from --device-file when given, else
// from the --device preset.
func resolveDevice(cmd *cobra.Command) (*dotsystem.System, error) {
	if path, _ := cmd.Flags().GetString("device-file"); path != "" {
		def, err := device.LoadFile(path)
		if err != nil {
			return nil, err
		}

		return def.Build()
	}
	name, _ := cmd.Flags().GetString("device")

	return device.Builtin(name)
}

// writeHeatmaps renders the detector maps requested by --png and
// --deloc-png.
func writeHeatmaps(cmd *cobra.Command, sys *dotsystem.System, res *sweep.Result, xs, ys []float64, gateX, gateY int) error {
	opt := render.DefaultHeatmapOptions()
	opt.XLabel = fmt.Sprintf("gate %d [mV]", gateX)
	opt.YLabel = fmt.Sprintf("gate %d [mV]", gateY)

	if path, _ := cmd.Flags().GetString("png"); path != "" {
		opt.Path = path
		opt.Title = sys.Name() + " transitions"
		if err := render.Heatmap(res.Diagram, xs, ys, opt); err != nil {
			return err
		}
		logger.Info("wrote transition map", "path", path)
	}
	if path, _ := cmd.Flags().GetString("deloc-png"); path != "" {
		opt.Path = path
		opt.Title = sys.Name() + " delocalization"
		if err := render.Heatmap(res.Deloc, xs, ys, opt); err != nil {
			return err
		}
		logger.Info("wrote delocalization map", "path", path)
	}

	return nil
}
