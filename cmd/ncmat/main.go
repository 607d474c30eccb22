// Command ncmat combines the pr, tasmax and tasmin files of one model and
// experiment into one three-column matrix per grid cell,
// <model>_<experiment>/<lat>_<lon>.txt, for bias correction.
//
//	ncmat CESM2 ssp245
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/HarrySng/goCMIP6/internal/cmdutil"
	"github.com/HarrySng/goCMIP6/ncgrid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

type config struct {
	dir     string
	limit   int
	verbose bool
}

func newRootCmd() *cobra.Command {
	var args config
	cmd := &cobra.Command{
		Use:   "ncmat <model> <experiment>",
		Short: "Write per-grid-cell pr, tasmax, tasmin matrices",
		Long: `ncmat reads the files in --dir whose names contain <model>_<experiment>,
picks pr, tasmax and tasmin by file name, and writes one file per grid cell
to <dir>/<model>_<experiment>/. Each line holds pr, tasmax and tasmin for
one time step.`,
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmdutil.InitLogging(cmd.ErrOrStderr(), args.verbose)
		},
		RunE: func(cmd *cobra.Command, pos []string) error {
			start := time.Now()
			model, experiment := pos[0], pos[1]
			files, err := ncgrid.FindInputs(args.dir, model, experiment)
			if err != nil {
				return err
			}
			log.Debug().Strs("files", files).Msg("found inputs")

			grids, err := ncgrid.ReadMatrixVars(files)
			if err != nil {
				return err
			}
			out := filepath.Join(args.dir, ncgrid.OutputDir(model, experiment))
			n, err := ncgrid.Matrix(cmd.Context(), grids, out, args.limit)
			if err != nil {
				return err
			}
			log.Info().Int("files", n).Str("dir", out).Dur("elapsed", time.Since(start)).Msg("wrote matrices")
			return nil
		},
	}
	cmd.Flags().StringVar(&args.dir, "dir", ".", "Path to directory holding the input files")
	cmd.Flags().IntVarP(&args.limit, "parallel", "p", ncgrid.DefaultLimit, "Max number of files written at once")
	cmdutil.AddVerbose(cmd.Flags(), &args.verbose)
	return cmd
}

func main() {
	cmdutil.InitLogging(os.Stderr, false)

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("ncmat failed")
		os.Exit(1)
	}
}
