// Command ncsplit writes each slice along the first dimension of a NetCDF
// variable to its own text file, dataFiles/v<i>.txt by default.
//
//	ncsplit tas_day_CESM2_ssp585_r1i1p1f1_gn.nc tas
package main

import (
	"os"
	"time"

	"github.com/HarrySng/goCMIP6/internal/cmdutil"
	"github.com/HarrySng/goCMIP6/ncgrid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

type config struct {
	outDir  string
	limit   int
	verbose bool
}

func newRootCmd() *cobra.Command {
	var args config
	cmd := &cobra.Command{
		Use:           "ncsplit <file.nc> <variable>",
		Short:         "Split a NetCDF variable into one text file per time step",
		Version:       version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmdutil.InitLogging(cmd.ErrOrStderr(), args.verbose)
		},
		RunE: func(cmd *cobra.Command, pos []string) error {
			start := time.Now()
			g, err := ncgrid.ReadVar(pos[0], pos[1])
			if err != nil {
				return err
			}
			log.Debug().Str("file", pos[0]).Str("variable", pos[1]).Ints("shape", shape(g)).Msg("read variable")

			n, err := ncgrid.Split(cmd.Context(), g, args.outDir, args.limit)
			if err != nil {
				return err
			}
			log.Info().Int("files", n).Str("dir", args.outDir).Dur("elapsed", time.Since(start)).Msg("split variable")
			return nil
		},
	}
	cmd.Flags().StringVar(&args.outDir, "out.dir", "dataFiles", "Path to directory to put the text files in")
	cmd.Flags().IntVarP(&args.limit, "parallel", "p", ncgrid.DefaultLimit, "Max number of files written at once")
	cmdutil.AddVerbose(cmd.Flags(), &args.verbose)
	return cmd
}

func shape(g ncgrid.Grid) []int {
	s := g.Shape()
	return s[:]
}

func main() {
	cmdutil.InitLogging(os.Stderr, false)

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("ncsplit failed")
		os.Exit(1)
	}
}
