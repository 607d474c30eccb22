// Command mkparams writes params.json, the search parameter file read by the
// sproket ESGF downloader, for one CMIP6 variable, experiment and source.
//
//	mkparams tas ssp585 CESM2
package main

import (
	"os"

	gocmip6 "github.com/HarrySng/goCMIP6"
	"github.com/HarrySng/goCMIP6/internal/cmdutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

// newRootCmd returns the command that writes the parameter file into dir.
func newRootCmd(dir string) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "mkparams [--verbose] [--] <variable_id> <experiment_id> <source_id>",
		Short: "Write a sproket search parameter file for CMIP6 daily data",
		Long: `mkparams writes ` + gocmip6.DefaultFilename + ` in the current directory.
The file searches ` + gocmip6.SearchAPI + `
for the given variable, experiment and source in table ` + gocmip6.TableID + `,
variant ` + gocmip6.VariantLabel + `, preferring the LLNL data nodes.
An existing file is overwritten.

Flags are only read before the first argument. Use -- before a
variable_id that starts with a dash.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return gocmip6.CheckArgs(args)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmdutil.InitLogging(cmd.ErrOrStderr(), verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > gocmip6.NumArgs {
				log.Warn().Strs("ignored", args[gocmip6.NumArgs:]).Msg("extra arguments ignored")
			}
			path, err := gocmip6.Run(args, dir)
			if err != nil {
				return err
			}
			log.Debug().
				Str("path", path).
				Str("variable_id", args[0]).
				Str("experiment_id", args[1]).
				Str("source_id", args[2]).
				Msg("wrote parameter file")
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	cmdutil.AddVerbose(cmd.Flags(), &verbose)
	return cmd
}

func main() {
	cmdutil.InitLogging(os.Stderr, false)

	if err := newRootCmd(".").Execute(); err != nil {
		log.Error().Err(err).Msg("mkparams failed")
		os.Exit(1)
	}
}
