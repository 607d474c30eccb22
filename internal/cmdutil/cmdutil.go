// Package cmdutil holds the logging and flag setup shared by the commands.
package cmdutil

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

// InitLogging points the global logger at w, at debug level when verbose.
func InitLogging(w io.Writer, verbose bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// AddVerbose registers the --verbose flag.
func AddVerbose(fs *pflag.FlagSet, verbose *bool) {
	fs.BoolVar(verbose, "verbose", false, "Flag to indicate output should be verbose")
}
