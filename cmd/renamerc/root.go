package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	defaultsFile string
	yes          bool
	debug        bool
	noColor      bool
)

// newConfig builds the immutable run configuration from positional args,
// flags and the optional defaults file. Mode selection depends only on how
// many positionals were given; the defaults file never supplies the triple.
func newConfig(args []string) (*config.Config, error) {
	cfg := &config.Config{
		TargetDir: ".",
		Yes:       yes,
		NoColor:   noColor,
	}

	if len(args) > 0 {
		cfg.TargetDir = args[0]
	}
	if len(args) > 1 {
		cfg.Pattern, cfg.HasPattern = args[1], true
	}
	if len(args) > 2 {
		cfg.From, cfg.HasFrom = args[2], true
	}
	if len(args) > 3 {
		cfg.To, cfg.HasTo = args[3], true
	}

	defaults, err := config.LoadDefaults(defaultsFile)
	if err != nil {
		return nil, errors.Errorf("loading defaults: %w", err)
	}
	defaults.Apply(cfg)

	return cfg, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&defaultsFile, "config", "c", ".renamerc.yaml", "defaults file path")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the final confirmation and rename immediately")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
