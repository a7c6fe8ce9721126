package main

import (
	"fmt"

	"github.com/katalvlaran/fwdindex/config"
	"github.com/katalvlaran/fwdindex/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app is shared by every subcommand; PersistentPreRunE fills cfg and logger.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "fwdindex",
		Short:         "Estimate the forwarding index of a graph with tabu-search routing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.Flags())
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	rootCmd.AddCommand(newAnalyzeCmd(a), newGenerateCmd(a), newWatchCmd(a))

	return rootCmd
}

// load binds the running command's flags, resolves the configuration and
// builds the logger. Flags that map to optional overrides are applied only
// when the user set them.
func (a *app) load(flags *pflag.FlagSet) error {
	for key, name := range boundFlags {
		if f := flags.Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}
	for key, name := range optionalIntFlags {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		n, err := flags.GetInt(name)
		if err != nil {
			return err
		}
		a.v.Set(key, n)
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	return nil
}

// boundFlags maps config keys to the flags that override them.
var boundFlags = map[string]string{
	"log.level":      "log-level",
	"log.format":     "log-format",
	"search.seed":    "seed",
	"search.workers": "workers",
	"search.compare": "compare",
	"output.format":  "format",
	"output.file":    "output",
	"metrics.file":   "metrics-file",
	"trace":          "trace",
}

// optionalIntFlags maps nil-able config keys to their flag names.
var optionalIntFlags = map[string]string{
	"search.max_iterations": "max-iterations",
	"search.tabu_size":      "tabu-size",
}
