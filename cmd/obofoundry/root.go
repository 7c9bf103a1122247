package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/reoring/obofoundry/i18n"
)

type rootOpts struct {
	url     string
	timeout time.Duration
	debug   bool
}

// app carries what every subcommand needs once flags are resolved.
type app struct {
	cfg    Config
	opts   *rootOpts
	log    *logrus.Logger
	client *http.Client
}

var longRootCmdDescription = `obofoundry reads the OBO Foundry ontology registry (YAML or JSON),
checks it against the registry model and prints what it contains.
Inputs are files, URLs or "-" for stdin; without one the configured
registry URL is fetched.
`

// NewRootCmd builds the command tree around cfg.
func NewRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg, opts: &rootOpts{}, log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:           "obofoundry",
		Short:         "Validate and inspect the OBO Foundry registry",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.opts.url, "url", cfg.RegistryURL, "registry document read when no input is given")
	rootCmd.PersistentFlags().DurationVar(&a.opts.timeout, "timeout", cfg.HTTPTimeout, "timeout for fetching remote documents")
	rootCmd.PersistentFlags().BoolVarP(&a.opts.debug, "debug", "d", false, "turn on debug mode")
	rootCmd.DisableAutoGenTag = true

	rootCmd.AddCommand(
		newValidateCmd(a),
		newProductsCmd(a),
		newConvertCmd(a),
		newSchemaCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level := logrus.InfoLevel
	if a.cfg.LogLevel != "" {
		lv, err := logrus.ParseLevel(a.cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", a.cfg.LogLevel, err)
		}
		level = lv
	}
	if a.opts.debug {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)

	if a.cfg.Lang != "" {
		i18n.SetLanguage(a.cfg.Lang)
	}
	a.client = &http.Client{Timeout: a.opts.timeout}
	return nil
}

// inputs returns args, or the configured registry URL when args is empty.
func (a *app) inputs(args []string) []string {
	if len(args) == 0 {
		return []string{a.opts.url}
	}
	return args
}
