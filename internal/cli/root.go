// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package cli implements the pulsenet command line interface.
//
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/config"
	"github.com/db47h/pulsenet/internal/netdesc"
)

// ValidFormats lists the output formats.
//
var ValidFormats = []string{"text", "json", "yaml"}

// RootOptions holds global flags for all commands.
//
type RootOptions struct {
	LogLevel   string
	LogJSON    bool
	Format     string
	MaxSteps   int
	MaxPresses int
	Terminal   string

	logger hclog.Logger
}

// NewRootCommand creates the root command. Flag defaults come from cfg.
//
func NewRootCommand(cfg *config.Config) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pulsenet",
		Short: "Simulate pulse networks",
		Long: `pulsenet simulates networks of broadcast, flip-flop and conjunction modules
exchanging low and high pulses, one button press at a time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			level := hclog.LevelFromString(opts.LogLevel)
			if level == hclog.NoLevel {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid log level %q", opts.LogLevel))
			}
			opts.logger = hclog.New(&hclog.LoggerOptions{
				Name:       "pulsenet",
				Level:      level,
				Output:     cmd.ErrOrStderr(),
				JSONFormat: opts.LogJSON,
			})
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.LogLevel, "log-level", cfg.LogLevel, "log level (trace|debug|info|warn|error)")
	pf.BoolVar(&opts.LogJSON, "log-json", cfg.LogJSON, "log in JSON format")
	pf.StringVar(&opts.Format, "format", cfg.Format, "output format (text|json|yaml)")
	pf.IntVar(&opts.MaxSteps, "max-steps", cfg.MaxSteps, "maximum number of pulses in a single press")

	cmd.AddCommand(NewCountCommand(opts))
	cmd.AddCommand(NewFirstLowCommand(opts, cfg))
	cmd.AddCommand(NewTraceCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) output(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// loadRegistry reads a network description from path, or from the command's
// input if path is "-".
//
func loadRegistry(cmd *cobra.Command, path string) (*pulsenet.Registry, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot open network description", err)
		}
		defer f.Close()
		r = f
	}
	reg, err := netdesc.Load(r)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid network description "+path, err)
	}
	return reg, nil
}

func (o *RootOptions) network(reg *pulsenet.Registry, extra ...pulsenet.Option) *pulsenet.Network {
	opts := []pulsenet.Option{
		pulsenet.WithMaxSteps(o.MaxSteps),
		pulsenet.WithLogger(o.log().Named("network")),
	}
	if o.Terminal != "" {
		opts = append(opts, pulsenet.WithTerminal(o.Terminal))
	}
	return pulsenet.NewNetwork(reg, append(opts, extra...)...)
}

func (o *RootOptions) log() hclog.Logger {
	if o.logger == nil {
		return hclog.NewNullLogger()
	}
	return o.logger
}

// simulationError wraps errors returned by the simulator with ExitFailure.
//
func simulationError(err error) error {
	return WrapExitError(ExitFailure, "simulation failed", err)
}

func joinUints(vs []uint64) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ", ")
}
