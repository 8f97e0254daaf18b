// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/config"
)

// First-low methods.
//
const (
	MethodSimulate = "simulate"
	MethodCycles   = "cycles"
)

// FirstLowResult is the output of the first-low command.
//
type FirstLowResult struct {
	Terminal string           `json:"terminal" yaml:"terminal"`
	Method   string           `json:"method" yaml:"method"`
	Epoch    uint64           `json:"epoch" yaml:"epoch"`
	Presses  int              `json:"presses" yaml:"presses"`
	Product  uint64           `json:"product,omitempty" yaml:"product,omitempty"`
	Onsets   []pulsenet.Onset `json:"onsets,omitempty" yaml:"onsets,omitempty"`
}

// WriteText implements texter.
//
func (r *FirstLowResult) WriteText(w io.Writer) error {
	if len(r.Onsets) > 0 {
		es := make([]uint64, len(r.Onsets))
		for i, o := range r.Onsets {
			es[i] = o.Epoch
			if _, err := fmt.Fprintf(w, "onset %s: %d\n", o.Name, o.Epoch); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "lcm(%s)\n", joinUints(es)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s: %d\n", r.Terminal, r.Epoch)
	return err
}

// NewFirstLowCommand creates the first-low command.
//
func NewFirstLowCommand(root *RootOptions, cfg *config.Config) *cobra.Command {
	terminal, maxPresses := cfg.Terminal, cfg.MaxPresses
	var method string

	cmd := &cobra.Command{
		Use:   "first-low <file|->",
		Short: "Find the first press at which the terminal module receives a low pulse",
		Long: `Find the first press at which the terminal module receives a low pulse.

The simulate method presses the button until it happens. The cycles method
records, for every conjunction, the first press at which one of its inputs is
low, and returns the least common multiple of those presses. It only applies
to networks made of independent binary counters joined by conjunctions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if terminal == "" {
				return NewExitError(ExitCommandError, "empty terminal name")
			}
			if maxPresses <= 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid max-presses %d", maxPresses))
			}
			reg, err := loadRegistry(cmd, args[0])
			if err != nil {
				return err
			}
			root.Terminal = terminal
			n := root.network(reg)
			res := &FirstLowResult{Terminal: terminal, Method: method}

			switch method {
			case MethodSimulate:
				e, err := n.RunUntilTerminalLow(maxPresses)
				if err != nil {
					return simulationError(err)
				}
				res.Epoch = uint64(e)
				res.Presses = e
			case MethodCycles:
				x, err := pulsenet.Extrapolate(n, maxPresses)
				if err != nil {
					return simulationError(err)
				}
				res.Epoch = x.Epoch
				res.Presses = x.Presses
				res.Product = x.Product
				res.Onsets = x.Onsets
			default:
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid method %q: must be %s or %s", method, MethodSimulate, MethodCycles))
			}
			return root.output(cmd).Write(res)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&terminal, "terminal", "t", terminal, "name of the terminal module")
	f.StringVarP(&method, "method", "m", MethodCycles, "search method (simulate|cycles)")
	f.IntVar(&maxPresses, "max-presses", maxPresses, "give up after this many presses")
	return cmd
}
