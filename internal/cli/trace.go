// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/db47h/pulsenet"
)

// PressTrace lists the pulses dispatched during a single press.
//
type PressTrace struct {
	Epoch       int            `json:"epoch" yaml:"epoch"`
	Tally       pulsenet.Tally `json:"tally" yaml:"tally"`
	TerminalLow bool           `json:"terminal_low" yaml:"terminal_low"`
	Pulses      []string       `json:"pulses" yaml:"pulses"`
}

// TraceResult is the output of the trace command.
//
type TraceResult struct {
	Presses []*PressTrace `json:"presses" yaml:"presses"`
}

// WriteText implements texter.
//
func (r *TraceResult) WriteText(w io.Writer) error {
	for _, p := range r.Presses {
		if _, err := fmt.Fprintf(w, "# press %d\n", p.Epoch); err != nil {
			return err
		}
		for _, s := range p.Pulses {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewTraceCommand creates the trace command.
//
func NewTraceCommand(root *RootOptions) *cobra.Command {
	var presses int

	cmd := &cobra.Command{
		Use:   "trace <file|->",
		Short: "Print every pulse dispatched during the first button presses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if presses < 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid number of presses %d", presses))
			}
			reg, err := loadRegistry(cmd, args[0])
			if err != nil {
				return err
			}
			res := &TraceResult{Presses: make([]*PressTrace, 0, presses)}
			var cur *PressTrace
			n := root.network(reg, pulsenet.WithObserver(pulsenet.ObserverFunc(func(epoch int, p pulsenet.Pulse, _ *pulsenet.Module) {
				cur.Pulses = append(cur.Pulses, p.String())
			})))
			for i := 0; i < presses; i++ {
				cur = &PressTrace{Epoch: n.Epoch() + 1}
				res.Presses = append(res.Presses, cur)
				er, err := n.Press()
				cur.Tally = er.Tally
				cur.TerminalLow = er.TerminalLow
				if err != nil {
					return simulationError(err)
				}
			}
			return root.output(cmd).Write(res)
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1, "number of button presses")
	return cmd
}
