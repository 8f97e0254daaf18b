// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// CountResult is the output of the count command.
//
type CountResult struct {
	Presses int    `json:"presses" yaml:"presses"`
	Low     uint64 `json:"low" yaml:"low"`
	High    uint64 `json:"high" yaml:"high"`
	Product uint64 `json:"product" yaml:"product"`
}

// WriteText implements texter.
//
func (r *CountResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "presses: %d\nlow:     %d\nhigh:    %d\nproduct: %d\n", r.Presses, r.Low, r.High, r.Product)
	return err
}

// NewCountCommand creates the count command.
//
func NewCountCommand(root *RootOptions) *cobra.Command {
	var presses int

	cmd := &cobra.Command{
		Use:   "count <file|->",
		Short: "Count low and high pulses over a number of button presses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if presses < 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid number of presses %d", presses))
			}
			reg, err := loadRegistry(cmd, args[0])
			if err != nil {
				return err
			}
			n := root.network(reg)
			t, err := n.RunN(presses)
			if err != nil {
				return simulationError(err)
			}
			return root.output(cmd).Write(&CountResult{
				Presses: presses,
				Low:     t.Low,
				High:    t.High,
				Product: t.Product(),
			})
		},
	}
	cmd.Flags().IntVarP(&presses, "presses", "n", 1000, "number of button presses")
	return cmd
}
