// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/pulsenet/internal/netdesc"
	"github.com/db47h/pulsenet/netlib"
)

// NewDotCommand creates the dot command.
//
func NewDotCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot <file|->",
		Short: "Print the network graph in Graphviz dot format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd, args[0])
			if err != nil {
				return err
			}
			// materializes the broadcaster and sinks
			root.network(reg)
			return netdesc.WriteDot(cmd.OutOrStdout(), reg)
		},
	}
}

// NewGenCommand creates the gen command.
//
func NewGenCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gen <period>...",
		Short: "Generate a network of binary counters feeding rx",
		Long: `Generate a network of binary counters with the given odd periods. The
terminal module rx first receives a low pulse at the least common multiple of
the periods.`,
		Example: "  pulsenet gen 3739 3761 3797 3889 | pulsenet first-low -",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := make([]uint64, len(args))
			for i, a := range args {
				p, err := strconv.ParseUint(a, 10, 64)
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("invalid period %q", a), err)
				}
				ps[i] = p
			}
			reg, err := netlib.Periodic(ps...)
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot generate network", err)
			}
			root.log().Debug("generated network", "periods", strings.Join(args, ","), "modules", reg.Len())
			return netdesc.Format(cmd.OutOrStdout(), netdesc.Decls(reg))
		},
	}
}
