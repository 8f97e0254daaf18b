// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command pulsenet simulates pulse networks read from text descriptions.
//
package main

import (
	"fmt"
	"os"

	"github.com/db47h/pulsenet/internal/cli"
	"github.com/db47h/pulsenet/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.ExitCommandError)
	}
	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
