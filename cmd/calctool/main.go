package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/calctool/internal/version"
)

func main() {
	app := &cli.App{
		Name:    "calctool",
		Usage:   "Calculator and C toolchain utilities",
		Version: version.Version,
		Commands: []*cli.Command{
			calcCommand(),
			runCommand(),
			lsCommand(),
			psCommand(),
			stopCommand(),
			logsCommand(),
			cleanupCommand(),
			installCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
