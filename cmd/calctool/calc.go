package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/calctool/internal/calc"
)

// calcCommand returns the interactive calculator command
func calcCommand() *cli.Command {
	return &cli.Command{
		Name:  "calc",
		Usage: "Run an interactive calculation",
		Description: `Prompt for two integers and print their sum, difference, product and
quotient. The quotient line is replaced by a message when the second
operand is zero.`,
		Action: func(c *cli.Context) error {
			_, err := calc.NewSession(os.Stdin, os.Stdout).Run()
			return err
		},
	}
}
