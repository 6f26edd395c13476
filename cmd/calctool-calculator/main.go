package main

import (
	"fmt"
	"os"

	"github.com/calctool/internal/mcpserver"
)

func main() {
	app := mcpserver.NewCliApp(NewCalculatorServer(), nil, nil)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
