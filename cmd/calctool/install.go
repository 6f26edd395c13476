package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/calctool/internal/utils"
)

// installCommand returns the command that registers a server with an MCP client
func installCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install an MCP server into a client's configuration",
		Description: `Install an MCP server into a client's configuration.
Currently supports the following clients:
  - cline (Visual Studio Code Cline extension)`,
		ArgsUsage: "<server>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "client",
				Aliases:  []string{"c"},
				Usage:    "Target MCP client (e.g., cline)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				fmt.Println("Available servers:")
				if err := listAvailableServers("  "); err != nil {
					fmt.Println("  No servers found")
				}
				return fmt.Errorf("no server specified")
			}

			var clientType utils.ClientType
			switch clientStr := c.String("client"); clientStr {
			case "cline":
				clientType = utils.ClientCline
			default:
				utils.PrintError("Unsupported client type: %s", clientStr)
				utils.PrintInfo("Supported client types: cline")
				return fmt.Errorf("unsupported client type")
			}

			serverName := c.Args().First()
			if !serverExists(serverName) {
				utils.PrintError("Server '%s' not found", serverName)
				utils.PrintInfo("Run 'calctool ls' to see available servers")
				return fmt.Errorf("server not found")
			}

			configPath, err := utils.GetClientConfigPath(clientType)
			if err != nil {
				utils.PrintError("Failed to get config path: %v", err)
				return err
			}

			if err := utils.InstallServer(clientType, serverName); err != nil {
				utils.PrintError("Failed to install server: %v", err)
				return err
			}

			utils.PrintInfo("Server '%s' installed successfully into %s config at %s",
				serverName, c.String("client"), configPath)
			return nil
		},
		BashComplete: completeAvailableServers,
	}
}
