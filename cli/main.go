package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hearthhq/hearth/internal/signals"
	"github.com/hearthhq/hearth/internal/version"
)

func main() {
	app := cli.NewApp()
	app.Name = "hearth"
	app.Usage = "Your local parenting community, from the command line"
	app.Version = fmt.Sprintf("%s (%s)", version.Version(), version.Commit())
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    flagInsecure,
			Aliases: []string{"k"},
			Usage:   "Allow insecure API server connections when using TLS",
		},
	}
	app.Commands = []*cli.Command{
		accountCommand,
		chatCommand,
		communityCommand,
		dashboardCommand,
		eventCommand,
		loginCommand,
		logoutCommand,
		marketplaceCommand,
		registerCommand,
		taskCommand,
		whoamiCommand,
	}
	fmt.Println()
	if err := app.RunContext(signals.Context(), os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
