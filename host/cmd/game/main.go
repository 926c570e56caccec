package main

import (
	"os"

	"github.com/nobonobo/firefly-house/host/cli"
	gameui "github.com/nobonobo/firefly-house/host/ui"
)

func main() {
	cmd := cli.NewRootCommand(cli.Environment{
		Params:    gameui.GetParam,
		SessionID: gameui.SessionID,
		LogOutput: os.Stderr,
	}, runApplication)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
