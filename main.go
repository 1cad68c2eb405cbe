package main

import (
	"os"

	"github.com/dkarlovi/legendas/commands"
)

var (
	// version is overridden at linking time
	version = "dev"
	// buildDate is overridden at linking time
	buildDate string
)

func main() {
	app := commands.NewApplication(version, buildDate)
	app.Run(os.Args)
}
