package commands

import (
	"errors"
	"fmt"

	"github.com/symfony-cli/console"

	"github.com/dkarlovi/legendas/internal/legenda"
	"github.com/dkarlovi/legendas/internal/log"
)

func newCheckCommand() *console.Command {
	return &console.Command{
		Name:    "check",
		Aliases: []*console.Alias{{Name: "step2"}},
		Usage:   "Check a translated file before post-processing",
		Args: console.ArgDefinition{
			{Name: "file", Description: "Path to the translated file"},
		},
		Action: func(c *console.Context) error {
			return runCheck(c, c.Args().Get("file"))
		},
	}
}

func runCheck(c *console.Context, dst string) error {
	if dst == "" {
		return console.Exit("Error: path to translated file is required", 1)
	}
	if _, err := loadConfig(c); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "<info>[STEP 2]</> Checking translated file <comment>%s</>\n", dst)
	lines, err := legenda.Validate(dst)
	if errors.Is(err, legenda.ErrInputNotFound) {
		return console.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if err != nil {
		return console.Exit(fmt.Sprintf("Error reading translated file: %v", err), 1)
	}
	logger := log.WithComponent("check")
	logger.Debug().Int("lines", lines).Str("file", dst).Msg("translated file loaded")
	fmt.Fprintf(c.App.Writer, "File <info>%s</> loaded, <comment>%d</> lines.\n", dst, lines)
	return nil
}
