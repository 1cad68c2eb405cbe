package commands

import (
	"os"

	"github.com/symfony-cli/console"

	"github.com/dkarlovi/legendas/internal/ui"
)

const (
	stepExtract = "1"
	stepCheck   = "2"
)

func runMenu(c *console.Context) error {
	term := ui.NewTerminal(os.Stdin, os.Stdout, os.Stderr)
	step, path, err := chooseStep(term)
	if err != nil {
		return console.Exit("Error: "+err.Error(), 1)
	}
	if step == stepExtract {
		return runExtract(c, path)
	}
	return runCheck(c, path)
}

// chooseStep asks which step to run until the answer is valid, then asks
// for the file the step works on.
func chooseStep(term ui.Interface) (string, string, error) {
	term.Clear()
	term.PrintInfo("=== WebVTT translation ===")
	term.PrintInfo("Two steps are available:")
	term.PrintInfo(" - Step 1: give the original .vtt file, extract its cues for translation.")
	term.PrintInfo(" - Step 2: give the translated file, check it before post-processing.")

	for {
		step, err := term.Prompt("Which step do you want to run (1 or 2)? ")
		if err != nil {
			return "", "", err
		}

		var label string
		switch step {
		case stepExtract:
			term.Clear()
			term.PrintInfo("Step 1 selected, an original .vtt file is expected.")
			label = "Path to the original .vtt file: "
		case stepCheck:
			term.Clear()
			term.PrintInfo("Step 2 selected, a translated file is expected.")
			label = "Path to the translated file: "
		default:
			term.PrintError("Invalid option, type 1 or 2.")
			continue
		}

		path, err := term.Prompt(label)
		if err != nil {
			return "", "", err
		}
		return step, path, nil
	}
}
