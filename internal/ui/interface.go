package ui

// Interface is the terminal interaction used by the interactive menu.
type Interface interface {
	// Clear wipes the screen. It does nothing when output is not a terminal.
	Clear()

	// Prompt shows label and returns the trimmed line typed by the user.
	Prompt(label string) (string, error)

	PrintInfo(s string)
	PrintError(s string)
}
