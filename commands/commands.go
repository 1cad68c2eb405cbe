package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/symfony-cli/console"
	"github.com/symfony-cli/terminal"

	"github.com/dkarlovi/legendas/internal/config"
	"github.com/dkarlovi/legendas/internal/legenda"
	"github.com/dkarlovi/legendas/internal/log"
)

// GlobalFlags returns the flags accepted by the application and every command.
func GlobalFlags() []console.Flag {
	return []console.Flag{
		&console.StringFlag{
			Name:         "config",
			Aliases:      []string{"c"},
			DefaultValue: "legendas.yaml",
			Usage:        "Path to config YAML file",
		},
		&console.StringFlag{
			Name:  "lang",
			Usage: "Language of the translation template (pt-BR, en)",
		},
		&console.StringFlag{
			Name:  "output-dir",
			Usage: "Directory the reference and template files are written to",
		},
		&console.StringFlag{
			Name:  "step1",
			Usage: "Run step 1 (extract) on the given WebVTT file",
		},
		&console.StringFlag{
			Name:  "step2",
			Usage: "Run step 2 (check) on the given translated file",
		},
	}
}

// NewApplication builds the legendas console application.
func NewApplication(version, buildDate string) *console.Application {
	return &console.Application{
		Name:        "legendas",
		Usage:       "Prepare WebVTT subtitles for manual translation",
		Description: "Extracts the text of every cue of a WebVTT file into one line per cue, ready to be translated line by line, and checks the translated file afterwards.",
		Version:     version,
		BuildDate:   buildDate,
		Channel:     "stable",
		Flags:       GlobalFlags(),
		Commands:    All(),
		Action:      RunDefault,
	}
}

func All() []*console.Command {
	return []*console.Command{
		newExtractCommand(),
		newCheckCommand(),
	}
}

// overrides holds the flag values that take precedence over the config file.
type overrides struct {
	Language  string
	OutputDir string
}

func resolveConfig(path string, o overrides) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.Language != "" {
		cfg.Language = o.Language
	}
	if o.OutputDir != "" {
		cfg.OutputDir = o.OutputDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfig(c *console.Context) (*config.Config, error) {
	cfg, err := resolveConfig(c.String("config"), overrides{
		Language:  c.String("lang"),
		OutputDir: c.String("output-dir"),
	})
	if err != nil {
		return nil, console.Exit(fmt.Sprintf("Error reading config: %v", err), 1)
	}
	level := logLevel(cfg.LogLevel, terminal.Logger.GetLevel(), c.IsSet(console.LogLevelFlag.Name))
	log.Configure(log.Config{Level: level.String()})
	return cfg, nil
}

// logLevel picks the configured level, or the console verbosity (-v, -vv,
// --log-level) when it was given and is more verbose.
func logLevel(configured string, verbosity zerolog.Level, verbositySet bool) zerolog.Level {
	level := log.ParseLevel(configured)
	if verbositySet && verbosity < level {
		return verbosity
	}
	return level
}

func extractOptions(cfg *config.Config) legenda.Options {
	return legenda.Options{
		OutputDir:     cfg.OutputDir,
		ReferenceFile: cfg.ReferenceFile,
		TemplateFile:  cfg.TemplateFile,
		Language:      cfg.Tag(),
	}
}

// RunDefault handles the application without a command: the --step1 and
// --step2 flags, or the interactive menu when neither is given.
func RunDefault(c *console.Context) error {
	if src := c.String("step1"); src != "" {
		return runExtract(c, src)
	}
	if dst := c.String("step2"); dst != "" {
		return runCheck(c, dst)
	}
	return runMenu(c)
}
