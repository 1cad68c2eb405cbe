package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/symfony-cli/console"

	"github.com/dkarlovi/legendas/internal/legenda"
	"github.com/dkarlovi/legendas/internal/log"
	"github.com/dkarlovi/legendas/internal/webvtt"
)

func newExtractCommand() *console.Command {
	return &console.Command{
		Name:    "extract",
		Aliases: []*console.Alias{{Name: "step1"}},
		Usage:   "Extract one line per cue from a WebVTT file for translation",
		Description: `Reads a WebVTT file and writes two files:

  the reference file, holding the text of each cue on a single line;
  the translation template, holding instructions to replace with the translated lines.`,
		Args: console.ArgDefinition{
			{Name: "file", Description: "Path to the original .vtt file"},
		},
		Action: func(c *console.Context) error {
			return runExtract(c, c.Args().Get("file"))
		},
	}
}

func runExtract(c *console.Context, src string) error {
	if src == "" {
		return console.Exit("Error: path to subtitle file is required", 1)
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := log.WithComponent("extract")

	fmt.Fprintf(c.App.Writer, "<info>[STEP 1]</> Processing WebVTT file <comment>%s</>\n", src)
	res, err := legenda.Extract(src, extractOptions(cfg))
	if errors.Is(err, legenda.ErrInputNotFound) {
		return console.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	if err != nil {
		return console.Exit(fmt.Sprintf("Error extracting cues: %v", err), 1)
	}

	census, err := webvtt.Census(src)
	if err != nil {
		logger.Debug().Err(err).Msg("cue census skipped")
		census = -1
	} else {
		logger.Debug().Int("extracted", res.Lines).Int("census", census).Str("file", src).Msg("cue census")
	}

	fmt.Fprintln(c.App.Writer, renderSummary(src, census, res))
	fmt.Fprintf(c.App.Writer,
		"Use <info>%s</> as the reference for your translation and write it into <info>%s</>, one line per line.\n"+
			"Delete the instructions in <info>%s</> first, and check both files have the same number of lines before running step 2.\n",
		res.ReferencePath, res.TemplatePath, res.TemplatePath,
	)
	return nil
}

// renderSummary lists the source and the two written files. census is the
// number of cues a general WebVTT reader found, or negative when unknown.
func renderSummary(src string, census int, res *legenda.Result) string {
	cues := "-"
	if census >= 0 {
		cues = strconv.Itoa(census)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Role", "Lines"})
	tw.AppendRow(table.Row{src, "source (webvtt cues)", cues})
	tw.AppendRow(table.Row{res.ReferencePath, "reference", strconv.Itoa(res.Lines)})
	tw.AppendRow(table.Row{res.TemplatePath, "translation", "-"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
