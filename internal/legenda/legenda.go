// Package legenda implements the two steps of the subtitle translation
// workflow: extracting one reference line per cue, and checking the file
// translated from it.
package legenda

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"golang.org/x/text/language"

	"github.com/dkarlovi/legendas/internal/assets"
	"github.com/dkarlovi/legendas/internal/webvtt"
)

// ErrInputNotFound is returned when the given path is not an existing file.
var ErrInputNotFound = errors.New("input file not found")

type Options struct {
	OutputDir     string
	ReferenceFile string
	TemplateFile  string
	Language      language.Tag
}

// Result describes the files written by Extract.
type Result struct {
	ReferencePath string
	TemplatePath  string
	Lines         int
}

// Extract reads the WebVTT file at src and writes the reference file and
// the translation template. Nothing is written when src does not exist.
func Extract(src string, opts Options) (*Result, error) {
	if err := checkInput(src); err != nil {
		return nil, err
	}

	lines, err := webvtt.ReadLines(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	cues := webvtt.Extract(lines)

	dir := opts.OutputDir
	if dir == "" {
		dir = "."
	}
	res := &Result{
		ReferencePath: filepath.Join(dir, opts.ReferenceFile),
		TemplatePath:  filepath.Join(dir, opts.TemplateFile),
		Lines:         len(cues),
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	if err := renameio.WriteFile(res.ReferencePath, []byte(strings.Join(cues, "\n")), 0o644); err != nil {
		return nil, fmt.Errorf("write reference file: %w", err)
	}

	tpl, err := assets.TranslationTemplate(opts.Language, assets.TemplateData{Reference: opts.ReferenceFile})
	if err != nil {
		return nil, err
	}
	if err := renameio.WriteFile(res.TemplatePath, tpl, 0o644); err != nil {
		return nil, fmt.Errorf("write template file: %w", err)
	}
	return res, nil
}

// Validate checks the translated file at path. Only its existence is
// verified; the returned count is the number of lines it holds.
func Validate(path string) (int, error) {
	if err := checkInput(path); err != nil {
		return 0, err
	}
	lines, err := webvtt.ReadLines(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return len(lines), nil
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return nil
}
