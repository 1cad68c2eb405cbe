// Package webvtt flattens WebVTT cue blocks into one text line per cue.
package webvtt

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/asticode/go-astisub"
)

const header = "WEBVTT"

var (
	// cue identifiers are a lowercase UUID followed by a sequence number
	identifierRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}-\d+$`)
	timingRe     = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}$`)
)

// IsIdentifier reports whether line is a cue identifier.
func IsIdentifier(line string) bool {
	return identifierRe.MatchString(strings.TrimSpace(line))
}

// IsTiming reports whether line is a cue timing line.
func IsTiming(line string) bool {
	return timingRe.MatchString(strings.TrimSpace(line))
}

// SplitLines splits a whole document into lines. Besides \n and \r\n it
// breaks on a lone \r and on the other Unicode line boundaries (\v, \f,
// \x1c-\x1e, U+0085, U+2028, U+2029). A trailing boundary does not add an
// empty line.
func SplitLines(data string) []string {
	var lines []string
	start := 0
	for i, r := range data {
		if i < start {
			continue
		}
		switch r {
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, data[start:i])
			start = i + utf8.RuneLen(r)
		case '\r':
			lines = append(lines, data[start:i])
			start = i + 1
			if start < len(data) && data[start] == '\n' {
				start++
			}
		}
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}
	return lines
}

// ReadLines loads the file at path as a list of lines.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// Extract returns one flattened line per cue block found in lines, in
// source order. Blocks whose identifier is not followed by a timing line,
// and blocks without text, produce nothing.
func Extract(lines []string) []string {
	i := 0
	if len(lines) > 0 && strings.EqualFold(strings.TrimSpace(lines[0]), header) {
		i++
	}

	out := make([]string, 0)
	for i < len(lines) {
		text, next, ok := scanCue(lines, i)
		if ok {
			out = append(out, text)
		}
		i = next
	}
	return out
}

// scanCue reads the block starting at i. It returns the flattened text,
// the index to resume scanning from, and whether a cue was produced.
func scanCue(lines []string, i int) (string, int, bool) {
	if !IsIdentifier(lines[i]) {
		return "", i + 1, false
	}
	i++
	if i >= len(lines) || !IsTiming(lines[i]) {
		return "", i, false
	}
	i++

	var body []string
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" || identifierRe.MatchString(line) {
			break
		}
		body = append(body, line)
		i++
	}
	if len(body) == 0 {
		return "", i, false
	}
	return strings.Join(body, " "), i, true
}

// Census counts the cues a general WebVTT reader finds in the file at
// path, whatever its extension. It is independent of Extract and used to
// compare the two counts.
func Census(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	subs, err := astisub.ReadFromWebVTT(f)
	if err != nil {
		return 0, fmt.Errorf("read %s as webvtt: %w", path, err)
	}
	return len(subs.Items), nil
}
