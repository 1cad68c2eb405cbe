package legenda_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dkarlovi/legendas/internal/legenda"
)

const sample = `WEBVTT

123e4567-e89b-12d3-a456-426614174000-1
00:00:01.000 --> 00:00:03.000
Hello
world

123e4567-e89b-12d3-a456-426614174000-2
00:00:04.000 --> 00:00:06.000
Second line
`

func options(dir string, lang language.Tag) legenda.Options {
	return legenda.Options{
		OutputDir:     dir,
		ReferenceFile: "legenda_original.txt",
		TemplateFile:  "legenda_traduzida.txt",
		Language:      lang,
	}
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.vtt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, sample)

	res, err := legenda.Extract(src, options(dir, language.BrazilianPortuguese))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Lines)
	assert.Equal(t, filepath.Join(dir, "legenda_original.txt"), res.ReferencePath)
	assert.Equal(t, filepath.Join(dir, "legenda_traduzida.txt"), res.TemplatePath)

	ref, err := os.ReadFile(res.ReferencePath)
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nSecond line", string(ref))

	tpl, err := os.ReadFile(res.TemplatePath)
	require.NoError(t, err)
	assert.Contains(t, string(tpl), "ATENÇÃO")
	assert.Contains(t, string(tpl), "legenda_original.txt")
}

func TestExtractCRLF(t *testing.T) {
	dir := t.TempDir()
	src := writeInput(t, dir, strings.ReplaceAll(sample, "\n", "\r\n"))

	res, err := legenda.Extract(src, options(dir, language.English))
	require.NoError(t, err)

	ref, err := os.ReadFile(res.ReferencePath)
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nSecond line", string(ref))

	tpl, err := os.ReadFile(res.TemplatePath)
	require.NoError(t, err)
	assert.Contains(t, string(tpl), "ATTENTION")
}

func TestExtractOverwrites(t *testing.T) {
	dir := t.TempDir()
	opts := options(dir, language.English)
	require.NoError(t, os.WriteFile(filepath.Join(dir, opts.ReferenceFile), []byte("old\nold\nold\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, opts.TemplateFile), []byte("my translation"), 0o644))

	res, err := legenda.Extract(writeInput(t, dir, sample), opts)
	require.NoError(t, err)

	ref, err := os.ReadFile(res.ReferencePath)
	require.NoError(t, err)
	assert.Equal(t, "Hello world\nSecond line", string(ref))

	tpl, err := os.ReadFile(res.TemplatePath)
	require.NoError(t, err)
	assert.NotContains(t, string(tpl), "my translation")
}

func TestExtractEmptyInput(t *testing.T) {
	dir := t.TempDir()
	res, err := legenda.Extract(writeInput(t, dir, ""), options(dir, language.English))
	require.NoError(t, err)
	assert.Zero(t, res.Lines)

	ref, err := os.ReadFile(res.ReferencePath)
	require.NoError(t, err)
	assert.Empty(t, ref)
}

func TestExtractMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := legenda.Extract(filepath.Join(dir, "missing.vtt"), options(dir, language.English))
	require.ErrorIs(t, err, legenda.ErrInputNotFound)
	assert.Contains(t, err.Error(), "missing.vtt")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "legenda_traduzida.txt")
	require.NoError(t, os.WriteFile(path, []byte("Olá mundo\nSegunda linha"), 0o644))

	n, err := legenda.Validate(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestValidateNotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := legenda.Validate(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, legenda.ErrInputNotFound)

	_, err = legenda.Validate(dir)
	assert.ErrorIs(t, err, legenda.ErrInputNotFound)
}
