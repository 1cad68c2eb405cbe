package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dkarlovi/legendas/internal/assets"
)

const (
	DefaultReferenceFile = "legenda_original.txt"
	DefaultTemplateFile  = "legenda_traduzida.txt"
)

type Config struct {
	Language      string `yaml:"language"`
	OutputDir     string `yaml:"output_dir"`
	ReferenceFile string `yaml:"reference_file"`
	TemplateFile  string `yaml:"template_file"`
	LogLevel      string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Language:      assets.DefaultLanguage.String(),
		OutputDir:     ".",
		ReferenceFile: DefaultReferenceFile,
		TemplateFile:  DefaultTemplateFile,
	}
}

// Load reads filename on top of the defaults. A missing file is not an
// error, the defaults are returned as they are.
func Load(filename string) (*Config, error) {
	config := Default()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			msg := ""
			for _, field := range typeError.Errors {
				msg += fmt.Sprintf("  - <fg=red>%s</>\n", field)
			}
			return nil, fmt.Errorf("error parsing config file <info>%s</>:\n%s", filename, msg)
		}
		// an empty file decodes to io.EOF
		if errors.Is(err, io.EOF) {
			return config, nil
		}
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file <info>%s</>: %w", filename, err)
	}
	return config, nil
}

// Validate checks the values a run depends on.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language %q: %w", c.Language, err)
	}
	if c.ReferenceFile == "" {
		return errors.New("reference_file must not be empty")
	}
	if c.TemplateFile == "" {
		return errors.New("template_file must not be empty")
	}
	if c.ReferenceFile == c.TemplateFile {
		return fmt.Errorf("reference_file and template_file are both %q", c.ReferenceFile)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	return nil
}

// Tag returns the parsed language, or the default when it does not parse.
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return assets.DefaultLanguage
	}
	return tag
}
