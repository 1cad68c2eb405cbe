package assets

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"golang.org/x/text/language"
)

//go:embed templates/*.txt
var Embedded embed.FS

// DefaultLanguage is used when no configured language matches a template.
var DefaultLanguage = language.BrazilianPortuguese

// templateByLanguage lists the embedded translation templates, default first.
var templateByLanguage = []struct {
	tag  language.Tag
	path string
}{
	{DefaultLanguage, "templates/pt-BR.txt"},
	{language.English, "templates/en.txt"},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(templateByLanguage))
	for i, t := range templateByLanguage {
		tags[i] = t.tag
	}
	return language.NewMatcher(tags)
}()

// TemplateData is what a translation template can refer to.
type TemplateData struct {
	Reference string
}

// Languages returns the tags a translation template exists for.
func Languages() []language.Tag {
	tags := make([]language.Tag, len(templateByLanguage))
	for i, t := range templateByLanguage {
		tags[i] = t.tag
	}
	return tags
}

// TranslationTemplate renders the instructions written into the file the
// operator translates into, in the language closest to lang.
func TranslationTemplate(lang language.Tag, data TemplateData) ([]byte, error) {
	_, idx, _ := matcher.Match(lang)
	path := templateByLanguage[idx].path

	raw, err := Embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	tpl, err := template.New(path).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
