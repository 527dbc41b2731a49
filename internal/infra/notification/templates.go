package notification

import (
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"delicious/internal/domain/constants"
	"delicious/internal/errors"
)

//go:embed templates/*
var templateFS embed.FS

// templatePair is the HTML body and its plain text alternative.
type templatePair struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// templateData is what every mail template renders against.
type templateData struct {
	Name string
	Data map[string]string
}

// ErrUnknownTemplate is returned for a template name with no embedded files.
var ErrUnknownTemplate = errors.New("unknown mail template")

type templateSet map[string]templatePair

func loadTemplates(names ...string) (templateSet, error) {
	set := make(templateSet, len(names))
	for _, name := range names {
		html, err := htmltemplate.ParseFS(templateFS, "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s html template", name)
		}
		text, err := texttemplate.ParseFS(templateFS, "templates/"+name+".txt")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s text template", name)
		}
		set[name] = templatePair{html: html, text: text}
	}

	return set, nil
}

func defaultTemplates() (templateSet, error) {
	return loadTemplates(constants.TemplatePasswordReset)
}

func (s templateSet) lookup(name string) (templatePair, error) {
	pair, ok := s[strings.TrimSpace(name)]
	if !ok {
		return templatePair{}, errors.Wrap(ErrUnknownTemplate, name)
	}

	return pair, nil
}
