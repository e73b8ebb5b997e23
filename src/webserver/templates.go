package webserver

import (
	"fmt"
	"html/template"
	"io/fs"
)

// Templates is a type which knows how to find and parse HTML templates
// by their name.
type Templates interface {

	// Get find and parses a template based on its file name.
	Get(path string) (*template.Template, error)

	// All returns a struct which contains all templates in
	// non-exported attributes.
	All() (*AllTemplates, error)
}

// FSTemplates is Templates implementation which uses fs.FS to
// extract template data.
type FSTemplates struct {
	fs fs.FS
}

// Get implements Templates for the file system in FSTemplates.
func (t *FSTemplates) Get(path string) (*template.Template, error) {
	tpl := template.New(path)

	parsed, err := tpl.ParseFS(t.fs, path)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	return parsed, nil
}

// All implements the Templates interface.
func (t *FSTemplates) All() (*AllTemplates, error) {
	index, err := t.Get("index.html")
	if err != nil {
		return nil, fmt.Errorf("finding index template: %w", err)
	}

	return &AllTemplates{
		index: index,
	}, nil
}

// NewFSTemplates returns a new FSTemplates which will use the argument
// fs.FS for finding and reading files.
func NewFSTemplates(fs fs.FS) *FSTemplates {
	return &FSTemplates{
		fs: fs,
	}
}

// AllTemplates is a structure which contains all parsed templates for different pages.
// They are ready for usage in http handlers which return HTML.
type AllTemplates struct {
	index *template.Template
}
