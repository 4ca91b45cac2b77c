// Package scaffold implements template selection, content generation, and
// file materialization for new ErisPulse projects.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"text/template"

	"github.com/erispulse/epscaffold/project"
	"github.com/erispulse/epscaffold/templates"
)

// ErrUnknownProjectType is returned when no template set exists for a type.
// Validation should have rejected the type already; this is the builder's
// own guard.
var ErrUnknownProjectType = errors.New("unknown project type")

// FileSpec maps one output file to its template.
type FileSpec struct {
	Path      string // relative to the project root, or the package dir
	Template  string // template path under templates/scaffold
	InPackage bool   // write under the package subdirectory
}

// Manifest returns the ordered file set for a project type.
func Manifest(t project.Type) ([]FileSpec, error) {
	common := []FileSpec{
		{Path: "pyproject.toml", Template: string(t) + "/pyproject.toml.tmpl"},
		{Path: "README.md", Template: "common/README.md.tmpl"},
		{Path: "LICENSE", Template: "common/LICENSE.tmpl"},
	}

	switch t {
	case project.TypeModule:
		return append(common,
			FileSpec{Path: "__init__.py", Template: "module/__init__.py.tmpl", InPackage: true},
			FileSpec{Path: "Core.py", Template: "module/Core.py.tmpl", InPackage: true},
		), nil
	case project.TypeCLI:
		return append(common,
			FileSpec{Path: "__init__.py", Template: "cli/__init__.py.tmpl", InPackage: true},
			FileSpec{Path: "cli.py", Template: "cli/cli.py.tmpl", InPackage: true},
		), nil
	case project.TypeAdapter:
		return append(common,
			FileSpec{Path: "__init__.py", Template: "adapter/__init__.py.tmpl", InPackage: true},
			FileSpec{Path: "Core.py", Template: "adapter/Core.py.tmpl", InPackage: true},
			FileSpec{Path: "Converter.py", Template: "adapter/Converter.py.tmpl", InPackage: true},
		), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProjectType, t)
}

// templateData is passed to every template during rendering.
type templateData struct {
	Name        string
	Version     string
	Description string
	AuthorName  string
	AuthorEmail string
	Homepage    string
	PackageName string
	ShortName   string
	EntryKey    string
	PlatformTag string
}

func newTemplateData(info project.Info) templateData {
	return templateData{
		Name:        info.Name,
		Version:     info.Version,
		Description: info.Description,
		AuthorName:  info.AuthorName,
		AuthorEmail: info.AuthorEmail,
		Homepage:    info.Homepage,
		PackageName: info.PackageName(),
		ShortName:   info.ShortName(),
		EntryKey:    info.EntryKey(),
		PlatformTag: info.PlatformTag(),
	}
}

// Render produces the content for one template. It is pure: same info in,
// same bytes out, no filesystem access beyond the embedded assets.
func Render(tmplPath string, info project.Info) (string, error) {
	content, err := templates.Get(tmplPath)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(path.Base(tmplPath)).Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newTemplateData(info)); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", tmplPath, err)
	}
	return buf.String(), nil
}
