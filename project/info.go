// Package project holds the validated project metadata collected before
// scaffolding, along with the identifiers derived from it.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// Type identifies which kind of project to scaffold.
type Type string

const (
	TypeModule  Type = "module"
	TypeCLI     Type = "cli"
	TypeAdapter Type = "adapter"
)

// Types lists every known project type, in prompt display order.
func Types() []Type {
	return []Type{TypeModule, TypeCLI, TypeAdapter}
}

// ErrInvalidProjectType is returned when a project type is outside the
// closed module/cli/adapter set. It must surface before any file I/O.
var ErrInvalidProjectType = errors.New("invalid project type")

// ErrEmptyName is returned when the project name is blank.
var ErrEmptyName = errors.New("project name is required")

// ParseType validates a raw type string against the known set.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeModule, TypeCLI, TypeAdapter:
		return Type(s), nil
	}
	return "", fmt.Errorf("%w: %q (must be module, cli, or adapter)", ErrInvalidProjectType, s)
}

// Info is the answer set for one scaffold run. It is constructed once from
// user input and read-only afterwards.
type Info struct {
	Type        Type
	Name        string
	Version     string
	Description string
	AuthorName  string
	AuthorEmail string
	Homepage    string
}

// IsZero reports whether no answers were collected, i.e. the user cancelled.
func (i Info) IsZero() bool {
	return i == Info{}
}

// Validate checks the invariants the builder relies on.
func (i Info) Validate() error {
	if _, err := ParseType(string(i.Type)); err != nil {
		return err
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// PackageName returns the installable package identifier: the project name
// with every hyphen replaced by an underscore.
func (i Info) PackageName() string {
	return strings.ReplaceAll(i.Name, "-", "_")
}

// ShortName returns the human-facing identifier: the segment after the last
// hyphen, or the whole name when there is none.
func (i Info) ShortName() string {
	if idx := strings.LastIndex(i.Name, "-"); idx >= 0 {
		return i.Name[idx+1:]
	}
	return i.Name
}

// EntryKey returns the manifest entry-point key for this project type.
// CLI extensions register under a lowercased key; modules and adapters
// keep the short name as-is.
func (i Info) EntryKey() string {
	if i.Type == TypeCLI {
		return strings.ToLower(i.ShortName())
	}
	return i.ShortName()
}

// PlatformTag returns the lowercased short name used by adapter converters
// as the platform identifier.
func (i Info) PlatformTag() string {
	return strings.ToLower(i.ShortName())
}
