package tui

import (
	"strings"
	"testing"
)

func TestRenderTree(t *testing.T) {
	styles := NewStyleSet(DarkTheme)
	paths := []string{
		"pyproject.toml",
		"README.md",
		"LICENSE",
		"ErisPulse_Weather/__init__.py",
		"ErisPulse_Weather/Core.py",
	}

	out := RenderTree(styles, "ErisPulse-Weather", paths)

	for _, want := range []string{
		"ErisPulse-Weather",
		"ErisPulse_Weather",
		"pyproject.toml",
		"Core.py",
		"└── ",
		"├── ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTreeNestingOrder(t *testing.T) {
	styles := NewStyleSet(DarkTheme)
	out := RenderTree(styles, "root", []string{"b.txt", "a/inner.txt"})

	// The directory's child must appear after the directory line.
	dirIdx := strings.Index(out, "a")
	innerIdx := strings.Index(out, "inner.txt")
	if dirIdx < 0 || innerIdx < 0 || innerIdx < dirIdx {
		t.Errorf("nested file not rendered under its directory:\n%s", out)
	}
}
