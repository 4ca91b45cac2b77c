package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erispulse/epscaffold/project"
)

func buildInfo(t project.Type, name string) project.Info {
	return project.Info{
		Type:        t,
		Name:        name,
		Version:     "1.0.0",
		Description: "test project",
		AuthorName:  "alice",
		AuthorEmail: "alice@example.com",
		Homepage:    "https://github.com/alice/" + name,
	}
}

func TestBuildModule(t *testing.T) {
	dir := t.TempDir()
	info := buildInfo(project.TypeModule, "ErisPulse-Weather")

	written, err := Build(dir, info)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	base := filepath.Join(dir, "ErisPulse-Weather")
	expected := []string{
		filepath.Join(base, "pyproject.toml"),
		filepath.Join(base, "README.md"),
		filepath.Join(base, "LICENSE"),
		filepath.Join(base, "ErisPulse_Weather", "__init__.py"),
		filepath.Join(base, "ErisPulse_Weather", "Core.py"),
	}

	if len(written) != len(expected) {
		t.Fatalf("wrote %d files, want %d: %v", len(written), len(expected), written)
	}
	for i, p := range expected {
		if written[i] != p {
			t.Errorf("written[%d] = %q, want %q", i, written[i], p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected file missing: %s", p)
		}
	}
}

func TestBuildCLI(t *testing.T) {
	dir := t.TempDir()
	info := buildInfo(project.TypeCLI, "ErisPulse-Tools")

	written, err := Build(dir, info)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(written) != 5 {
		t.Fatalf("wrote %d files, want 5", len(written))
	}

	cliPath := filepath.Join(dir, "ErisPulse-Tools", "ErisPulse_Tools", "cli.py")
	if _, err := os.Stat(cliPath); err != nil {
		t.Errorf("cli.py missing: %v", err)
	}
}

func TestBuildAdapter(t *testing.T) {
	dir := t.TempDir()
	info := buildInfo(project.TypeAdapter, "ErisPulse-Telegram")

	written, err := Build(dir, info)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(written) != 6 {
		t.Fatalf("wrote %d files, want 6", len(written))
	}

	conv, err := os.ReadFile(filepath.Join(dir, "ErisPulse-Telegram", "ErisPulse_Telegram", "Converter.py"))
	if err != nil {
		t.Fatalf("reading Converter.py: %v", err)
	}
	if !strings.Contains(string(conv), "class TelegramConverter") {
		t.Errorf("Converter.py not rendered for project:\n%s", conv)
	}
}

func TestBuildRejectsNonEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "ErisPulse-Weather")
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "leftover.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Build(dir, buildInfo(project.TypeModule, "ErisPulse-Weather"))
	if !errors.Is(err, ErrDirectoryExists) {
		t.Errorf("error = %v, want ErrDirectoryExists", err)
	}
}

func TestBuildAllowsEmptyExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "ErisPulse-Weather"), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Build(dir, buildInfo(project.TypeModule, "ErisPulse-Weather")); err != nil {
		t.Errorf("Build into empty existing directory returned %v", err)
	}
}

func TestBuildRejectsUnknownType(t *testing.T) {
	dir := t.TempDir()
	info := buildInfo(project.Type("plugin"), "ErisPulse-X")

	_, err := Build(dir, info)
	if !errors.Is(err, ErrUnknownProjectType) {
		t.Errorf("error = %v, want ErrUnknownProjectType", err)
	}

	// The invalid type must be rejected before any file I/O.
	if _, statErr := os.Stat(filepath.Join(dir, "ErisPulse-X")); !os.IsNotExist(statErr) {
		t.Error("project directory created despite invalid type")
	}
}

func TestBuildFileContentsRendered(t *testing.T) {
	dir := t.TempDir()
	info := buildInfo(project.TypeModule, "ErisPulse-Weather")

	if _, err := Build(dir, info); err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ErisPulse-Weather", "pyproject.toml"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if strings.Contains(content, "{{") {
		t.Errorf("pyproject.toml contains unrendered template actions:\n%s", content)
	}
	if !strings.Contains(content, `name = "ErisPulse-Weather"`) {
		t.Errorf("pyproject.toml missing project name:\n%s", content)
	}
}
