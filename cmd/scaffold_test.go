package cmd

import (
	"errors"
	"testing"

	"github.com/erispulse/epscaffold/project"
)

func TestCollectNonInteractive(t *testing.T) {
	opts := &scaffoldOptions{
		Type: "adapter",
		Name: "ErisPulse-Telegram",
	}

	info, err := collectNonInteractive(opts)
	if err != nil {
		t.Fatalf("collectNonInteractive returned error: %v", err)
	}
	if info.Type != project.TypeAdapter {
		t.Errorf("Type = %q, want adapter", info.Type)
	}
	if info.Version != "1.0.0" {
		t.Errorf("Version default not applied: %q", info.Version)
	}
	if info.Homepage != "https://github.com/yourname/ErisPulse-Telegram" {
		t.Errorf("Homepage = %q", info.Homepage)
	}
}

func TestCollectNonInteractiveKeepsExplicitValues(t *testing.T) {
	opts := &scaffoldOptions{
		Type:        "module",
		Name:        "ErisPulse-Weather",
		Version:     "3.1.0",
		Description: "weather lookups",
		AuthorName:  "alice",
		AuthorEmail: "alice@example.com",
		Homepage:    "https://example.com",
	}

	info, err := collectNonInteractive(opts)
	if err != nil {
		t.Fatalf("collectNonInteractive returned error: %v", err)
	}
	if info.Version != "3.1.0" || info.AuthorName != "alice" || info.Homepage != "https://example.com" {
		t.Errorf("explicit flag values overwritten: %+v", info)
	}
}

func TestCollectNonInteractiveRequiresType(t *testing.T) {
	_, err := collectNonInteractive(&scaffoldOptions{Name: "ErisPulse-X"})
	if !errors.Is(err, project.ErrInvalidProjectType) {
		t.Errorf("error = %v, want ErrInvalidProjectType", err)
	}
}

func TestCollectNonInteractiveRequiresName(t *testing.T) {
	_, err := collectNonInteractive(&scaffoldOptions{Type: "module"})
	if !errors.Is(err, project.ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
}

func TestCollectInfoAnswersFile(t *testing.T) {
	_, _, err := collectInfo(&scaffoldOptions{Answers: "/nonexistent/answers.yaml"})
	if err == nil {
		t.Error("expected error for missing answers file")
	}
}
