package project

import (
	"errors"
	"testing"
)

func TestParseAnswers(t *testing.T) {
	data := []byte(`type: adapter
name: ErisPulse-Telegram
version: 2.0.0
description: Telegram protocol adapter
author_name: alice
author_email: alice@example.com
homepage: https://example.com/telegram
`)

	info, err := ParseAnswers(data)
	if err != nil {
		t.Fatalf("ParseAnswers returned error: %v", err)
	}
	if info.Type != TypeAdapter {
		t.Errorf("Type = %q, want adapter", info.Type)
	}
	if info.Name != "ErisPulse-Telegram" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Version != "2.0.0" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.Homepage != "https://example.com/telegram" {
		t.Errorf("Homepage = %q", info.Homepage)
	}
}

func TestParseAnswersAppliesDefaults(t *testing.T) {
	info, err := ParseAnswers([]byte("type: module\nname: ErisPulse-Weather\n"))
	if err != nil {
		t.Fatalf("ParseAnswers returned error: %v", err)
	}
	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", info.Version)
	}
	if info.Description != "An awesome ErisPulse project" {
		t.Errorf("Description = %q", info.Description)
	}
	if info.AuthorName != "yourname" || info.AuthorEmail != "your@mail.com" {
		t.Errorf("author defaults not applied: %q <%q>", info.AuthorName, info.AuthorEmail)
	}
	if info.Homepage != "https://github.com/yourname/ErisPulse-Weather" {
		t.Errorf("Homepage = %q", info.Homepage)
	}
}

func TestParseAnswersRejectsBadType(t *testing.T) {
	if _, err := ParseAnswers([]byte("type: plugin\nname: X\n")); !errors.Is(err, ErrInvalidProjectType) {
		t.Errorf("error = %v, want ErrInvalidProjectType", err)
	}
}

func TestParseAnswersRejectsMissingName(t *testing.T) {
	if _, err := ParseAnswers([]byte("type: module\n")); !errors.Is(err, ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
}

func TestParseAnswersRejectsInvalidYAML(t *testing.T) {
	if _, err := ParseAnswers([]byte("type: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadAnswersMissingFile(t *testing.T) {
	if _, err := LoadAnswers("/nonexistent/answers.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
