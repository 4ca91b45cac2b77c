package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "author_name: alice\nauthor_email: alice@example.com\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.AuthorName != "alice" {
		t.Errorf("AuthorName = %q, want alice", d.AuthorName)
	}
	if d.AuthorEmail != "alice@example.com" {
		t.Errorf("AuthorEmail = %q", d.AuthorEmail)
	}
}

func TestLoadMissingFileUsesFallbacks(t *testing.T) {
	d, err := NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if d.AuthorName != "yourname" {
		t.Errorf("AuthorName = %q, want fallback", d.AuthorName)
	}
	if d.AuthorEmail != "your@mail.com" {
		t.Errorf("AuthorEmail = %q, want fallback", d.AuthorEmail)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("author_name: alice\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("EPSCAFFOLD_AUTHOR_NAME", "bob")

	d, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.AuthorName != "bob" {
		t.Errorf("AuthorName = %q, want env override bob", d.AuthorName)
	}
}

func TestLoadPartialFileFillsRest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("author_name: carol\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.AuthorName != "carol" {
		t.Errorf("AuthorName = %q, want carol", d.AuthorName)
	}
	if d.AuthorEmail != "your@mail.com" {
		t.Errorf("AuthorEmail = %q, want fallback", d.AuthorEmail)
	}
}
