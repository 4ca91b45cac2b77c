package project

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// answersFile is the on-disk shape of a scaffold answers file, used to run
// the generator without prompts.
type answersFile struct {
	Type        string `yaml:"type"`
	Name        string `yaml:"name"`
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
	AuthorName  string `yaml:"author_name,omitempty"`
	AuthorEmail string `yaml:"author_email,omitempty"`
	Homepage    string `yaml:"homepage,omitempty"`
}

// LoadAnswers reads a YAML answers file and returns a validated Info.
func LoadAnswers(path string) (Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("reading answers file %s: %w", path, err)
	}
	return ParseAnswers(data)
}

// ParseAnswers parses raw YAML answers and validates required fields.
func ParseAnswers(data []byte) (Info, error) {
	var raw answersFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Info{}, fmt.Errorf("parsing answers: %w", err)
	}

	typ, err := ParseType(raw.Type)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Type:        typ,
		Name:        raw.Name,
		Version:     raw.Version,
		Description: raw.Description,
		AuthorName:  raw.AuthorName,
		AuthorEmail: raw.AuthorEmail,
		Homepage:    raw.Homepage,
	}
	applyDefaults(&info)

	if err := info.Validate(); err != nil {
		return Info{}, err
	}
	return info, nil
}

// applyDefaults fills the optional fields the same way the interactive
// prompts do.
func applyDefaults(info *Info) {
	if info.Version == "" {
		info.Version = "1.0.0"
	}
	if info.Description == "" {
		info.Description = "An awesome ErisPulse project"
	}
	if info.AuthorName == "" {
		info.AuthorName = "yourname"
	}
	if info.AuthorEmail == "" {
		info.AuthorEmail = "your@mail.com"
	}
	if info.Homepage == "" && info.Name != "" {
		info.Homepage = fmt.Sprintf("https://github.com/%s/%s", info.AuthorName, info.Name)
	}
}

// ApplyDefaults exposes prompt-equivalent defaulting for flag-driven runs.
func ApplyDefaults(info *Info) {
	applyDefaults(info)
}
