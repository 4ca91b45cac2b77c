package steps

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/erispulse/epscaffold/internal/tui"
	"github.com/erispulse/epscaffold/internal/tui/components"
)

type metaPhase int

const (
	metaNamePhase metaPhase = iota
	metaVersionPhase
	metaDescriptionPhase
	metaAuthorNamePhase
	metaAuthorEmailPhase
	metaHomepagePhase
)

// MetadataStep collects the project metadata one field at a time.
type MetadataStep struct {
	styles   *tui.StyleSet
	phase    metaPhase
	input    components.TextInput
	complete bool

	projectType string
	nameDefault string
	prefillName string

	name        string
	version     string
	description string
	authorName  string
	authorEmail string
	homepage    string

	// Prompt defaults from user config.
	defaultAuthorName  string
	defaultAuthorEmail string
}

// NewMetadataStep creates the metadata collection step. prefillName comes
// from the --name flag; the author defaults come from the user's config
// file, falling back to placeholders.
func NewMetadataStep(styles *tui.StyleSet, prefillName, defaultAuthorName, defaultAuthorEmail string) *MetadataStep {
	return &MetadataStep{
		styles:             styles,
		prefillName:        prefillName,
		defaultAuthorName:  defaultAuthorName,
		defaultAuthorEmail: defaultAuthorEmail,
	}
}

// Prepare initializes the name input once the project type is known.
func (s *MetadataStep) Prepare(ctx *tui.WizardContext) {
	s.projectType = ctx.Type
	s.phase = metaNamePhase
	s.complete = false

	s.nameDefault = "ErisPulse-" + titleCase(ctx.Type)
	if s.prefillName != "" {
		s.nameDefault = s.prefillName
	}
	s.rebuildInput()
}

func (s *MetadataStep) Title() string { return "Project Metadata" }

func (s *MetadataStep) Init() tea.Cmd {
	return s.input.Init()
}

func (s *MetadataStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	// Backspace on an empty input navigates back one phase.
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "backspace" && s.input.Value() == "" {
		if s.phase == metaNamePhase {
			return s, func() tea.Msg { return tui.StepBackMsg{} }
		}
		s.phase--
		s.rebuildInput()
		return s, s.input.Init()
	}

	updated, cmd := s.input.Update(msg)
	s.input = updated

	if s.input.Done() {
		s.storePhase(s.input.Value())
		if s.phase == metaHomepagePhase {
			s.complete = true
			return s, func() tea.Msg { return tui.StepCompleteMsg{} }
		}
		s.phase++
		s.rebuildInput()
		return s, s.input.Init()
	}

	return s, cmd
}

func (s *MetadataStep) storePhase(val string) {
	switch s.phase {
	case metaNamePhase:
		s.name = val
	case metaVersionPhase:
		s.version = val
	case metaDescriptionPhase:
		s.description = val
	case metaAuthorNamePhase:
		s.authorName = val
	case metaAuthorEmailPhase:
		s.authorEmail = val
	case metaHomepagePhase:
		s.homepage = val
	}
}

func (s *MetadataStep) rebuildInput() {
	switch s.phase {
	case metaNamePhase:
		// Show the directory layout derived from the name as the user types.
		hint := func(val string) string {
			return fmt.Sprintf("→ ./%s/%s/", val, strings.ReplaceAll(val, "-", "_"))
		}
		validate := func(val string) error {
			if val == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		}
		s.input = s.newInput("Project name", s.nameDefault, hint, validate)
		if s.name != "" {
			s.input.SetValue(s.name)
		}
	case metaVersionPhase:
		s.input = s.newInput("Version", "1.0.0", nil, nil)
	case metaDescriptionPhase:
		s.input = s.newInput("Description", "An awesome ErisPulse project", nil, nil)
	case metaAuthorNamePhase:
		s.input = s.newInput("Author name", s.defaultAuthorName, nil, nil)
	case metaAuthorEmailPhase:
		s.input = s.newInput("Author email", s.defaultAuthorEmail, nil, nil)
	case metaHomepagePhase:
		def := fmt.Sprintf("https://github.com/%s/%s", s.authorName, s.name)
		s.input = s.newInput("Homepage URL", def, nil, nil)
	}
}

// newInput builds a text input pre-filled with its default so Enter accepts it.
func (s *MetadataStep) newInput(label, def string, hintFn func(string) string, validate func(string) error) components.TextInput {
	in := components.NewTextInput(
		label,
		def,
		hintFn,
		validate,
		s.styles.Theme.Accent,
		s.styles.AccentTxt,
		s.styles.InactiveBorder,
		s.styles.ErrorTxt,
		s.styles.DimTxt,
		s.styles.KbdKey,
		s.styles.KbdDesc,
	)
	if def != "" {
		in.SetValue(def)
	}
	return in
}

func (s *MetadataStep) View(width int) string {
	return s.input.View(width)
}

func (s *MetadataStep) Complete() bool {
	return s.complete
}

func (s *MetadataStep) Summary() string {
	return fmt.Sprintf("%s · v%s", s.name, s.version)
}

func (s *MetadataStep) Apply(ctx *tui.WizardContext) {
	ctx.Name = s.name
	ctx.Version = s.version
	ctx.Description = s.description
	ctx.AuthorName = s.authorName
	ctx.AuthorEmail = s.authorEmail
	ctx.Homepage = s.homepage
}

// titleCase capitalizes the first letter of a string.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
