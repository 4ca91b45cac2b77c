package steps

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/erispulse/epscaffold/internal/tui"
	"github.com/erispulse/epscaffold/internal/tui/components"
)

// TypeStep selects which kind of project to scaffold.
type TypeStep struct {
	selector components.SingleSelect
	complete bool
	value    string
	prefill  string
}

// NewTypeStep creates the project type selection step. A non-empty prefill
// (from a flag) skips the step.
func NewTypeStep(styles *tui.StyleSet, prefill string) *TypeStep {
	items := []components.SingleSelectItem{
		{Label: "Module", Value: "module", Description: "A plugin module with a Main entry point", Icon: "📦"},
		{Label: "CLI extension", Value: "cli", Description: "A sub-command registered into the host CLI", Icon: "🔧"},
		{Label: "Adapter", Value: "adapter", Description: "A protocol adapter with an event converter", Icon: "🔌"},
	}

	selector := components.NewSingleSelect(
		items,
		styles.Theme.Accent,
		styles.Theme.Primary,
		styles.Theme.Secondary,
		styles.Theme.Dim,
		styles.Theme.Border,
		styles.Theme.ActiveBorder,
		styles.KbdKey,
		styles.KbdDesc,
	)

	return &TypeStep{
		selector: selector,
		prefill:  prefill,
	}
}

func (s *TypeStep) Title() string { return "Project Type" }

func (s *TypeStep) Init() tea.Cmd {
	if s.prefill != "" {
		s.complete = true
		s.value = s.prefill
		return func() tea.Msg { return tui.StepCompleteMsg{} }
	}
	return s.selector.Init()
}

func (s *TypeStep) Update(msg tea.Msg) (tui.Step, tea.Cmd) {
	if s.complete {
		return s, nil
	}

	updated, cmd := s.selector.Update(msg)
	s.selector = updated

	if s.selector.Done() {
		_, val := s.selector.Selected()
		s.complete = true
		s.value = val
		return s, func() tea.Msg { return tui.StepCompleteMsg{} }
	}

	return s, cmd
}

func (s *TypeStep) View(width int) string {
	return s.selector.View(width)
}

func (s *TypeStep) Complete() bool {
	return s.complete
}

func (s *TypeStep) Summary() string {
	return s.value
}

func (s *TypeStep) Apply(ctx *tui.WizardContext) {
	ctx.Type = s.value
}
