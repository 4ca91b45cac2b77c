package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBanner returns the branded header for the wizard.
func RenderBanner(styles *StyleSet, version string, width int) string {
	if version == "" {
		version = "dev"
	}

	title := styles.Banner.Render("⚡ E R I S P U L S E") + "  " + styles.VersionPill.Render("v"+version)
	subtitle := styles.Subtitle.Render("Scaffold a module, CLI extension, or adapter project.")

	dividerWidth := width - 4
	if dividerWidth < 20 {
		dividerWidth = 20
	}
	if dividerWidth > 60 {
		dividerWidth = 60
	}
	divider := lipgloss.NewStyle().
		Foreground(styles.Theme.Border).
		Render(strings.Repeat("─", dividerWidth))

	return fmt.Sprintf("  %s\n  %s\n  %s\n\n", title, subtitle, divider)
}
