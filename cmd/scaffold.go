package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/erispulse/epscaffold/internal/config"
	"github.com/erispulse/epscaffold/internal/output"
	"github.com/erispulse/epscaffold/internal/tui"
	"github.com/erispulse/epscaffold/internal/tui/steps"
	"github.com/erispulse/epscaffold/project"
	"github.com/erispulse/epscaffold/scaffold"
)

type scaffoldOptions struct {
	Output         string
	Type           string
	Name           string
	Version        string
	Description    string
	AuthorName     string
	AuthorEmail    string
	Homepage       string
	Answers        string
	NonInteractive bool
	Plain          bool
}

var scaffoldOpts scaffoldOptions

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate a new ErisPulse project skeleton",
	Long: `Generate a ready-to-develop ErisPulse project: a plugin module, a CLI
extension, or a protocol adapter. Without flags an interactive wizard collects
the project metadata; flags, an answers file, or --non-interactive skip it.`,
	Example: `  epscaffold scaffold
  epscaffold scaffold --type adapter --name ErisPulse-Telegram --non-interactive
  epscaffold scaffold --answers project.yaml --output ./work`,
	RunE: runScaffold,
}

func init() {
	f := scaffoldCmd.Flags()
	f.StringVarP(&scaffoldOpts.Output, "output", "o", ".", "directory the project directory is created in")
	f.StringVarP(&scaffoldOpts.Type, "type", "t", "", "project type: module, cli, or adapter")
	f.StringVarP(&scaffoldOpts.Name, "name", "n", "", "project name, e.g. ErisPulse-Weather")
	f.StringVar(&scaffoldOpts.Version, "project-version", "", "initial project version")
	f.StringVar(&scaffoldOpts.Description, "description", "", "short project description")
	f.StringVar(&scaffoldOpts.AuthorName, "author-name", "", "author name for the manifest")
	f.StringVar(&scaffoldOpts.AuthorEmail, "author-email", "", "author email for the manifest")
	f.StringVar(&scaffoldOpts.Homepage, "homepage", "", "project homepage URL")
	f.StringVar(&scaffoldOpts.Answers, "answers", "", "YAML answers file, skips all prompts")
	f.BoolVar(&scaffoldOpts.NonInteractive, "non-interactive", false, "never prompt; take everything from flags")
	f.BoolVar(&scaffoldOpts.Plain, "plain", false, "use plain prompts instead of the full-screen wizard")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	info, ok, err := collectInfo(&scaffoldOpts)
	if err != nil {
		return err
	}
	if !ok {
		output.Info("cancelled, no files were written")
		return nil
	}

	if err := info.Validate(); err != nil {
		return err
	}

	output.Debug("scaffolding project", "type", info.Type, "name", info.Name, "output", scaffoldOpts.Output)
	written, err := scaffold.Build(scaffoldOpts.Output, info)
	if err != nil {
		return err
	}

	reportSuccess(info, scaffoldOpts.Output, written)
	return nil
}

// collectInfo resolves the project answers from, in priority order: an
// answers file, flags alone, or an interactive session. The bool result is
// false when the user cancelled.
func collectInfo(opts *scaffoldOptions) (project.Info, bool, error) {
	if opts.Answers != "" {
		info, err := project.LoadAnswers(opts.Answers)
		if err != nil {
			return project.Info{}, false, err
		}
		return info, true, nil
	}

	if opts.NonInteractive {
		info, err := collectNonInteractive(opts)
		if err != nil {
			return project.Info{}, false, err
		}
		return info, true, nil
	}

	defaults, err := config.NewLoader().Load("")
	if err != nil {
		output.Warn("could not load user defaults", "err", err)
		defaults = (&config.Defaults{}).WithFallbacks()
	}

	if opts.Plain {
		return collectPlain(opts, defaults)
	}
	return collectWizard(opts, defaults)
}

// collectNonInteractive builds the answers from flags only, applying the same
// defaults the prompts would.
func collectNonInteractive(opts *scaffoldOptions) (project.Info, error) {
	typ, err := project.ParseType(opts.Type)
	if err != nil {
		return project.Info{}, err
	}
	if strings.TrimSpace(opts.Name) == "" {
		return project.Info{}, project.ErrEmptyName
	}

	info := project.Info{
		Type:        typ,
		Name:        opts.Name,
		Version:     opts.Version,
		Description: opts.Description,
		AuthorName:  opts.AuthorName,
		AuthorEmail: opts.AuthorEmail,
		Homepage:    opts.Homepage,
	}
	project.ApplyDefaults(&info)
	return info, nil
}

// collectPlain walks through the promptui question sequence.
func collectPlain(opts *scaffoldOptions, defaults *config.Defaults) (project.Info, bool, error) {
	typeVal := opts.Type
	if typeVal == "" {
		var err error
		typeVal, err = askSelect("Project type", []string{"module", "cli", "adapter"})
		if err != nil {
			return project.Info{}, false, err
		}
	}
	typ, err := project.ParseType(typeVal)
	if err != nil {
		return project.Info{}, false, err
	}

	nameDefault := opts.Name
	if nameDefault == "" {
		nameDefault = "ErisPulse-" + titleCase(string(typ))
	}
	name, err := askText("Project name", nameDefault)
	if err != nil {
		return project.Info{}, false, err
	}
	version, err := askText("Version", "1.0.0")
	if err != nil {
		return project.Info{}, false, err
	}
	description, err := askText("Description", "An awesome ErisPulse project")
	if err != nil {
		return project.Info{}, false, err
	}
	authorName, err := askText("Author name", defaults.AuthorName)
	if err != nil {
		return project.Info{}, false, err
	}
	authorEmail, err := askText("Author email", defaults.AuthorEmail)
	if err != nil {
		return project.Info{}, false, err
	}
	homepage, err := askText("Homepage URL", fmt.Sprintf("https://github.com/%s/%s", authorName, name))
	if err != nil {
		return project.Info{}, false, err
	}

	info := project.Info{
		Type:        typ,
		Name:        name,
		Version:     version,
		Description: description,
		AuthorName:  authorName,
		AuthorEmail: authorEmail,
		Homepage:    homepage,
	}

	output.Println("")
	output.Println(fmt.Sprintf("  Type:        %s", info.Type))
	output.Println(fmt.Sprintf("  Name:        %s", info.Name))
	output.Println(fmt.Sprintf("  Version:     %s", info.Version))
	output.Println(fmt.Sprintf("  Description: %s", info.Description))
	output.Println(fmt.Sprintf("  Author:      %s <%s>", info.AuthorName, info.AuthorEmail))
	output.Println(fmt.Sprintf("  Homepage:    %s", info.Homepage))
	output.Println("")

	confirmed, err := askConfirm("Create project")
	if err != nil {
		return project.Info{}, false, err
	}
	if !confirmed {
		return project.Info{}, false, nil
	}
	return info, true, nil
}

// collectWizard runs the full-screen bubbletea wizard.
func collectWizard(opts *scaffoldOptions, defaults *config.Defaults) (project.Info, bool, error) {
	theme := tui.DetectTheme(themeOverride)
	styles := tui.NewStyleSet(theme)

	stepList := []tui.Step{
		steps.NewTypeStep(styles, opts.Type),
		steps.NewMetadataStep(styles, opts.Name, defaults.AuthorName, defaults.AuthorEmail),
		steps.NewReviewStep(styles),
	}

	model := tui.NewWizardModel(theme, stepList, appVersion)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return project.Info{}, false, fmt.Errorf("running wizard: %w", err)
	}

	wiz, ok := final.(tui.WizardModel)
	if !ok || wiz.Err() != nil || !wiz.Done() {
		return project.Info{}, false, nil
	}

	ctx := wiz.Context()
	typ, err := project.ParseType(ctx.Type)
	if err != nil {
		return project.Info{}, false, err
	}

	info := project.Info{
		Type:        typ,
		Name:        ctx.Name,
		Version:     ctx.Version,
		Description: ctx.Description,
		AuthorName:  ctx.AuthorName,
		AuthorEmail: ctx.AuthorEmail,
		Homepage:    ctx.Homepage,
	}
	return info, true, nil
}

// reportSuccess prints the generated tree and the follow-up commands.
func reportSuccess(info project.Info, outputDir string, written []string) {
	styles := tui.NewStyleSet(tui.DetectTheme(themeOverride))
	baseDir := filepath.Join(outputDir, info.Name)

	relPaths := make([]string, 0, len(written))
	for _, p := range written {
		rel, err := filepath.Rel(baseDir, p)
		if err != nil {
			rel = p
		}
		relPaths = append(relPaths, filepath.ToSlash(rel))
	}

	output.Println("")
	output.Println(tui.RenderTree(styles, info.Name, relPaths))
	output.Println("  " + styles.SuccessTxt.Render(fmt.Sprintf("✓ Created %s project in %s", info.Type, baseDir)))
	output.Println("")

	nextSteps := strings.Join([]string{
		styles.Title.Render("Next steps"),
		styles.PrimaryTxt.Render(fmt.Sprintf("1. cd %s", baseDir)),
		styles.PrimaryTxt.Render("2. pip install -e ."),
		styles.PrimaryTxt.Render("3. epsdk run main.py"),
	}, "\n")
	output.Println(styles.BorderedBox.Render(nextSteps))
	output.Println("")
}
