// Package wizard implements the interactive setup flow that writes a
// config.yml from answers collected on the terminal.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleQuestion = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleDefault  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleSection  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	styleSuccess  = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleWarning  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// armColorChoices pairs theme tokens with their default hex for display.
var armColorChoices = []struct {
	Token string
	Hex   string
}{
	{"synapse_cyan", "#00d4ff"},
	{"dendrite_violet", "#a78bfa"},
	{"axon_amber", "#ffb020"},
}

// themeTokens lists the customizable theme entries in prompt order.
var themeTokens = []struct {
	Name    string
	Default string
}{
	{"void", "#080c14"},
	{"nebula", "#0f1623"},
	{"star_dust", "#1a2332"},
	{"synapse_cyan", "#00d4ff"},
	{"dendrite_violet", "#a78bfa"},
	{"axon_amber", "#ffb020"},
	{"text_bright", "#f1f5f9"},
	{"text_dim", "#94a3b8"},
	{"text_faint", "#64748b"},
}

const configHeader = `# Galaxy Profile README Configuration
# Generated by: galaxy-profile init
#
# Regenerate SVGs with:
#   galaxy-profile generate
#
# Demo mode (no API calls):
#   galaxy-profile generate --demo

`

// fileConfig mirrors config.Config with yaml tags so the wizard can write
// a file in the same key order the example config uses.
type fileConfig struct {
	Username   string            `yaml:"username"`
	Profile    fileProfile       `yaml:"profile"`
	Social     map[string]string `yaml:"social,omitempty"`
	GalaxyArms []fileArm         `yaml:"galaxy_arms"`
	Projects   []fileProject     `yaml:"projects,omitempty"`
	Theme      map[string]string `yaml:"theme,omitempty"`
	Stats      *fileStats        `yaml:"stats,omitempty"`
	Languages  *fileLanguages    `yaml:"languages,omitempty"`
}

type fileProfile struct {
	Name       string `yaml:"name"`
	Tagline    string `yaml:"tagline,omitempty"`
	Bio        string `yaml:"bio,omitempty"`
	Company    string `yaml:"company,omitempty"`
	Location   string `yaml:"location,omitempty"`
	Philosophy string `yaml:"philosophy,omitempty"`
}

type fileArm struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Items []string `yaml:"items"`
}

type fileProject struct {
	Repo        string `yaml:"repo"`
	Arm         int    `yaml:"arm"`
	Description string `yaml:"description,omitempty"`
}

type fileStats struct {
	Metrics []string `yaml:"metrics"`
}

type fileLanguages struct {
	Exclude    []string `yaml:"exclude"`
	MaxDisplay int      `yaml:"max_display"`
}

// errInputClosed reports that the answer stream ended before the setup was
// complete, e.g. a redirected stdin or an aborted terminal session.
var errInputClosed = errors.New("input closed before setup finished")

// Wizard collects configuration answers over a line-based prompt loop.
// Once the input stream ends, eof stays set and every prompt helper returns
// its default immediately instead of retrying.
type Wizard struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func New() *Wizard {
	return NewWithIO(os.Stdin, os.Stdout)
}

// NewWithIO creates a Wizard reading answers from in and writing prompts to
// out, for scripted use.
func NewWithIO(in io.Reader, out io.Writer) *Wizard {
	return &Wizard{in: bufio.NewScanner(in), out: out}
}

// Run walks the user through the full setup and writes the config to path.
// It returns true when the user asked to generate the images right away.
func (w *Wizard) Run(path string) (bool, error) {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, styleTitle.Render("Galaxy Profile — Interactive Setup"))
	fmt.Fprintln(w.out)

	defaults := fileConfig{}
	if existing, ok := w.loadExisting(path); ok {
		choice := w.selectOption(path+" already exists. What would you like to do?", []string{
			"Overwrite — start from scratch",
			"Edit — use current values as defaults",
			"Cancel",
		}, 0)
		switch choice {
		case 1:
			defaults = existing
		case 2:
			fmt.Fprintln(w.out, "Setup cancelled.")
			return false, nil
		}
	}

	cfg := fileConfig{
		Username: w.promptRequired("GitHub username", defaults.Username),
		Profile: fileProfile{
			Name:    w.promptRequired("Display name", defaults.Profile.Name),
			Tagline: w.prompt("Tagline (short description)", defaults.Profile.Tagline),
		},
		GalaxyArms: w.promptArms(defaults.GalaxyArms),
	}

	if w.confirm("Configure advanced options (bio, social, projects, theme)?", false) {
		w.promptAdvanced(&cfg, defaults)
	}
	if w.eof {
		return false, errInputClosed
	}

	if err := w.save(path, cfg); err != nil {
		return false, err
	}

	if _, err := config.Load(path); err != nil {
		fmt.Fprintln(w.out, styleWarning.Render(fmt.Sprintf("Config saved to %s but validation found issues: %v", path, err)))
	} else {
		fmt.Fprintln(w.out, styleSuccess.Render("Config saved and validated: "+path))
	}

	return w.confirm("Generate SVGs now?", true), nil
}

func (w *Wizard) loadExisting(path string) (fileConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, false
	}
	var existing fileConfig
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return fileConfig{}, false
	}
	return existing, true
}

func (w *Wizard) promptArms(defaults []fileArm) []fileArm {
	techs := AllTechs()
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, styleDefault.Render("Suggested technologies: "+strings.Join(techs, ", ")))

	arms := make([]fileArm, 0, config.ArmCount)
	for i := 0; i < config.ArmCount; i++ {
		fmt.Fprintln(w.out)
		fmt.Fprintln(w.out, styleSection.Render(fmt.Sprintf("--- Galaxy Arm %d/%d ---", i+1, config.ArmCount)))

		var armDefault fileArm
		if i < len(defaults) {
			armDefault = defaults[i]
		}

		name := w.promptRequired(fmt.Sprintf("Arm %d name (e.g. Frontend, Backend, DevOps)", i+1), armDefault.Name)

		defaultColor := i
		for j, choice := range armColorChoices {
			if choice.Token == armDefault.Color {
				defaultColor = j
			}
		}
		colorLabels := make([]string, len(armColorChoices))
		for j, choice := range armColorChoices {
			colorLabels[j] = fmt.Sprintf("%s (%s)", choice.Token, choice.Hex)
		}
		color := armColorChoices[w.selectOption(fmt.Sprintf("Arm %d color", i+1), colorLabels, defaultColor)].Token

		var items []string
		for len(items) == 0 && !w.eof {
			items = w.promptList(fmt.Sprintf("Arm %d technologies (comma-separated)", i+1), armDefault.Items)
			if len(items) == 0 {
				fmt.Fprintln(w.out, styleWarning.Render("Select at least one technology."))
			}
		}

		arms = append(arms, fileArm{Name: name, Color: color, Items: items})
	}
	return arms
}

func (w *Wizard) promptAdvanced(cfg *fileConfig, defaults fileConfig) {
	cfg.Profile.Bio = strings.ReplaceAll(w.prompt(`Bio (use \n for newlines)`, strings.ReplaceAll(defaults.Profile.Bio, "\n", `\n`)), `\n`, "\n")
	cfg.Profile.Company = w.prompt("Company", defaults.Profile.Company)
	cfg.Profile.Location = w.prompt("Location", defaults.Profile.Location)
	cfg.Profile.Philosophy = w.prompt("Philosophy quote", defaults.Profile.Philosophy)

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, styleSection.Render("--- Social Links (leave blank to skip) ---"))
	social := map[string]string{}
	for _, key := range []string{"email", "linkedin", "website"} {
		if value := w.prompt(key, defaults.Social[key]); value != "" {
			social[key] = value
		}
	}
	if len(social) > 0 {
		cfg.Social = social
	}

	cfg.Projects = w.promptProjects(defaults.Projects)

	if w.confirm("Customize theme colors?", false) {
		theme := map[string]string{}
		for _, token := range themeTokens {
			current := token.Default
			if v, ok := defaults.Theme[token.Name]; ok {
				current = v
			}
			value := w.prompt("Theme "+token.Name+" (hex)", current)
			for !hexColorRe.MatchString(value) && !w.eof {
				fmt.Fprintln(w.out, styleWarning.Render("Must be a valid hex color (e.g. #00d4ff)."))
				value = w.prompt("Theme "+token.Name+" (hex)", current)
			}
			if !hexColorRe.MatchString(value) {
				value = current
			}
			theme[token.Name] = value
		}
		cfg.Theme = theme
	}

	metrics := w.promptList("Stats metrics to display ("+strings.Join(config.AllMetrics, ", ")+")", config.AllMetrics)
	if len(metrics) > 0 {
		cfg.Stats = &fileStats{Metrics: metrics}
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, styleSection.Render("--- Language Display Settings ---"))
	var langDefaults fileLanguages
	if defaults.Languages != nil {
		langDefaults = *defaults.Languages
	}
	if langDefaults.MaxDisplay == 0 {
		langDefaults.MaxDisplay = 8
	}
	exclude := w.promptList("Languages to exclude (e.g. HTML,CSS,Shell)", langDefaults.Exclude)
	maxDisplay, err := strconv.Atoi(w.prompt("Max languages to display", strconv.Itoa(langDefaults.MaxDisplay)))
	if err != nil || maxDisplay <= 0 {
		maxDisplay = 8
	}
	cfg.Languages = &fileLanguages{Exclude: exclude, MaxDisplay: maxDisplay}
}

func (w *Wizard) promptProjects(defaults []fileProject) []fileProject {
	var projects []fileProject
	addMore := w.confirm("Add a featured project?", len(defaults) > 0)
	for idx := 0; addMore && !w.eof; idx++ {
		var projDefault fileProject
		if idx < len(defaults) {
			projDefault = defaults[idx]
		}
		project := fileProject{
			Repo: w.promptRequired("Repository (owner/repo)", projDefault.Repo),
		}
		project.Arm = w.selectOption("Associated galaxy arm", []string{"Arm 0", "Arm 1", "Arm 2"}, projDefault.Arm)
		project.Description = w.prompt("Short description", projDefault.Description)
		projects = append(projects, project)
		addMore = w.confirm("Add another project?", idx+1 < len(defaults))
	}
	return projects
}

func (w *Wizard) save(path string, cfg fileConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// prompt asks a free-form question, returning the default on empty input.
func (w *Wizard) prompt(label, def string) string {
	if def != "" {
		fmt.Fprintf(w.out, "%s %s: ", styleQuestion.Render(label), styleDefault.Render("["+def+"]"))
	} else {
		fmt.Fprintf(w.out, "%s: ", styleQuestion.Render(label))
	}
	if w.eof || !w.in.Scan() {
		w.eof = true
		return def
	}
	answer := strings.TrimSpace(w.in.Text())
	if answer == "" {
		return def
	}
	return answer
}

func (w *Wizard) promptRequired(label, def string) string {
	for {
		if answer := w.prompt(label, def); answer != "" {
			return answer
		}
		if w.eof {
			return ""
		}
		fmt.Fprintln(w.out, styleWarning.Render(label+" cannot be empty."))
	}
}

func (w *Wizard) confirm(label string, def bool) bool {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	answer := strings.ToLower(w.prompt(label+" ("+hint+")", ""))
	if answer == "" {
		return def
	}
	return answer == "y" || answer == "yes"
}

// selectOption renders a numbered menu and returns the chosen index.
func (w *Wizard) selectOption(label string, options []string, def int) int {
	fmt.Fprintln(w.out, styleQuestion.Render(label))
	for i, option := range options {
		fmt.Fprintf(w.out, "  %d) %s\n", i+1, option)
	}
	for {
		answer := w.prompt("Choice", strconv.Itoa(def+1))
		n, err := strconv.Atoi(answer)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1
		}
		if w.eof {
			return def
		}
		fmt.Fprintln(w.out, styleWarning.Render(fmt.Sprintf("Enter a number between 1 and %d.", len(options))))
	}
}

// promptList asks for a comma-separated list, trimming blank entries.
func (w *Wizard) promptList(label string, def []string) []string {
	answer := w.prompt(label, strings.Join(def, ","))
	var items []string
	for _, item := range strings.Split(answer, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
