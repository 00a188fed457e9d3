// Package render builds the four profile SVGs from normalized data. Each
// renderer composes static decorative markup with computed positions; all
// dynamic text is escaped before insertion so the output is always
// well-formed XML regardless of what the config contains.
package render

import (
	"fmt"
	"strings"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/domain"
)

// Theme is the resolved deep-space palette. Every color reference in a
// template resolves to one of these nine fields, so no token is ever left
// dangling in the output.
type Theme struct {
	Void           string
	Nebula         string
	StarDust       string
	SynapseCyan    string
	DendriteViolet string
	AxonAmber      string
	TextBright     string
	TextDim        string
	TextFaint      string
}

// DefaultTheme returns the built-in deep-space palette.
func DefaultTheme() Theme {
	return Theme{
		Void:           "#080c14",
		Nebula:         "#0f1623",
		StarDust:       "#1a2332",
		SynapseCyan:    "#00d4ff",
		DendriteViolet: "#a78bfa",
		AxonAmber:      "#ffb020",
		TextBright:     "#f1f5f9",
		TextDim:        "#94a3b8",
		TextFaint:      "#64748b",
	}
}

// ResolveTheme merges user overrides (keyed by token name) over the default
// palette.
func ResolveTheme(overrides map[string]string) Theme {
	t := DefaultTheme()
	for token, hex := range overrides {
		switch token {
		case "void":
			t.Void = hex
		case "nebula":
			t.Nebula = hex
		case "star_dust":
			t.StarDust = hex
		case "synapse_cyan":
			t.SynapseCyan = hex
		case "dendrite_violet":
			t.DendriteViolet = hex
		case "axon_amber":
			t.AxonAmber = hex
		case "text_bright":
			t.TextBright = hex
		case "text_dim":
			t.TextDim = hex
		case "text_faint":
			t.TextFaint = hex
		}
	}
	return t
}

// Token resolves a theme token name to its hex value. Unknown tokens fall
// back to the cyan accent so a typo in an arm color never produces an
// unresolved reference.
func (t Theme) Token(name string) string {
	switch name {
	case "void":
		return t.Void
	case "nebula":
		return t.Nebula
	case "star_dust":
		return t.StarDust
	case "synapse_cyan":
		return t.SynapseCyan
	case "dendrite_violet":
		return t.DendriteViolet
	case "axon_amber":
		return t.AxonAmber
	case "text_bright":
		return t.TextBright
	case "text_dim":
		return t.TextDim
	case "text_faint":
		return t.TextFaint
	}
	return t.SynapseCyan
}

// armColors resolves each focus area's color token to a hex string.
func armColors(arms []config.FocusArea, t Theme) []string {
	colors := make([]string, len(arms))
	for i, arm := range arms {
		colors[i] = t.Token(arm.Color)
	}
	return colors
}

// languageColors holds GitHub Linguist colors for popular languages.
var languageColors = map[string]string{
	"Python":      "#3572A5",
	"JavaScript":  "#f1e05a",
	"TypeScript":  "#3178c6",
	"Java":        "#b07219",
	"C#":          "#178600",
	"C++":         "#f34b7d",
	"C":           "#555555",
	"Go":          "#00ADD8",
	"Rust":        "#dea584",
	"Ruby":        "#701516",
	"PHP":         "#4F5D95",
	"Swift":       "#F05138",
	"Kotlin":      "#A97BFF",
	"Dart":        "#00B4AB",
	"Scala":       "#c22d40",
	"R":           "#198CE7",
	"Lua":         "#000080",
	"Shell":       "#89e051",
	"PowerShell":  "#012456",
	"Haskell":     "#5e5086",
	"Elixir":      "#6e4a7e",
	"Clojure":     "#db5855",
	"Erlang":      "#B83998",
	"Julia":       "#a270ba",
	"Vim Script":  "#199f4b",
	"Objective-C": "#438eff",
	"Perl":        "#0298c3",
	"MATLAB":      "#e16737",
	"Groovy":      "#4298b8",
	"Vue":         "#41b883",
	"HTML":        "#e34c26",
	"CSS":         "#563d7c",
	"SCSS":        "#c6538c",
	"Dockerfile":  "#384d54",
	"Makefile":    "#427819",
	"HCL":         "#844FBA",
	"Nix":         "#7e7eff",
	"Zig":         "#ec915c",
	"Svelte":      "#ff3e00",
	"Astro":       "#ff5a03",
}

// languageColor returns the Linguist hex color for a language, with a
// neutral gray fallback for unknown ones.
func languageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	return "#8b949e"
}

// escaper handles the five reserved XML characters.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// esc escapes text for safe embedding in SVG markup.
func esc(s string) string {
	return escaper.Replace(s)
}

// formatNumber renders a count for display: 1234 becomes "1.2k", 1500000
// becomes "1.5M", and the unavailable sentinel becomes an em dash.
func formatNumber(n int) string {
	if n == domain.StatUnavailable {
		return "—"
	}
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	}
	return fmt.Sprintf("%d", n)
}
