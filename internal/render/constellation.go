package render

import (
	"fmt"
	"strings"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/layout"
)

const (
	constWidth  = 850
	constHeight = 220
	maxCards    = 3
)

// Constellation renders up to three featured project cards as star systems
// linked by constellation lines. With no projects configured it degrades to
// a quiet placeholder card rather than failing.
func (b *Builder) Constellation() string {
	projects := b.cfg.Projects
	if len(projects) > maxCards {
		projects = projects[:maxCards]
	}
	colors := armColors(b.cfg.GalaxyArms, b.theme)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		constWidth, constHeight, constWidth, constHeight)

	b.constellationDefs(&sb, projects, colors)

	fmt.Fprintf(&sb, "  <rect x=\"0.5\" y=\"0.5\" width=\"%d\" height=\"%d\" rx=\"12\" ry=\"12\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		constWidth-1, constHeight-1, b.theme.Nebula, b.theme.StarDust)
	b.constellationStars(&sb)
	b.constellationGrid(&sb)

	if len(projects) == 0 {
		fmt.Fprintf(&sb, "  <text x=\"%d\" y=\"%d\" fill=\"%s\" font-size=\"12\" font-family=\"monospace\" text-anchor=\"middle\" letter-spacing=\"2\">NO SYSTEMS REGISTERED</text>\n",
			constWidth/2, constHeight/2, b.theme.TextFaint)
		sb.WriteString("</svg>\n")
		return sb.String()
	}

	cardWidth := 240
	if len(projects) == 2 {
		cardWidth = 340
	}
	gap := (constWidth - len(projects)*cardWidth) / (len(projects) + 1)

	// Connection lines run under the cards at star-core height.
	if len(projects) > 1 {
		for i := 0; i < len(projects)-1; i++ {
			x1 := gap + i*(cardWidth+gap) + cardWidth
			x2 := x1 + gap
			fmt.Fprintf(&sb, "  <line x1=\"%d\" y1=\"85\" x2=\"%d\" y2=\"85\" stroke=\"url(#conn-grad)\" stroke-width=\"1\" stroke-dasharray=\"4,4\" opacity=\"0.5\">\n", x1, x2)
			sb.WriteString("    <animate attributeName=\"stroke-dashoffset\" from=\"8\" to=\"0\" dur=\"1.5s\" repeatCount=\"indefinite\"/>\n  </line>\n")
		}
	}

	b.constellationTitle(&sb, len(projects))

	for i, project := range projects {
		x := gap + i*(cardWidth+gap)
		b.projectCard(&sb, project, i, x, cardWidth, colors)
	}

	// Scan line drifting down the whole card.
	fmt.Fprintf(&sb, "  <rect x=\"0\" y=\"0\" width=\"%d\" height=\"2\" fill=\"%s\" opacity=\"0.06\">\n", constWidth, b.theme.SynapseCyan)
	fmt.Fprintf(&sb, "    <animate attributeName=\"y\" from=\"0\" to=\"%d\" dur=\"6s\" repeatCount=\"indefinite\"/>\n  </rect>\n", constHeight)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (b *Builder) constellationDefs(sb *strings.Builder, projects []config.Project, colors []string) {
	sb.WriteString("  <defs>\n")
	for i, project := range projects {
		color := colors[project.Arm]
		fmt.Fprintf(sb, "    <filter id=\"card-glow-%d\" x=\"-60%%\" y=\"-60%%\" width=\"220%%\" height=\"220%%\">\n", i)
		sb.WriteString("      <feGaussianBlur stdDeviation=\"5\" result=\"b\"/>\n      <feMerge><feMergeNode in=\"b\"/><feMergeNode in=\"SourceGraphic\"/></feMerge>\n    </filter>\n")
		fmt.Fprintf(sb, "    <radialGradient id=\"core-grad-%d\">\n", i)
		fmt.Fprintf(sb, "      <stop offset=\"0%%\" stop-color=\"%s\"/>\n      <stop offset=\"55%%\" stop-color=\"%s\"/>\n      <stop offset=\"100%%\" stop-color=\"%s\" stop-opacity=\"0\"/>\n    </radialGradient>\n",
			b.theme.TextBright, color, color)
	}
	fmt.Fprintf(sb, "    <linearGradient id=\"conn-grad\" x1=\"0%%\" y1=\"0%%\" x2=\"100%%\" y2=\"0%%\">\n      <stop offset=\"0%%\" stop-color=\"%s\" stop-opacity=\"0.1\"/>\n      <stop offset=\"50%%\" stop-color=\"%s\" stop-opacity=\"0.7\"/>\n      <stop offset=\"100%%\" stop-color=\"%s\" stop-opacity=\"0.1\"/>\n    </linearGradient>\n",
		b.theme.SynapseCyan, b.theme.SynapseCyan, b.theme.SynapseCyan)
	sb.WriteString("    <style>\n")
	sb.WriteString("      @keyframes orbit-spin { from { transform: rotate(0deg); } to { transform: rotate(360deg); } }\n")
	sb.WriteString("      @keyframes core-pulse { 0%, 100% { opacity: 0.8; } 50% { opacity: 1; } }\n")
	sb.WriteString("      .orbit { animation: orbit-spin 14s linear infinite; transform-box: fill-box; transform-origin: center; }\n")
	sb.WriteString("      .core { animation: core-pulse 3s ease-in-out infinite; }\n")
	sb.WriteString("    </style>\n")
	sb.WriteString("  </defs>\n")
}

// constellationStars scatters two seeded depth layers of background stars.
func (b *Builder) constellationStars(sb *strings.Builder) {
	xs := layout.SeededValues("proj-star-x", 15, 5, constWidth-5)
	ys := layout.SeededValues("proj-star-y", 15, 5, constHeight-5)
	for i := 0; i < 15; i++ {
		fmt.Fprintf(sb, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"0.8\" fill=\"%s\" opacity=\"0.4\"/>\n",
			xs[i], ys[i], b.theme.TextDim)
	}
	xs = layout.SeededValues("proj-star2-x", 10, 5, constWidth-5)
	ys = layout.SeededValues("proj-star2-y", 10, 5, constHeight-5)
	for i := 0; i < 10; i++ {
		fmt.Fprintf(sb, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"0.5\" fill=\"%s\" opacity=\"0.3\"/>\n",
			xs[i], ys[i], b.theme.TextFaint)
	}
}

func (b *Builder) constellationGrid(sb *strings.Builder) {
	for x := 50; x < constWidth; x += 100 {
		fmt.Fprintf(sb, "  <line x1=\"%d\" y1=\"0\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"0.3\" opacity=\"0.08\"/>\n",
			x, x, constHeight, b.theme.SynapseCyan)
	}
	for y := 55; y < constHeight; y += 55 {
		fmt.Fprintf(sb, "  <line x1=\"0\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"0.3\" opacity=\"0.08\"/>\n",
			y, constWidth, y, b.theme.SynapseCyan)
	}
}

func (b *Builder) constellationTitle(sb *strings.Builder, n int) {
	fmt.Fprintf(sb, "  <text x=\"30\" y=\"30\" fill=\"%s\" font-size=\"10\" font-family=\"monospace\" letter-spacing=\"3\">[ FEATURED SYSTEMS ]</text>\n",
		b.theme.TextFaint)
	fmt.Fprintf(sb, "  <circle cx=\"%d\" cy=\"26\" r=\"3\" fill=\"%s\">\n", constWidth-150, b.theme.SynapseCyan)
	sb.WriteString("    <animate attributeName=\"opacity\" values=\"1;0.3;1\" dur=\"2s\" repeatCount=\"indefinite\"/>\n  </circle>\n")
	fmt.Fprintf(sb, "  <text x=\"%d\" y=\"30\" fill=\"%s\" font-size=\"9\" font-family=\"monospace\" letter-spacing=\"1\">SYS %d/%d ONLINE</text>\n",
		constWidth-140, b.theme.TextFaint, n, n)
}

// projectCard draws one star system: orbital ring, glowing core, the repo
// short name, up to two wrapped description lines, and an arm category pill.
func (b *Builder) projectCard(sb *strings.Builder, project config.Project, idx, x, cardWidth int, colors []string) {
	color := colors[project.Arm]
	cx := x + cardWidth/2
	coreY := 85

	shortName := project.Repo
	if i := strings.LastIndex(shortName, "/"); i >= 0 {
		shortName = shortName[i+1:]
	}

	fmt.Fprintf(sb, "  <g>\n")
	fmt.Fprintf(sb, "    <g class=\"orbit\">\n      <circle cx=\"%d\" cy=\"%d\" r=\"24\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.6\" stroke-dasharray=\"2,5\" opacity=\"0.5\"/>\n",
		cx, coreY, color)
	fmt.Fprintf(sb, "      <circle cx=\"%d\" cy=\"%d\" r=\"2\" fill=\"%s\" opacity=\"0.8\"/>\n    </g>\n",
		cx+24, coreY, color)
	fmt.Fprintf(sb, "    <circle cx=\"%d\" cy=\"%d\" r=\"14\" fill=\"url(#core-grad-%d)\" filter=\"url(#card-glow-%d)\" class=\"core\"/>\n",
		cx, coreY, idx, idx)
	fmt.Fprintf(sb, "    <circle cx=\"%d\" cy=\"%d\" r=\"5\" fill=\"%s\"/>\n", cx, coreY, b.theme.TextBright)

	fmt.Fprintf(sb, "    <text x=\"%d\" y=\"%d\" fill=\"%s\" font-size=\"13\" font-weight=\"bold\" font-family=\"monospace\" text-anchor=\"middle\">%s</text>\n",
		cx, coreY+42, b.theme.TextBright, esc(layout.TextFit(shortName, float64(cardWidth)-20, 8)))

	maxChars := int(float64(cardWidth) / 7.5)
	lines := layout.WrapText(project.Description, maxChars)
	if len(lines) > 2 {
		lines = lines[:2]
		lines[1] = layout.TextFit(lines[1]+"…", float64(maxChars), 1)
	}
	for j, line := range lines {
		fmt.Fprintf(sb, "    <text x=\"%d\" y=\"%d\" fill=\"%s\" font-size=\"9\" font-family=\"sans-serif\" text-anchor=\"middle\">%s</text>\n",
			cx, coreY+58+j*12, b.theme.TextDim, esc(line))
	}

	armName := b.cfg.GalaxyArms[project.Arm].Name
	tagWidth := len(armName)*7 + 16
	tagY := coreY + 58 + len(lines)*12 + 4
	fmt.Fprintf(sb, "    <rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"16\" rx=\"8\" fill=\"%s\" fill-opacity=\"0.12\" stroke=\"%s\" stroke-opacity=\"0.4\" stroke-width=\"0.6\"/>\n",
		cx-tagWidth/2, tagY, tagWidth, color, color)
	fmt.Fprintf(sb, "    <text x=\"%d\" y=\"%d\" fill=\"%s\" font-size=\"8\" font-family=\"monospace\" text-anchor=\"middle\" letter-spacing=\"1\">%s</text>\n",
		cx, tagY+11, color, esc(strings.ToUpper(armName)))
	sb.WriteString("  </g>\n")
}
