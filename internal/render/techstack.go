package render

import (
	"fmt"
	"strings"

	"github.com/galaxy-dev/galaxy-profile/internal/domain"
	"github.com/galaxy-dev/galaxy-profile/internal/layout"
	"github.com/galaxy-dev/galaxy-profile/internal/normalize"
)

// Tech stack card geometry. Height is dynamic: whichever of the bar list or
// the radar needs more room wins.
const (
	techWidth    = 850
	barLeftX     = 30.0
	barStartY    = 65.0
	barRowHeight = 22.0
	barMaxWidth  = 200.0
	radarRadius  = 65.0
	radarCX      = 637.0
)

// TechStack renders the language telemetry bars on the left and the
// three-sector focus radar with its rotating needle on the right. Sector
// score arcs scale with how many of the area's technologies show up in the
// fetched language data.
func (b *Builder) TechStack() string {
	shares := normalize.LanguageShares(b.langs, b.cfg.Languages.Exclude, b.cfg.Languages.MaxDisplay)
	scores := normalize.FocusScores(b.cfg.GalaxyArms, b.langs, radarRadius)
	colors := armColors(b.cfg.GalaxyArms, b.theme)

	radarCY := barStartY + radarRadius + 10
	langHeight := barStartY + float64(len(shares))*barRowHeight + 20
	radarHeight := radarCY + radarRadius + 35
	height := 200.0
	if langHeight > height {
		height = langHeight
	}
	if radarHeight > height {
		height = radarHeight
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%.0f" viewBox="0 0 %d %.0f">`+"\n",
		techWidth, height, techWidth, height)
	fmt.Fprintf(&sb, "  <rect x=\"0.5\" y=\"0.5\" width=\"%d\" height=\"%.0f\" rx=\"12\" ry=\"12\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		techWidth-1, height-1, b.theme.Nebula, b.theme.StarDust)
	fmt.Fprintf(&sb, "  <text x=\"30\" y=\"38\" fill=\"%s\" font-size=\"11\" font-family=\"monospace\" letter-spacing=\"3\">LANGUAGE TELEMETRY</text>\n",
		b.theme.TextFaint)
	fmt.Fprintf(&sb, "  <line x1=\"425\" y1=\"25\" x2=\"425\" y2=\"%.0f\" stroke=\"%s\" stroke-width=\"1\" opacity=\"0.4\"/>\n",
		height-25, b.theme.StarDust)
	fmt.Fprintf(&sb, "  <text x=\"460\" y=\"38\" fill=\"%s\" font-size=\"11\" font-family=\"monospace\" letter-spacing=\"3\">FOCUS SECTORS</text>\n",
		b.theme.TextFaint)

	b.languageBars(&sb, shares)
	b.focusRadar(&sb, colors, scores, radarCY)

	sb.WriteString("</svg>\n")
	return sb.String()
}

// languageBars writes one row per language share: name, animated bar, and
// the whole-percent figure. No shares means no rows, not an error.
func (b *Builder) languageBars(sb *strings.Builder, shares []domain.LanguageShare) {
	for i, share := range shares {
		y := barStartY + float64(i)*barRowHeight
		barW := layout.BarLength(float64(share.Percent), barMaxWidth)
		if barW < 4 {
			barW = 4
		}
		fmt.Fprintf(sb, "  <g transform=\"translate(%g, %.0f)\">\n", barLeftX, y)
		fmt.Fprintf(sb, "    <text x=\"0\" y=\"0\" fill=\"%s\" font-size=\"11\" font-family=\"sans-serif\" dominant-baseline=\"middle\">%s</text>\n",
			b.theme.TextDim, esc(layout.TextFit(share.Name, 100, 6.5)))
		fmt.Fprintf(sb, "    <rect x=\"110\" y=\"-6\" width=\"%.1f\" height=\"12\" rx=\"3\" fill=\"%s\" opacity=\"0.85\">\n",
			barW, languageColor(share.Name))
		fmt.Fprintf(sb, "      <animate attributeName=\"width\" from=\"0\" to=\"%.1f\" dur=\"0.8s\" begin=\"%.1fs\" fill=\"freeze\"/>\n    </rect>\n",
			barW, float64(i)*0.1)
		fmt.Fprintf(sb, "    <text x=\"320\" y=\"0\" fill=\"%s\" font-size=\"10\" font-family=\"monospace\" dominant-baseline=\"middle\">%d%%</text>\n",
			b.theme.TextFaint, share.Percent)
		sb.WriteString("  </g>\n")
	}
}

func (b *Builder) focusRadar(sb *strings.Builder, colors []string, scores []float64, radarCY float64) {
	arms := b.cfg.GalaxyArms
	sectorSpan := 360.0 / float64(len(arms))

	// Concentric grid rings.
	for _, ringR := range []float64{22, 44, radarRadius} {
		fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%.0f\" r=\"%g\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.5\" stroke-dasharray=\"3,3\" opacity=\"0.25\"/>\n",
			radarCX, radarCY, ringR, b.theme.TextFaint)
	}

	// Sector fills, score arcs, and boundary lines.
	for i := range arms {
		startDeg := float64(i)*sectorSpan + 1
		endDeg := float64(i+1)*sectorSpan - 1
		d := layout.ArcPath(radarCX, radarCY, radarRadius, startDeg, endDeg)
		fmt.Fprintf(sb, "  <path d=\"%s\" fill=\"%s\" fill-opacity=\"0.10\" stroke=\"%s\" stroke-opacity=\"0.3\" stroke-width=\"0.5\"/>\n",
			d, colors[i], colors[i])
		if scores[i] > 0 {
			scoreD := layout.ArcPath(radarCX, radarCY, scores[i], startDeg, endDeg)
			fmt.Fprintf(sb, "  <path d=\"%s\" fill=\"%s\" fill-opacity=\"0.18\" stroke=\"none\"/>\n", scoreD, colors[i])
		}
		edge := layout.CirclePoint(radarCX, radarCY, radarRadius, float64(i)*sectorSpan)
		fmt.Fprintf(sb, "  <line x1=\"%g\" y1=\"%.0f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"0.5\" opacity=\"0.3\"/>\n",
			radarCX, radarCY, edge.X, edge.Y, b.theme.TextFaint)
	}

	b.radarNeedle(sb, radarCY)

	// Sector labels at the outer edge plus, per item, a dot that pulses as
	// the needle sweeps past its angle.
	radiiCycle := []float64{24, 40, 56}
	for i, arm := range arms {
		startDeg := float64(i)*sectorSpan + 1
		endDeg := float64(i+1)*sectorSpan - 1
		midDeg := (startDeg + endDeg) / 2
		label := layout.CirclePoint(radarCX, radarCY, radarRadius+18, midDeg)

		anchor := "middle"
		if label.X-radarCX >= 5 {
			anchor = "start"
		} else if label.X-radarCX <= -5 {
			anchor = "end"
		}
		fmt.Fprintf(sb, "  <text x=\"%.1f\" y=\"%.1f\" fill=\"%s\" font-size=\"9\" font-family=\"monospace\" text-anchor=\"%s\" dominant-baseline=\"middle\">%s</text>\n",
			label.X, label.Y, colors[i], anchor, esc(arm.Name))
		fmt.Fprintf(sb, "  <text x=\"%.1f\" y=\"%.1f\" fill=\"%s\" font-size=\"8\" font-family=\"monospace\" text-anchor=\"%s\" dominant-baseline=\"middle\">(%d)</text>\n",
			label.X, label.Y+12, b.theme.TextFaint, anchor, len(arm.Items))

		edgePad := 10.0
		usableStart := startDeg + edgePad
		usableEnd := endDeg - edgePad
		for j := range arm.Items {
			var itemAngle float64
			if len(arm.Items) == 1 {
				itemAngle = (usableStart + usableEnd) / 2
			} else {
				itemAngle = usableStart + (usableEnd-usableStart)*float64(j)/float64(len(arm.Items)-1)
			}
			dot := layout.CirclePoint(radarCX, radarCY, radiiCycle[j%3], itemAngle)
			pulseBegin := itemAngle/360*8 - 0.3
			if pulseBegin < 0 {
				pulseBegin += 8
			}
			fmt.Fprintf(sb, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\" opacity=\"0.35\">\n", dot.X, dot.Y, colors[i])
			fmt.Fprintf(sb, "    <animate attributeName=\"opacity\" values=\"0.35;0.35;1.0;0.35;0.35\" keyTimes=\"0;0.04;0.06;0.10;1\" dur=\"8s\" begin=\"%.2fs\" repeatCount=\"indefinite\"/>\n  </circle>\n",
				pulseBegin)
		}
	}
}

// radarNeedle draws the rotating sweep: trail sector, tapered wedge, bright
// core, and a glowing tip, all spinning together over 8 seconds.
func (b *Builder) radarNeedle(sb *strings.Builder, radarCY float64) {
	scan := b.theme.SynapseCyan
	tipY := radarCY - radarRadius
	sweep := layout.ArcPath(radarCX, radarCY, radarRadius, 330, 360)

	sb.WriteString("  <g>\n")
	fmt.Fprintf(sb, "    <path d=\"%s\" fill=\"%s\" fill-opacity=\"0.07\"/>\n", sweep, scan)
	fmt.Fprintf(sb, "    <polygon points=\"%.1f,%.0f %g,%.0f %.1f,%.0f\" fill=\"%s\" opacity=\"0.25\"/>\n",
		radarCX-2.5, radarCY, radarCX, tipY, radarCX+2.5, radarCY, scan)
	fmt.Fprintf(sb, "    <polygon points=\"%.1f,%.0f %g,%.0f %.1f,%.0f\" fill=\"%s\" opacity=\"0.5\"/>\n",
		radarCX-0.8, radarCY, radarCX, tipY, radarCX+0.8, radarCY, scan)
	fmt.Fprintf(sb, "    <circle cx=\"%g\" cy=\"%.0f\" r=\"2\" fill=\"%s\" opacity=\"0.6\">\n", radarCX, tipY, scan)
	sb.WriteString("      <animate attributeName=\"opacity\" values=\"0.4;0.8;0.4\" dur=\"2s\" repeatCount=\"indefinite\"/>\n    </circle>\n")
	fmt.Fprintf(sb, "    <animateTransform attributeName=\"transform\" type=\"rotate\" from=\"0 %g %.0f\" to=\"360 %g %.0f\" dur=\"8s\" repeatCount=\"indefinite\"/>\n",
		radarCX, radarCY, radarCX, radarCY)
	sb.WriteString("  </g>\n")
}
