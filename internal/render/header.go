package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/galaxy-dev/galaxy-profile/internal/layout"
)

// Galaxy header geometry (850x280 banner).
const (
	headerWidth  = 850
	headerHeight = 280
	headerCX     = 425.0
	headerCY     = 155.0
	spiralRadius = 220.0
	spiralTurns  = 0.85
	spiralPoints = 30
	spiralXScale = 1.5
	spiralYScale = 0.38
)

// One start angle per arm, spreading the three arms around the core.
var armStartAngles = []float64{25, 150, 265}

// GalaxyHeader renders the spiral galaxy banner: a seeded starfield, three
// spiral arms carrying the focus-area technologies as labeled dots, project
// stars, and the glowing core with the profile initial.
func (b *Builder) GalaxyHeader() string {
	name := b.cfg.Profile.Name
	if name == "" {
		name = b.cfg.Username
	}
	initial := "?"
	if name != "" {
		initial = strings.ToUpper(string([]rune(name)[0]))
	}

	colors := armColors(b.cfg.GalaxyArms, b.theme)
	arms := make([][]layout.Point, len(b.cfg.GalaxyArms))
	for i := range b.cfg.GalaxyArms {
		arms[i] = layout.SpiralPoints(headerCX, headerCY,
			armStartAngles[i%len(armStartAngles)], spiralPoints,
			spiralRadius, spiralTurns, spiralXScale, spiralYScale)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		headerWidth, headerHeight, headerWidth, headerHeight)
	sb.WriteString("  <defs>\n")
	b.headerStyles(&sb)
	sb.WriteString("    <filter id=\"nebula-outer\">\n      <feGaussianBlur stdDeviation=\"60\"/>\n    </filter>\n")
	sb.WriteString("    <filter id=\"nebula-inner\">\n      <feGaussianBlur stdDeviation=\"30\"/>\n    </filter>\n")
	sb.WriteString("    <filter id=\"label-glow\" x=\"-20%\" y=\"-20%\" width=\"140%\" height=\"140%\">\n      <feGaussianBlur stdDeviation=\"2\" result=\"blur\"/>\n    </filter>\n")
	sb.WriteString("    <filter id=\"core-bright-glow\" x=\"-100%\" y=\"-100%\" width=\"300%\" height=\"300%\">\n      <feGaussianBlur stdDeviation=\"4\"/>\n    </filter>\n")
	b.headerGradients(&sb)
	b.starGlowFilters(&sb, colors)
	sb.WriteString("  </defs>\n\n")

	fmt.Fprintf(&sb, "  <rect x=\"0\" y=\"0\" width=\"%d\" height=\"%d\" rx=\"12\" ry=\"12\" fill=\"%s\"/>\n",
		headerWidth, headerHeight, b.theme.Void)

	b.outerNebula(&sb)
	b.starfield(&sb)
	b.innerNebula(&sb)
	b.shootingStars(&sb)
	b.spiralArms(&sb, colors, arms)
	b.techLabels(&sb, colors, arms)
	b.projectStars(&sb, colors, arms)
	b.orbitalRings(&sb)
	b.galaxyCore(&sb, initial)

	fmt.Fprintf(&sb, "  <text x=\"%g\" y=\"26\" text-anchor=\"middle\" fill=\"%s\" font-size=\"20\" font-weight=\"bold\" font-family=\"sans-serif\">%s</text>\n",
		headerCX, b.theme.TextBright, esc(name))
	fmt.Fprintf(&sb, "  <text x=\"%g\" y=\"44\" text-anchor=\"middle\" fill=\"%s\" font-size=\"12\" font-family=\"sans-serif\">%s</text>\n",
		headerCX, b.theme.TextDim, esc(b.cfg.Profile.Tagline))
	fmt.Fprintf(&sb, "  <text x=\"%g\" y=\"%d\" text-anchor=\"middle\" fill=\"%s\" font-size=\"11\" font-family=\"monospace\" font-style=\"italic\">%s</text>\n",
		headerCX, headerHeight-12, b.theme.TextFaint, esc(b.cfg.Profile.Philosophy))
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (b *Builder) headerStyles(sb *strings.Builder) {
	fmt.Fprintf(sb, `    <style>
      .star-bg { animation: twinkle-slow 7s ease-in-out infinite; }
      .star-mid { animation: twinkle-mid 5s ease-in-out infinite; }
      .star-fg { animation: twinkle-fast 3s ease-in-out infinite; }
      @keyframes twinkle-slow { 0%%, 100%% { opacity: 0.08; } 50%% { opacity: 0.3; } }
      @keyframes twinkle-mid { 0%%, 100%% { opacity: 0.15; } 50%% { opacity: 0.5; } }
      @keyframes twinkle-fast { 0%%, 100%% { opacity: 0.4; } 50%% { opacity: 0.8; } }
      .core-ring { animation: pulse-core 3s ease-in-out infinite; }
      .core-ring-inner { animation: pulse-core 3s ease-in-out infinite 1.5s; }
      @keyframes pulse-core {
        0%%, 100%% { stroke-opacity: 0.3; transform: scale(1); transform-origin: %gpx %gpx; }
        50%% { stroke-opacity: 0.8; transform: scale(1.06); transform-origin: %gpx %gpx; }
      }
      .shooting-star { opacity: 0; animation: shoot linear infinite; }
      @keyframes shoot {
        0%% { opacity: 0; transform: translate(0, 0); }
        5%% { opacity: 0.9; }
        15%% { opacity: 0.6; transform: translate(var(--shoot-tx), var(--shoot-ty)); }
        20%% { opacity: 0; transform: translate(var(--shoot-tx), var(--shoot-ty)); }
        100%% { opacity: 0; }
      }
    </style>
`, headerCX, headerCY, headerCX, headerCY)
}

func (b *Builder) headerGradients(sb *strings.Builder) {
	fmt.Fprintf(sb, `    <radialGradient id="core-haze-gradient" cx="50%%" cy="50%%" r="50%%">
      <stop offset="0%%" stop-color="%s" stop-opacity="0.5"/>
      <stop offset="50%%" stop-color="%s" stop-opacity="0.2"/>
      <stop offset="100%%" stop-color="%s" stop-opacity="0"/>
    </radialGradient>
    <radialGradient id="core-inner-gradient" cx="50%%" cy="50%%" r="50%%">
      <stop offset="0%%" stop-color="#ffffff" stop-opacity="0.6"/>
      <stop offset="40%%" stop-color="%s" stop-opacity="0.3"/>
      <stop offset="100%%" stop-color="%s" stop-opacity="0"/>
    </radialGradient>
    <linearGradient id="shoot-grad" x1="0%%" y1="0%%" x2="100%%" y2="0%%">
      <stop offset="0%%" stop-color="#ffffff" stop-opacity="0.8"/>
      <stop offset="100%%" stop-color="#ffffff" stop-opacity="0"/>
    </linearGradient>
`, b.theme.SynapseCyan, b.theme.DendriteViolet, b.theme.SynapseCyan,
		b.theme.SynapseCyan, b.theme.SynapseCyan)
}

func (b *Builder) starGlowFilters(sb *strings.Builder, colors []string) {
	for i, color := range colors {
		fmt.Fprintf(sb, `    <filter id="star-glow-%d" x="-100%%" y="-100%%" width="300%%" height="300%%">
      <feGaussianBlur stdDeviation="3" result="blur"/>
      <feFlood flood-color="%s" flood-opacity="0.5" result="color"/>
      <feComposite in="color" in2="blur" operator="in" result="glow"/>
      <feMerge>
        <feMergeNode in="glow"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
`, i, color)
	}
}

// starLayer describes one depth layer of the starfield.
type starLayer struct {
	count          int
	label          string
	rMin, rMax     float64
	oMin, oMax     float64
	durMin, durMax float64
}

// starfield draws three depth layers of twinkling stars, positioned by
// sequences seeded from the username so repeated runs are pixel-identical.
func (b *Builder) starfield(sb *strings.Builder) {
	layers := []starLayer{
		{40, "bg", 0.3, 0.8, 0.08, 0.3, 5.0, 9.0},
		{20, "mid", 0.6, 1.2, 0.15, 0.5, 3.5, 7.0},
		{10, "fg", 1.0, 1.8, 0.4, 0.7, 2.0, 4.5},
	}
	accents := map[int]string{
		0: b.theme.SynapseCyan,
		4: b.theme.DendriteViolet,
		8: b.theme.AxonAmber,
	}
	user := b.cfg.Username
	for _, l := range layers {
		sx := layout.SeededValues(user+"_sx_"+l.label, l.count, 10, headerWidth-10)
		sy := layout.SeededValues(user+"_sy_"+l.label, l.count, 10, headerHeight-10)
		sr := layout.SeededValues(user+"_sr_"+l.label, l.count, l.rMin, l.rMax)
		so := layout.SeededValues(user+"_so_"+l.label, l.count, l.oMin, l.oMax)
		sd := layout.SeededValues(user+"_sd_"+l.label, l.count, l.durMin, l.durMax)
		for i := 0; i < l.count; i++ {
			fill, ok := accents[i%12]
			if !ok {
				fill = "#ffffff"
			}
			fmt.Fprintf(sb, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.2f\" fill=\"%s\" opacity=\"%.2f\" class=\"star-%s\" style=\"animation-delay: %.1fs\"/>\n",
				sx[i], sy[i], sr[i], fill, so[i], l.label, sd[i]*0.3)
		}
	}
}

func (b *Builder) outerNebula(sb *strings.Builder) {
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"120\" fill=\"%s\" opacity=\"0.015\" filter=\"url(#nebula-outer)\"/>\n",
		headerCX-180, headerCY-30, b.theme.DendriteViolet)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"100\" fill=\"%s\" opacity=\"0.012\" filter=\"url(#nebula-outer)\"/>\n",
		headerCX+200, headerCY+20, b.theme.AxonAmber)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"140\" fill=\"%s\" opacity=\"0.01\" filter=\"url(#nebula-outer)\"/>\n",
		headerCX, headerCY+40, b.theme.SynapseCyan)
}

func (b *Builder) innerNebula(sb *strings.Builder) {
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"70\" fill=\"%s\" opacity=\"0.04\" filter=\"url(#nebula-inner)\"/>\n",
		headerCX, headerCY, b.theme.SynapseCyan)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"50\" fill=\"%s\" opacity=\"0.035\" filter=\"url(#nebula-inner)\"/>\n",
		headerCX-60, headerCY-20, b.theme.DendriteViolet)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"45\" fill=\"%s\" opacity=\"0.03\" filter=\"url(#nebula-inner)\"/>\n",
		headerCX+70, headerCY+15, b.theme.AxonAmber)
}

func (b *Builder) shootingStars(sb *strings.Builder) {
	shoots := []struct {
		x, y, tx, ty, dur float64
	}{
		{120, 30, 200, 80, 6},
		{650, 20, 180, 70, 8},
		{400, 250, 160, 60, 7},
	}
	for i, s := range shoots {
		fmt.Fprintf(sb, "  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"url(#shoot-grad)\" stroke-width=\"1.2\" stroke-linecap=\"round\" class=\"shooting-star\" style=\"animation-delay: %.1fs; --shoot-tx: %gpx; --shoot-ty: %gpx; animation-duration: %gs\"/>\n",
			s.x, s.y, s.x+20, s.y+5, float64(i)*2.5, s.tx, s.ty, s.dur)
	}
}

// pointsToPath builds a quadratic Bezier path string through the points.
func pointsToPath(points []layout.Point) string {
	var d strings.Builder
	fmt.Fprintf(&d, "M %.1f %.1f", points[0].X, points[0].Y)
	for j := 1; j < len(points); j++ {
		prev, cur := points[j-1], points[j]
		fmt.Fprintf(&d, " Q %.1f %.1f %.1f %.1f", prev.X, prev.Y, (prev.X+cur.X)/2, (prev.Y+cur.Y)/2)
	}
	last := points[len(points)-1]
	fmt.Fprintf(&d, " L %.1f %.1f", last.X, last.Y)
	return d.String()
}

// spiralArms draws each arm as four segments fading outward, plus two
// particles drifting along the full arm path.
func (b *Builder) spiralArms(sb *strings.Builder, colors []string, arms [][]layout.Point) {
	const segments = 4
	opacities := []float64{0.50, 0.40, 0.30, 0.20}
	widths := []float64{2.0, 1.7, 1.4, 1.1}

	for armIdx, points := range arms {
		if len(points) < 2 {
			continue
		}
		color := colors[armIdx]
		fullPath := pointsToPath(points)

		perSeg := len(points) / segments
		for seg := 0; seg < segments; seg++ {
			start := seg * perSeg
			end := start + perSeg + 1
			if end > len(points) {
				end = len(points)
			}
			segPts := points[start:end]
			if len(segPts) < 2 {
				continue
			}
			fmt.Fprintf(sb, "  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%.1f\" opacity=\"%.2f\" stroke-linecap=\"round\">\n",
				pointsToPath(segPts), color, widths[seg], opacities[seg])
			fmt.Fprintf(sb, "    <animate attributeName=\"opacity\" values=\"%.2f;%.2f;%.2f\" dur=\"8s\" begin=\"%ds\" repeatCount=\"indefinite\"/>\n  </path>\n",
				opacities[seg]-0.1, opacities[seg]+0.1, opacities[seg]-0.1, armIdx)
		}

		for p := 0; p < 2; p++ {
			delay := armIdx*4 + p*6
			fmt.Fprintf(sb, "  <circle r=\"1.5\" fill=\"%s\" opacity=\"0.6\">\n", color)
			fmt.Fprintf(sb, "    <animateMotion dur=\"12s\" begin=\"%ds\" repeatCount=\"indefinite\" path=\"%s\"/>\n", delay, fullPath)
			fmt.Fprintf(sb, "    <animate attributeName=\"opacity\" values=\"0;0.7;0.3;0\" dur=\"12s\" begin=\"%ds\" repeatCount=\"indefinite\"/>\n  </circle>\n", delay)
		}
	}
}

// techLabels places one labeled dot per technology along the outer portion
// of its arm, with a leader line pointing radially away from the core.
func (b *Builder) techLabels(sb *strings.Builder, colors []string, arms [][]layout.Point) {
	const outerStart = 8

	for armIdx, arm := range b.cfg.GalaxyArms {
		if len(arm.Items) == 0 {
			continue
		}
		color := colors[armIdx]
		points := arms[armIdx]

		available := len(points) - outerStart - 2
		spacing := available / len(arm.Items)
		if spacing < 1 {
			spacing = 1
		}

		for i, item := range arm.Items {
			idx := outerStart + i*spacing
			if idx > len(points)-1 {
				idx = len(points) - 1
			}
			pt := points[idx]

			dx := pt.X - headerCX
			dy := pt.Y - headerCY
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				dist = 1
			}
			labelX := pt.X + dx/dist*18
			labelY := pt.Y + dy/dist*18

			anchor := "middle"
			if dx > 20 {
				anchor = "start"
			} else if dx < -20 {
				anchor = "end"
			}

			fmt.Fprintf(sb, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"2.5\" fill=\"%s\" opacity=\"0.85\">\n", pt.X, pt.Y, color)
			fmt.Fprintf(sb, "    <animate attributeName=\"opacity\" values=\"0.85;1;0.85\" dur=\"5s\" begin=\"%.1fs\" repeatCount=\"indefinite\"/>\n  </circle>\n", float64(i)*0.7)
			fmt.Fprintf(sb, "  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"0.5\" opacity=\"0.25\" stroke-dasharray=\"2 2\"/>\n",
				pt.X, pt.Y, labelX, labelY, color)
			fmt.Fprintf(sb, "  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"%s\" fill=\"%s\" font-size=\"9\" font-family=\"monospace\" opacity=\"0.2\" filter=\"url(#label-glow)\">%s</text>\n",
				labelX, labelY+3, anchor, color, esc(item))
			fmt.Fprintf(sb, "  <text x=\"%.1f\" y=\"%.1f\" text-anchor=\"%s\" fill=\"%s\" font-size=\"9\" font-family=\"monospace\" opacity=\"0.85\">%s</text>\n",
				labelX, labelY+3, anchor, color, esc(item))
		}
	}
}

// projectStars marks up to three featured projects as glowing stars near the
// outer end of their owning arm.
func (b *Builder) projectStars(sb *strings.Builder, colors []string, arms [][]layout.Point) {
	projects := b.cfg.Projects
	if len(projects) > 3 {
		projects = projects[:3]
	}
	for _, proj := range projects {
		armIdx := proj.Arm % len(arms)
		points := arms[armIdx]
		idx := len(points) - 3
		if idx > 24 {
			idx = 24
		}
		pt := points[idx]
		fmt.Fprintf(sb, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"%s\" filter=\"url(#star-glow-%d)\">\n",
			pt.X, pt.Y, colors[armIdx], armIdx)
		fmt.Fprintf(sb, "    <animate attributeName=\"opacity\" values=\"0.6;1;0.6\" dur=\"4s\" begin=\"%.1fs\" repeatCount=\"indefinite\"/>\n  </circle>\n",
			float64(armIdx)*0.8)
	}
}

func (b *Builder) orbitalRings(sb *strings.Builder) {
	fmt.Fprintf(sb, "  <ellipse cx=\"%g\" cy=\"%g\" rx=\"55\" ry=\"18\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.6\" opacity=\"0.15\" stroke-dasharray=\"4 6\">\n",
		headerCX, headerCY, b.theme.SynapseCyan)
	fmt.Fprintf(sb, "    <animateTransform attributeName=\"transform\" type=\"rotate\" from=\"0 %g %g\" to=\"360 %g %g\" dur=\"20s\" repeatCount=\"indefinite\"/>\n  </ellipse>\n",
		headerCX, headerCY, headerCX, headerCY)
	fmt.Fprintf(sb, "  <ellipse cx=\"%g\" cy=\"%g\" rx=\"75\" ry=\"24\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.5\" opacity=\"0.1\" stroke-dasharray=\"3 8\">\n",
		headerCX, headerCY, b.theme.DendriteViolet)
	fmt.Fprintf(sb, "    <animateTransform attributeName=\"transform\" type=\"rotate\" from=\"360 %g %g\" to=\"0 %g %g\" dur=\"30s\" repeatCount=\"indefinite\"/>\n  </ellipse>\n",
		headerCX, headerCY, headerCX, headerCY)
}

func (b *Builder) galaxyCore(sb *strings.Builder, initial string) {
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"40\" fill=\"url(#core-haze-gradient)\" opacity=\"0.4\"/>\n", headerCX, headerCY)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"24\" fill=\"url(#core-inner-gradient)\" opacity=\"0.6\"/>\n", headerCX, headerCY)
	fmt.Fprintf(sb, "  <ellipse cx=\"%g\" cy=\"%g\" rx=\"20\" ry=\"18\" fill=\"none\" stroke=\"%s\" stroke-width=\"1.2\" opacity=\"0.55\" stroke-dasharray=\"5 3\" class=\"core-ring\"/>\n",
		headerCX, headerCY, b.theme.SynapseCyan)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"14\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.8\" opacity=\"0.4\" class=\"core-ring-inner\"/>\n",
		headerCX, headerCY, b.theme.DendriteViolet)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"11\" fill=\"%s\" stroke=\"%s\" stroke-width=\"0.5\"/>\n",
		headerCX, headerCY, b.theme.Nebula, b.theme.StarDust)
	fmt.Fprintf(sb, "  <circle cx=\"%g\" cy=\"%g\" r=\"3\" fill=\"%s\" filter=\"url(#core-bright-glow)\" opacity=\"0.9\"/>\n",
		headerCX, headerCY, b.theme.SynapseCyan)
	fmt.Fprintf(sb, "  <text x=\"%g\" y=\"%g\" text-anchor=\"middle\" fill=\"%s\" font-size=\"14\" font-weight=\"bold\" font-family=\"monospace\">%s</text>\n",
		headerCX, headerCY+5, b.theme.SynapseCyan, esc(initial))
}
