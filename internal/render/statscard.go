package render

import (
	"fmt"
	"strings"
)

const (
	statsCardWidth  = 850
	statsCardHeight = 180
)

// StatsCard renders the "mission telemetry" card: one cell per configured
// metric with an icon, the formatted count, and a label. An unavailable
// metric shows an em dash instead of a number.
func (b *Builder) StatsCard() string {
	metrics := b.cfg.Stats.Metrics
	cellWidth := float64(statsCardWidth) / float64(len(metrics))

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		statsCardWidth, statsCardHeight, statsCardWidth, statsCardHeight)
	sb.WriteString(`  <defs>
    <style>
      .metric-icon { animation: count-glow 4s ease-in-out infinite; }
      @keyframes count-glow { 0%, 100% { fill-opacity: 0.7; } 50% { fill-opacity: 1; } }
    </style>
    <filter id="num-glow" x="-30%" y="-30%" width="160%" height="160%">
      <feGaussianBlur stdDeviation="3"/>
    </filter>
  </defs>
`)

	fmt.Fprintf(&sb, "  <rect x=\"0.5\" y=\"0.5\" width=\"%d\" height=\"%d\" rx=\"12\" ry=\"12\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n",
		statsCardWidth-1, statsCardHeight-1, b.theme.Nebula, b.theme.StarDust)
	fmt.Fprintf(&sb, "  <text x=\"30\" y=\"38\" fill=\"%s\" font-size=\"11\" font-family=\"monospace\" letter-spacing=\"3\">MISSION TELEMETRY</text>\n",
		b.theme.TextFaint)

	for i := range metrics[:len(metrics)-1] {
		dx := cellWidth * float64(i+1)
		fmt.Fprintf(&sb, "  <line x1=\"%.1f\" y1=\"55\" x2=\"%.1f\" y2=\"155\" stroke=\"%s\" stroke-width=\"1\" opacity=\"0.5\"/>\n",
			dx, dx, b.theme.StarDust)
	}

	for i, key := range metrics {
		cx := cellWidth*float64(i) + cellWidth/2
		iconColor := b.theme.Token(metricColors[key])
		value := formatNumber(b.stats.Metric(key))
		label := metricLabels[key]
		if label == "" {
			label = key
		}

		fmt.Fprintf(&sb, "  <g class=\"metric-cell\" transform=\"translate(%.1f, 95)\">\n", cx)
		fmt.Fprintf(&sb, "    <g transform=\"translate(-8, -30) scale(1)\">\n")
		fmt.Fprintf(&sb, "      <svg viewBox=\"0 0 16 16\" width=\"16\" height=\"16\" fill=\"%s\" class=\"metric-icon\" style=\"animation-delay: %.1fs\">\n        %s\n      </svg>\n    </g>\n",
			iconColor, float64(i)*0.3, metricIcons[key])
		fmt.Fprintf(&sb, "    <text x=\"0\" y=\"2\" text-anchor=\"middle\" fill=\"%s\" font-size=\"28\" font-weight=\"bold\" font-family=\"sans-serif\" opacity=\"0.35\" filter=\"url(#num-glow)\">%s</text>\n",
			iconColor, value)
		fmt.Fprintf(&sb, "    <text x=\"0\" y=\"2\" text-anchor=\"middle\" fill=\"%s\" font-size=\"28\" font-weight=\"bold\" font-family=\"sans-serif\">%s</text>\n",
			b.theme.TextBright, value)
		fmt.Fprintf(&sb, "    <text x=\"0\" y=\"20\" text-anchor=\"middle\" fill=\"%s\" font-size=\"11\" font-family=\"monospace\" letter-spacing=\"1\">%s</text>\n",
			b.theme.TextFaint, esc(label))
		sb.WriteString("  </g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
