// Package layout provides the deterministic geometry helpers behind the SVG
// templates: circle and spiral placement, arc sector paths, bar scaling, and
// seeded pseudo-random sequences. Nothing here holds state; identical inputs
// always produce identical output.
package layout

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a 2D coordinate in SVG pixel space.
type Point struct {
	X, Y float64
}

// CirclePoint returns the point at the given radius and angle around a
// center. Angles are measured in degrees from 12 o'clock, rotating clockwise.
func CirclePoint(cx, cy, r, deg float64) Point {
	rad := (deg - 90) * math.Pi / 180
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy + r*math.Sin(rad),
	}
}

// SpiralPoints generates n points along an Archimedean spiral whose radius
// grows linearly from zero to maxRadius over the given number of turns.
// xScale and yScale stretch the spiral into an ellipse.
func SpiralPoints(cx, cy, startDeg float64, n int, maxRadius, turns, xScale, yScale float64) []Point {
	points := make([]Point, 0, n)
	denom := float64(n - 1)
	if denom < 1 {
		denom = 1
	}
	for i := 0; i < n; i++ {
		t := float64(i) / denom
		angle := startDeg*math.Pi/180 + t*turns*2*math.Pi
		r := t * maxRadius
		points = append(points, Point{
			X: cx + r*math.Cos(angle)*xScale,
			Y: cy + r*math.Sin(angle)*yScale,
		})
	}
	return points
}

// ArcPath returns the SVG path "d" attribute for a filled pie-slice sector
// between two angles, measured like CirclePoint from 12 o'clock clockwise.
func ArcPath(cx, cy, r, startDeg, endDeg float64) string {
	p1 := CirclePoint(cx, cy, r, startDeg)
	p2 := CirclePoint(cx, cy, r, endDeg)
	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %s %s L %.1f %.1f A %s %s 0 %d 1 %.1f %.1f Z",
		trimFloat(cx), trimFloat(cy), p1.X, p1.Y, trimFloat(r), trimFloat(r), largeArc, p2.X, p2.Y)
}

// BarLength scales a percentage to a bar length, clamping to [0, 100] first.
func BarLength(percent, maxLength float64) float64 {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent / 100 * maxLength
}

// TextFit truncates s with an ellipsis if its estimated rendered width
// (rune count times charWidth, a monospace approximation) exceeds maxWidth.
func TextFit(s string, maxWidth, charWidth float64) string {
	runes := []rune(s)
	if float64(len(runes))*charWidth <= maxWidth {
		return s
	}
	keep := int(maxWidth/charWidth) - 1
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "…"
}

// WrapText splits text into lines of at most maxChars characters, breaking
// on spaces. A single word longer than maxChars stays on its own line.
func WrapText(text string, maxChars int) []string {
	words := strings.Fields(text)
	var lines []string
	current := ""
	for _, word := range words {
		if current != "" && len(current)+1+len(word) > maxChars {
			lines = append(lines, current)
			current = word
		} else if current == "" {
			current = word
		} else {
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// SeededValues generates count values in [min, max] derived from a seed
// string. The sequence is stable across runs and platforms, which keeps
// decorative star fields pixel-identical between regenerations.
func SeededValues(seed string, count int, min, max float64) []float64 {
	values := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		sum := md5.Sum([]byte(fmt.Sprintf("%s_%d", seed, i)))
		h := hex.EncodeToString(sum[:])
		n, _ := strconv.ParseUint(h[:8], 16, 64)
		normalized := float64(n) / float64(0xFFFFFFFF)
		values = append(values, min+normalized*(max-min))
	}
	return values
}

// trimFloat formats a float without trailing zeros, matching how whole
// coordinates appear in hand-written SVG.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
