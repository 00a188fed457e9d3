// Package normalize converts raw fetch results into the bounded, ranked,
// percentage-based values the SVG templates consume. Everything here is a
// pure function of its inputs.
package normalize

import (
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/domain"
)

// LanguageShares filters the excluded languages out of usage, ranks the rest
// by byte count descending, keeps the top maxDisplay, and computes each
// one's whole-percent share of the displayed total. If rounding makes the
// shares sum to anything other than 100, the largest share absorbs the
// difference, so the result always sums to exactly 100 when non-empty.
// No usable data returns nil.
func LanguageShares(usage domain.LanguageUsage, exclude []string, maxDisplay int) []domain.LanguageShare {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	filtered := make(domain.LanguageUsage, len(usage))
	for name, bytes := range usage {
		if !excluded[name] && bytes > 0 {
			filtered[name] = bytes
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	names := filtered.Names()
	if maxDisplay > 0 && len(names) > maxDisplay {
		names = names[:maxDisplay]
	}

	counts := make([]float64, len(names))
	for i, name := range names {
		counts[i] = float64(filtered[name])
	}
	total, _ := stats.Sum(counts)
	if total == 0 {
		return nil
	}

	shares := make([]domain.LanguageShare, len(names))
	sum := 0
	for i, name := range names {
		pct := int(math.Round(counts[i] / total * 100))
		shares[i] = domain.LanguageShare{Name: name, Bytes: filtered[name], Percent: pct}
		sum += pct
	}
	shares[0].Percent += 100 - sum
	return shares
}

// FocusScore counts how many of a focus area's technologies also appear in
// the language usage list (case-insensitive), scaled to maxRadius by the
// fraction matched. An area with no listed technologies scores zero.
func FocusScore(arm config.FocusArea, usage domain.LanguageUsage, maxRadius float64) float64 {
	if len(arm.Items) == 0 {
		return 0
	}
	matched := 0
	for _, item := range arm.Items {
		for lang := range usage {
			if strings.EqualFold(item, lang) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(arm.Items)) * maxRadius
}

// FocusScores returns FocusScore for every arm, in order.
func FocusScores(arms []config.FocusArea, usage domain.LanguageUsage, maxRadius float64) []float64 {
	scores := make([]float64, len(arms))
	for i, arm := range arms {
		scores[i] = FocusScore(arm, usage, maxRadius)
	}
	return scores
}
