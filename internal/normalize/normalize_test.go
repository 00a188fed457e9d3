package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/domain"
)

func sampleUsage() domain.LanguageUsage {
	return domain.LanguageUsage{
		"Python":     450000,
		"TypeScript": 380000,
		"JavaScript": 120000,
		"Go":         95000,
		"Rust":       45000,
		"Shell":      30000,
		"Dockerfile": 15000,
		"CSS":        10000,
	}
}

func TestLanguageShares(t *testing.T) {
	shares := LanguageShares(sampleUsage(), nil, 8)
	require.Len(t, shares, 8)

	// Ranked by byte count descending.
	assert.Equal(t, "Python", shares[0].Name)
	assert.Equal(t, "TypeScript", shares[1].Name)
	assert.Equal(t, "CSS", shares[7].Name)

	sum := 0
	for _, share := range shares {
		assert.GreaterOrEqual(t, share.Percent, 0)
		sum += share.Percent
	}
	assert.Equal(t, 100, sum)
}

func TestLanguageSharesExclude(t *testing.T) {
	shares := LanguageShares(sampleUsage(), []string{"Shell", "CSS", "Dockerfile"}, 8)
	require.Len(t, shares, 5)
	for _, share := range shares {
		assert.NotContains(t, []string{"Shell", "CSS", "Dockerfile"}, share.Name)
	}

	sum := 0
	for _, share := range shares {
		sum += share.Percent
	}
	assert.Equal(t, 100, sum, "percentages are relative to the displayed set")
}

func TestLanguageSharesMaxDisplay(t *testing.T) {
	shares := LanguageShares(sampleUsage(), nil, 3)
	require.Len(t, shares, 3)
	assert.Equal(t, []string{"Python", "TypeScript", "JavaScript"},
		[]string{shares[0].Name, shares[1].Name, shares[2].Name})

	sum := 0
	for _, share := range shares {
		sum += share.Percent
	}
	assert.Equal(t, 100, sum)
}

func TestLanguageSharesRoundingRemainder(t *testing.T) {
	// Three equal thirds round to 33 each; the largest share absorbs the
	// missing point.
	shares := LanguageShares(domain.LanguageUsage{"A": 100, "B": 100, "C": 100}, nil, 8)
	require.Len(t, shares, 3)
	sum := 0
	for _, share := range shares {
		sum += share.Percent
	}
	assert.Equal(t, 100, sum)
	assert.Equal(t, 34, shares[0].Percent)
}

func TestLanguageSharesSingleLanguage(t *testing.T) {
	shares := LanguageShares(domain.LanguageUsage{"Go": 12345}, nil, 8)
	require.Len(t, shares, 1)
	assert.Equal(t, 100, shares[0].Percent)
}

func TestLanguageSharesEmpty(t *testing.T) {
	assert.Nil(t, LanguageShares(nil, nil, 8))
	assert.Nil(t, LanguageShares(domain.LanguageUsage{}, nil, 8))
	assert.Nil(t, LanguageShares(domain.LanguageUsage{"Go": 0}, nil, 8))
	assert.Nil(t, LanguageShares(domain.LanguageUsage{"HTML": 500}, []string{"HTML"}, 8))
}

func TestLanguageSharesTieBreak(t *testing.T) {
	shares := LanguageShares(domain.LanguageUsage{"Zig": 100, "Ada": 100, "Lua": 200}, nil, 8)
	require.Len(t, shares, 3)
	assert.Equal(t, "Lua", shares[0].Name)
	// Equal byte counts order alphabetically.
	assert.Equal(t, "Ada", shares[1].Name)
	assert.Equal(t, "Zig", shares[2].Name)
}

func TestFocusScore(t *testing.T) {
	usage := domain.LanguageUsage{"Python": 1000, "TypeScript": 500, "Go": 200}

	testCases := []struct {
		name string
		arm  config.FocusArea
		want float64
	}{
		{
			name: "all items matched",
			arm:  config.FocusArea{Name: "Backend", Items: []string{"Python", "Go"}},
			want: 65,
		},
		{
			name: "half matched",
			arm:  config.FocusArea{Name: "Frontend", Items: []string{"TypeScript", "React"}},
			want: 32.5,
		},
		{
			name: "case-insensitive match",
			arm:  config.FocusArea{Name: "Langs", Items: []string{"python"}},
			want: 65,
		},
		{
			name: "nothing matched",
			arm:  config.FocusArea{Name: "DevOps", Items: []string{"Docker", "AWS"}},
			want: 0,
		},
		{
			name: "no items",
			arm:  config.FocusArea{Name: "Empty"},
			want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, FocusScore(tc.arm, usage, 65), 0.001)
		})
	}
}

func TestFocusScores(t *testing.T) {
	arms := []config.FocusArea{
		{Name: "Backend", Items: []string{"Go"}},
		{Name: "Frontend", Items: []string{"Elm"}},
	}
	scores := FocusScores(arms, domain.LanguageUsage{"Go": 100}, 65)
	require.Len(t, scores, 2)
	assert.InDelta(t, 65, scores[0], 0.001)
	assert.Zero(t, scores[1])
}
