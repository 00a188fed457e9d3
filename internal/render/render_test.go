package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/domain"
)

func sampleConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Username: "galaxy-dev",
		Profile: config.Profile{
			Name:       "Nyx Orion",
			Tagline:    "Full Stack Developer & Open Source Explorer",
			Company:    "Stellar Labs",
			Location:   "San Francisco, CA",
			Philosophy: "The best code is the code that empowers others.",
		},
		GalaxyArms: []config.FocusArea{
			{Name: "Frontend", Color: "dendrite_violet", Items: []string{"TypeScript", "React", "CSS"}},
			{Name: "Backend", Color: "synapse_cyan", Items: []string{"Python", "Node.js", "PostgreSQL"}},
			{Name: "DevOps", Color: "axon_amber", Items: []string{"Docker", "GitHub Actions", "AWS"}},
		},
		Projects: []config.Project{
			{Repo: "galaxy-dev/nebula-ui", Arm: 0, Description: "A component library."},
			{Repo: "galaxy-dev/stargate-api", Arm: 1, Description: "High-performance API gateway."},
		},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func sampleStats() domain.AccountStats {
	return domain.AccountStats{Commits: 1847, Stars: 342, PRs: 156, Issues: 89, Repos: 42}
}

func sampleLangs() domain.LanguageUsage {
	return domain.LanguageUsage{
		"Python":     450000,
		"TypeScript": 380000,
		"JavaScript": 120000,
		"Go":         95000,
	}
}

func sampleBuilder(t *testing.T) *Builder {
	return NewBuilder(sampleConfig(t), sampleStats(), sampleLangs())
}

// assertSVG checks the output is a standalone SVG document.
func assertSVG(t *testing.T, svg string) {
	t.Helper()
	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`), "missing svg root element")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"), "missing closing tag")
}

func TestGalaxyHeader(t *testing.T) {
	svg := sampleBuilder(t).GalaxyHeader()
	assertSVG(t, svg)

	assert.Contains(t, svg, `width="850" height="280"`)
	assert.Contains(t, svg, "Nyx Orion")
	assert.Contains(t, svg, "Full Stack Developer")

	// Each arm's technologies label the spiral; colors come from theme tokens.
	for _, item := range []string{"TypeScript", "React", "Python", "PostgreSQL", "Docker", "AWS"} {
		assert.Contains(t, svg, item)
	}
	assert.Contains(t, svg, "#a78bfa")
	assert.Contains(t, svg, "#00d4ff")
	assert.Contains(t, svg, "#ffb020")

	// The galaxy core carries the display name's initial.
	assert.Contains(t, svg, ">N</text>")
}

func TestGalaxyHeaderDeterministic(t *testing.T) {
	b := sampleBuilder(t)
	assert.Equal(t, b.GalaxyHeader(), b.GalaxyHeader())
}

func TestGalaxyHeaderEscapesText(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.Profile.Name = `<Nyx> & "Orion"`
	svg := NewBuilder(cfg, sampleStats(), sampleLangs()).GalaxyHeader()

	assert.NotContains(t, svg, "<Nyx>")
	assert.Contains(t, svg, "&lt;Nyx&gt; &amp; &quot;Orion&quot;")
}

func TestStatsCard(t *testing.T) {
	svg := sampleBuilder(t).StatsCard()
	assertSVG(t, svg)

	assert.Contains(t, svg, `width="850" height="180"`)
	assert.Contains(t, svg, "1.8k", "commit count is abbreviated")
	assert.Contains(t, svg, "342")
	assert.Contains(t, svg, "156")
	assert.Contains(t, svg, "89")
	assert.Contains(t, svg, "42")
}

func TestStatsCardUnavailableMetric(t *testing.T) {
	stats := sampleStats()
	stats.Commits = domain.StatUnavailable
	svg := NewBuilder(sampleConfig(t), stats, sampleLangs()).StatsCard()

	assert.Contains(t, svg, "—", "unavailable stats render as a dash")
	assert.NotContains(t, svg, ">-1<")
}

func TestStatsCardMetricSubset(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.Stats.Metrics = []string{"stars", "repos"}
	svg := NewBuilder(cfg, sampleStats(), sampleLangs()).StatsCard()

	assert.Contains(t, svg, "Stars")
	assert.Contains(t, svg, "Repos")
	assert.NotContains(t, svg, "Commits")
}

func TestTechStack(t *testing.T) {
	svg := sampleBuilder(t).TechStack()
	assertSVG(t, svg)

	assert.Contains(t, svg, "LANGUAGE TELEMETRY")
	assert.Contains(t, svg, "FOCUS SECTORS")
	for lang := range sampleLangs() {
		assert.Contains(t, svg, lang)
	}
	// Per-item radar dots pulse with the needle; every arm label is present.
	assert.Contains(t, svg, "Frontend")
	assert.Contains(t, svg, "(3)")
}

func TestTechStackNoLanguages(t *testing.T) {
	svg := NewBuilder(sampleConfig(t), sampleStats(), domain.LanguageUsage{}).TechStack()
	assertSVG(t, svg)
	// The radar still renders even when telemetry is empty.
	assert.Contains(t, svg, "FOCUS SECTORS")
	assert.Contains(t, svg, "Backend")
}

func TestTechStackHeightGrowsWithLanguages(t *testing.T) {
	langs := domain.LanguageUsage{}
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		langs[name] = 1000
	}
	cfg := sampleConfig(t)
	cfg.Languages.MaxDisplay = 12

	tall := NewBuilder(cfg, sampleStats(), langs).TechStack()
	short := NewBuilder(cfg, sampleStats(), domain.LanguageUsage{"A": 1000}).TechStack()
	assert.NotEqual(t, tall, short)
	assert.Contains(t, tall, `height="349"`)
}

func TestConstellation(t *testing.T) {
	svg := sampleBuilder(t).Constellation()
	assertSVG(t, svg)

	assert.Contains(t, svg, `width="850" height="220"`)
	assert.Contains(t, svg, "FEATURED SYSTEMS")
	assert.Contains(t, svg, "SYS 2/2 ONLINE")
	// Repo names display without the owner prefix.
	assert.Contains(t, svg, "nebula-ui")
	assert.Contains(t, svg, "stargate-api")
	assert.NotContains(t, svg, "galaxy-dev/nebula-ui")
	// Category pills carry the owning arm's name.
	assert.Contains(t, svg, "FRONTEND")
	assert.Contains(t, svg, "BACKEND")
	assert.Contains(t, svg, "A component library.")
}

func TestConstellationNoProjects(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.Projects = nil
	svg := NewBuilder(cfg, sampleStats(), sampleLangs()).Constellation()

	assertSVG(t, svg)
	assert.Contains(t, svg, "NO SYSTEMS REGISTERED")
}

func TestConstellationCapsAtThreeCards(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.Projects = []config.Project{
		{Repo: "u/one", Arm: 0}, {Repo: "u/two", Arm: 1},
		{Repo: "u/three", Arm: 2}, {Repo: "u/four", Arm: 0},
	}
	svg := NewBuilder(cfg, sampleStats(), sampleLangs()).Constellation()

	assert.Contains(t, svg, "SYS 3/3 ONLINE")
	assert.NotContains(t, svg, ">four<")
}

func TestArmAndCardCounts(t *testing.T) {
	cfg := sampleConfig(t)
	for i := range cfg.GalaxyArms {
		cfg.GalaxyArms[i].Items = cfg.GalaxyArms[i].Items[:2]
	}
	b := NewBuilder(cfg, sampleStats(), sampleLangs())

	// One glow filter per spiral arm, one glow filter per project card.
	header := b.GalaxyHeader()
	assert.Equal(t, 3, strings.Count(header, `<filter id="star-glow-`))

	constellation := b.Constellation()
	assert.Equal(t, 2, strings.Count(constellation, `<filter id="card-glow-`))
}

func TestResolveTheme(t *testing.T) {
	theme := ResolveTheme(map[string]string{
		"synapse_cyan": "#123456",
		"void":         "#000000",
	})
	assert.Equal(t, "#123456", theme.SynapseCyan)
	assert.Equal(t, "#000000", theme.Void)
	// Untouched tokens keep their defaults.
	assert.Equal(t, DefaultTheme().Nebula, theme.Nebula)
}

func TestFormatNumber(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{domain.StatUnavailable, "—"},
		{0, "0"},
		{999, "999"},
		{1000, "1.0k"},
		{1847, "1.8k"},
		{999999, "1000.0k"},
		{1500000, "1.5M"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, formatNumber(tc.n), "n=%d", tc.n)
	}
}

func TestLanguageColorFallback(t *testing.T) {
	assert.Equal(t, "#3572A5", languageColor("Python"))
	assert.Equal(t, "#8b949e", languageColor("Brainfuck"))
}
