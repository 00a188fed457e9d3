package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a minimal config that passes validation. Tests mutate
// the copy they get.
func validConfig() Config {
	return Config{
		Username: "galaxy-dev",
		Profile:  Profile{Name: "Nyx Orion"},
		GalaxyArms: []FocusArea{
			{Name: "Frontend", Color: "dendrite_violet", Items: []string{"TypeScript", "React"}},
			{Name: "Backend", Color: "synapse_cyan", Items: []string{"Python", "Go"}},
			{Name: "DevOps", Color: "axon_amber", Items: []string{"Docker"}},
		},
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
		},
		{
			name:      "missing username",
			mutate:    func(c *Config) { c.Username = "" },
			wantField: "username",
		},
		{
			name:      "missing profile name",
			mutate:    func(c *Config) { c.Profile.Name = "" },
			wantField: "profile.name",
		},
		{
			name:      "too few arms",
			mutate:    func(c *Config) { c.GalaxyArms = c.GalaxyArms[:2] },
			wantField: "galaxy_arms",
		},
		{
			name: "too many arms",
			mutate: func(c *Config) {
				c.GalaxyArms = append(c.GalaxyArms, FocusArea{Name: "Extra", Color: "synapse_cyan"})
			},
			wantField: "galaxy_arms",
		},
		{
			name:      "arm without a name",
			mutate:    func(c *Config) { c.GalaxyArms[1].Name = "" },
			wantField: "galaxy_arms[1].name",
		},
		{
			name:      "arm without a color",
			mutate:    func(c *Config) { c.GalaxyArms[2].Color = "" },
			wantField: "galaxy_arms[2].color",
		},
		{
			name: "project without a repo",
			mutate: func(c *Config) {
				c.Projects = []Project{{Repo: "", Arm: 0}}
			},
			wantField: "projects[0].repo",
		},
		{
			name: "project arm out of range",
			mutate: func(c *Config) {
				c.Projects = []Project{{Repo: "galaxy-dev/nebula-ui", Arm: 3}}
			},
			wantField: "projects[0].arm",
		},
		{
			name: "negative project arm",
			mutate: func(c *Config) {
				c.Projects = []Project{{Repo: "galaxy-dev/nebula-ui", Arm: -1}}
			},
			wantField: "projects[0].arm",
		},
		{
			name: "malformed theme color",
			mutate: func(c *Config) {
				c.Theme = map[string]string{"void": "blue"}
			},
			wantField: "theme.void",
		},
		{
			name: "three-digit hex is rejected",
			mutate: func(c *Config) {
				c.Theme = map[string]string{"void": "#abc"}
			},
			wantField: "theme.void",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.wantField, cfgErr.Field)
		})
	}
}

func TestConfigValidateAppliesDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, AllMetrics, cfg.Stats.Metrics)
	assert.Equal(t, 8, cfg.Languages.MaxDisplay)
	assert.NotNil(t, cfg.Languages.Exclude)
	assert.NotNil(t, cfg.Social)
	assert.NotNil(t, cfg.Projects)
	assert.NotNil(t, cfg.Theme)
}

func TestConfigValidateKeepsExplicitSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Stats.Metrics = []string{"stars", "repos"}
	cfg.Languages = LanguageConfig{Exclude: []string{"HTML"}, MaxDisplay: 3}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"stars", "repos"}, cfg.Stats.Metrics)
	assert.Equal(t, 3, cfg.Languages.MaxDisplay)
	assert.Equal(t, []string{"HTML"}, cfg.Languages.Exclude)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
username: galaxy-dev
profile:
  name: Nyx Orion
  tagline: Full Stack Developer
galaxy_arms:
  - name: Frontend
    color: dendrite_violet
    items: [TypeScript, React]
  - name: Backend
    color: synapse_cyan
    items: [Python]
  - name: DevOps
    color: axon_amber
    items: [Docker, AWS]
projects:
  - repo: galaxy-dev/nebula-ui
    arm: 0
    description: A component library.
languages:
  exclude: [HTML, CSS]
  max_display: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "galaxy-dev", cfg.Username)
	assert.Equal(t, "Nyx Orion", cfg.Profile.Name)
	assert.Len(t, cfg.GalaxyArms, 3)
	assert.Equal(t, []string{"TypeScript", "React"}, cfg.GalaxyArms[0].Items)
	assert.Equal(t, 0, cfg.Projects[0].Arm)
	assert.Equal(t, 5, cfg.Languages.MaxDisplay)
	assert.Equal(t, AllMetrics, cfg.Stats.Metrics, "defaults applied on load")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "galaxy-profile init")
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("username: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
username: galaxy-dev
profile:
  name: Nyx Orion
galaxy_arms:
  - name: OnlyOne
    color: synapse_cyan
    items: [Go]
`), 0o644))

	_, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "galaxy_arms", cfgErr.Field)
}
