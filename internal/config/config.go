// Package config defines the profile configuration, its YAML loader, and
// validation. A Config that came out of Load is fully validated and has all
// defaults applied; the rest of the pipeline treats it as immutable.
package config

import (
	"fmt"
	"regexp"
)

// ArmCount is the required number of focus areas ("galaxy arms").
// The radar chart and the header spiral both assume exactly three sectors.
const ArmCount = 3

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// AllMetrics lists every metric key the stats card can display, in default order.
var AllMetrics = []string{"commits", "stars", "prs", "issues", "repos"}

// ConfigError reports invalid or missing configuration data. It is the only
// fatal error class: the pipeline aborts before any fetch when one occurs.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Profile holds the display text shown on the header banner.
type Profile struct {
	Name       string `koanf:"name"`
	Tagline    string `koanf:"tagline"`
	Bio        string `koanf:"bio"`
	Company    string `koanf:"company"`
	Location   string `koanf:"location"`
	Philosophy string `koanf:"philosophy"`
}

// FocusArea is one user-declared skill category displayed as a spiral arm
// and a radar sector. Color is a theme token name, not a hex value.
type FocusArea struct {
	Name  string   `koanf:"name"`
	Color string   `koanf:"color"`
	Items []string `koanf:"items"`
}

// Project is a featured repository card in the constellation. Arm is the
// index of the owning focus area.
type Project struct {
	Repo        string `koanf:"repo"`
	Arm         int    `koanf:"arm"`
	Description string `koanf:"description"`
}

// StatsConfig selects which metrics the stats card displays.
type StatsConfig struct {
	Metrics []string `koanf:"metrics"`
}

// LanguageConfig limits the language telemetry display.
type LanguageConfig struct {
	Exclude    []string `koanf:"exclude"`
	MaxDisplay int      `koanf:"max_display"`
}

// Config is the full validated profile configuration.
type Config struct {
	Username   string            `koanf:"username"`
	Profile    Profile           `koanf:"profile"`
	Social     map[string]string `koanf:"social"`
	GalaxyArms []FocusArea       `koanf:"galaxy_arms"`
	Projects   []Project         `koanf:"projects"`
	Theme      map[string]string `koanf:"theme"`
	Stats      StatsConfig       `koanf:"stats"`
	Languages  LanguageConfig    `koanf:"languages"`
}

// Validate checks required fields and value ranges, and fills defaults for
// optional ones. It returns a *ConfigError on the first problem found.
func (c *Config) Validate() error {
	if c.Username == "" {
		return &ConfigError{Field: "username", Reason: "required and must be a non-empty string"}
	}
	if c.Profile.Name == "" {
		return &ConfigError{Field: "profile.name", Reason: "required"}
	}

	if len(c.GalaxyArms) != ArmCount {
		return &ConfigError{
			Field:  "galaxy_arms",
			Reason: fmt.Sprintf("must list exactly %d focus areas, got %d", ArmCount, len(c.GalaxyArms)),
		}
	}
	for i, arm := range c.GalaxyArms {
		if arm.Name == "" {
			return &ConfigError{Field: fmt.Sprintf("galaxy_arms[%d].name", i), Reason: "required"}
		}
		if arm.Color == "" {
			return &ConfigError{Field: fmt.Sprintf("galaxy_arms[%d].color", i), Reason: "required"}
		}
	}

	for i, proj := range c.Projects {
		if proj.Repo == "" {
			return &ConfigError{Field: fmt.Sprintf("projects[%d].repo", i), Reason: "required"}
		}
		if proj.Arm < 0 || proj.Arm >= len(c.GalaxyArms) {
			return &ConfigError{
				Field:  fmt.Sprintf("projects[%d].arm", i),
				Reason: fmt.Sprintf("must be an integer from 0 to %d", len(c.GalaxyArms)-1),
			}
		}
	}

	for key, value := range c.Theme {
		if !hexColorRe.MatchString(value) {
			return &ConfigError{
				Field:  "theme." + key,
				Reason: fmt.Sprintf("must be a valid hex color (e.g. #00d4ff), got %q", value),
			}
		}
	}

	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if len(c.Stats.Metrics) == 0 {
		c.Stats.Metrics = append([]string(nil), AllMetrics...)
	}
	if c.Languages.MaxDisplay <= 0 {
		c.Languages.MaxDisplay = 8
	}
	if c.Languages.Exclude == nil {
		c.Languages.Exclude = []string{}
	}
	if c.Social == nil {
		c.Social = map[string]string{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
	if c.Theme == nil {
		c.Theme = map[string]string{}
	}
}
