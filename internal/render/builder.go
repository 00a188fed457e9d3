package render

import (
	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/domain"
)

// Builder renders all four profile SVGs from a validated config and one
// fetch result. The renderers are independent of each other; the only
// shared state is the resolved theme.
type Builder struct {
	cfg   *config.Config
	stats domain.AccountStats
	langs domain.LanguageUsage
	theme Theme
}

// NewBuilder creates a Builder. The config must already be validated.
func NewBuilder(cfg *config.Config, stats domain.AccountStats, langs domain.LanguageUsage) *Builder {
	return &Builder{
		cfg:   cfg,
		stats: stats,
		langs: langs,
		theme: ResolveTheme(cfg.Theme),
	}
}
