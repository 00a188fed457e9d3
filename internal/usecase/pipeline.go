package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/domain"
	"github.com/galaxy-dev/galaxy-profile/internal/gateway"
	"github.com/galaxy-dev/galaxy-profile/internal/render"
)

// Output file names, relative to the output directory.
const (
	HeaderFile        = "galaxy-header.svg"
	StatsCardFile     = "stats-card.svg"
	TechStackFile     = "tech-stack.svg"
	ConstellationFile = "projects-constellation.svg"
)

// Pipeline runs the full generation flow: fetch account data, then render
// and write the four profile images.
type Pipeline struct {
	cfg     *config.Config
	fetcher gateway.Fetcher
	logger  *log.Logger
	outDir  string
}

func NewPipeline(cfg *config.Config, fetcher gateway.Fetcher, logger *log.Logger, outDir string) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		logger:  logger,
		outDir:  outDir,
	}
}

// Run fetches profile data and writes all four SVGs. A fetch failure is not
// fatal: the images are still produced with unavailable stats and an empty
// language set, so a scheduled regeneration never leaves stale files behind.
func (p *Pipeline) Run(ctx context.Context) error {
	stats, langs, err := p.fetcher.FetchProfile(ctx)
	if err != nil {
		p.logger.Warn("fetch failed, rendering with placeholder stats", "err", err)
		stats = domain.AccountStats{
			Commits: domain.StatUnavailable,
			Stars:   domain.StatUnavailable,
			PRs:     domain.StatUnavailable,
			Issues:  domain.StatUnavailable,
			Repos:   domain.StatUnavailable,
		}
		langs = domain.LanguageUsage{}
	}

	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	builder := render.NewBuilder(p.cfg, stats, langs)
	images := []struct {
		name   string
		render func() string
	}{
		{HeaderFile, builder.GalaxyHeader},
		{StatsCardFile, builder.StatsCard},
		{TechStackFile, builder.TechStack},
		{ConstellationFile, builder.Constellation},
	}

	for _, img := range images {
		path := filepath.Join(p.outDir, img.name)
		if err := os.WriteFile(path, []byte(img.render()), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", img.name, err)
		}
		p.logger.Info("wrote image", "path", path)
	}
	return nil
}
