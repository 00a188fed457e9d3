package gateway

import (
	"context"

	"github.com/galaxy-dev/galaxy-profile/internal/domain"
)

// DemoGateway is a Fetcher that returns a fixed bundled dataset without any
// network access, so demo runs are deterministic and work offline.
type DemoGateway struct{}

// NewDemoGateway creates a demo fetcher.
func NewDemoGateway() *DemoGateway {
	return &DemoGateway{}
}

// FetchProfile returns the bundled sample stats and language bytes.
func (d *DemoGateway) FetchProfile(_ context.Context) (domain.AccountStats, domain.LanguageUsage, error) {
	stats := domain.AccountStats{
		Commits: 1847,
		Stars:   342,
		PRs:     156,
		Issues:  89,
		Repos:   42,
	}
	languages := domain.LanguageUsage{
		"Python":     450000,
		"TypeScript": 380000,
		"JavaScript": 120000,
		"Go":         95000,
		"Rust":       45000,
		"Shell":      30000,
		"Dockerfile": 15000,
		"CSS":        10000,
	}
	return stats, languages, nil
}
