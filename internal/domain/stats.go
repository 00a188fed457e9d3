// Package domain contains the core data structures for the profile generator.
package domain

import "sort"

// StatUnavailable is the sentinel for a metric that could not be determined,
// e.g. private commit counts without a credential. It is distinct from zero.
const StatUnavailable = -1

// AccountStats holds the aggregate activity counts for a single GitHub account.
// Every field is either a non-negative count or StatUnavailable.
type AccountStats struct {
	Commits int `json:"commits"`
	Stars   int `json:"stars"`
	PRs     int `json:"prs"`
	Issues  int `json:"issues"`
	Repos   int `json:"repos"`
}

// Metric returns the value for a named metric key ("commits", "stars",
// "prs", "issues", "repos"). Unknown keys return zero.
func (s AccountStats) Metric(key string) int {
	switch key {
	case "commits":
		return s.Commits
	case "stars":
		return s.Stars
	case "prs":
		return s.PRs
	case "issues":
		return s.Issues
	case "repos":
		return s.Repos
	}
	return 0
}

// LanguageUsage maps a language name to the total byte count aggregated
// across a user's repositories.
type LanguageUsage map[string]int

// Names returns the language names sorted by byte count descending,
// ties broken alphabetically for stable output.
func (u LanguageUsage) Names() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if u[names[i]] != u[names[j]] {
			return u[names[i]] > u[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// LanguageShare is one display-ready language entry: its percentage of the
// filtered total, rounded to a whole percent. Shares produced together
// always sum to exactly 100.
type LanguageShare struct {
	Name    string
	Bytes   int
	Percent int
}
