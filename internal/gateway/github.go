// Package gateway provides a gateway to the GitHub API, abstracting away the
// underlying REST and GraphQL clients. With a token it fetches everything in
// one GraphQL round trip; without one it falls back to enumerating public
// repositories over REST, where private contribution counts are unavailable.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/galaxy-dev/galaxy-profile/internal/domain"
)

const (
	// requestTimeout bounds every individual network call.
	requestTimeout = 15 * time.Second
	pageSize       = 100
)

// Fetcher defines the behavior of a gateway for fetching profile data.
// A single call returns both the aggregate stats and the per-language
// byte totals, since the REST path derives both from one enumeration.
type Fetcher interface {
	FetchProfile(ctx context.Context) (domain.AccountStats, domain.LanguageUsage, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	username      string
	hasToken      bool
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// profileQuery is the single aggregate GraphQL query: all metrics plus the
// language breakdown in one round trip.
type profileQuery struct {
	User struct {
		PullRequests struct {
			TotalCount int
		}
		Issues struct {
			TotalCount int
		}
		Repositories struct {
			TotalCount int
			Nodes      []struct {
				StargazerCount int
				Languages      struct {
					Edges []struct {
						Size int
						Node struct {
							Name string
						}
					}
				} `graphql:"languages(first: 20, orderBy: {field: SIZE, direction: DESC})"`
			}
		} `graphql:"repositories(ownerAffiliations: OWNER, isFork: false, first: 100)"`
		ContributionsCollection struct {
			TotalCommitContributions     int
			RestrictedContributionsCount int
		}
	} `graphql:"user(login: $login)"`
}

// NewGitHubGateway creates a gateway for one user. The token is optional;
// without it only the REST path is used and commit counts come back as the
// unavailable sentinel. The rate limit waiter sleeps through a secondary
// rate limit instead of failing the run.
func NewGitHubGateway(username, token string, logger *log.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithSingleSleepLimit(5*time.Minute, nil))
	if err != nil {
		return nil, fmt.Errorf("create rate limit waiter: %w", err)
	}

	httpClient := &http.Client{
		Transport: rateLimitWaiter,
		Timeout:   requestTimeout,
	}
	if token != "" {
		httpClient.Transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}

	return &GitHubGateway{
		username:      username,
		hasToken:      token != "",
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchProfile returns the account stats and language usage for the gateway's
// user. With a token it tries GraphQL first and falls back to REST on any
// failure; without one it goes straight to REST.
func (g *GitHubGateway) FetchProfile(ctx context.Context) (domain.AccountStats, domain.LanguageUsage, error) {
	if g.hasToken {
		stats, langs, err := g.fetchGraphQL(ctx)
		if err == nil {
			return stats, langs, nil
		}
		g.logger.Warn("GraphQL fetch failed, falling back to REST", "err", err)
	}
	return g.fetchREST(ctx)
}

func (g *GitHubGateway) fetchGraphQL(ctx context.Context) (domain.AccountStats, domain.LanguageUsage, error) {
	g.logger.Debug("fetching stats via GraphQL", "user", g.username)

	var q profileQuery
	variables := map[string]interface{}{
		"login": githubv4.String(g.username),
	}
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return domain.AccountStats{}, nil, classify("graphql stats", err)
	}

	contrib := q.User.ContributionsCollection
	stats := domain.AccountStats{
		Commits: contrib.TotalCommitContributions + contrib.RestrictedContributionsCount,
		PRs:     q.User.PullRequests.TotalCount,
		Issues:  q.User.Issues.TotalCount,
		Repos:   q.User.Repositories.TotalCount,
	}

	languages := make(domain.LanguageUsage)
	for _, repo := range q.User.Repositories.Nodes {
		stats.Stars += repo.StargazerCount
		for _, edge := range repo.Languages.Edges {
			languages[edge.Node.Name] += edge.Size
		}
	}

	g.logger.Debug("GraphQL fetch complete", "languages", len(languages))
	return stats, languages, nil
}

// fetchREST enumerates public data only. Commit counts are not exposed
// without a credential, so Commits is reported as StatUnavailable.
func (g *GitHubGateway) fetchREST(ctx context.Context) (domain.AccountStats, domain.LanguageUsage, error) {
	g.logger.Debug("fetching stats via REST", "user", g.username)

	user, _, err := g.restClient.Users.Get(ctx, g.username)
	if err != nil {
		return domain.AccountStats{}, nil, classify("get user", err)
	}

	stats := domain.AccountStats{
		Commits: domain.StatUnavailable,
		Repos:   user.GetPublicRepos(),
	}

	languages := make(domain.LanguageUsage)
	if err := g.forEachRepo(ctx, func(repo *github.Repository) error {
		stats.Stars += repo.GetStargazersCount()
		if repo.GetFork() {
			return nil
		}
		langs, _, err := g.restClient.Repositories.ListLanguages(ctx, g.username, repo.GetName())
		if err != nil {
			// A single unreadable repo should not sink the whole run.
			g.logger.Warn("could not fetch languages", "repo", repo.GetFullName(), "err", err)
			return nil
		}
		for lang, count := range langs {
			languages[lang] += count
		}
		return nil
	}); err != nil {
		return domain.AccountStats{}, nil, err
	}

	if stats.PRs, err = g.searchCount(ctx, fmt.Sprintf("author:%s type:pr", g.username)); err != nil {
		g.logger.Warn("PR count unavailable", "err", err)
		stats.PRs = 0
	}
	if stats.Issues, err = g.searchCount(ctx, fmt.Sprintf("author:%s type:issue", g.username)); err != nil {
		g.logger.Warn("issue count unavailable", "err", err)
		stats.Issues = 0
	}

	g.logger.Debug("REST fetch complete", "languages", len(languages))
	return stats, languages, nil
}

// forEachRepo pages through the user's owned repositories, stopping when the
// API reports no next page.
func (g *GitHubGateway) forEachRepo(ctx context.Context, fn func(*github.Repository) error) error {
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}
	for {
		repos, resp, err := g.restClient.Repositories.ListByUser(ctx, g.username, opts)
		if err != nil {
			return classify("list repos", err)
		}
		for _, repo := range repos {
			if err := fn(repo); err != nil {
				return err
			}
		}
		if resp.NextPage == 0 {
			return nil
		}
		opts.Page = resp.NextPage
		g.logger.Debug("fetching next page of repositories", "page", resp.NextPage)
	}
}

// searchCount returns the total_count for a Search API query.
func (g *GitHubGateway) searchCount(ctx context.Context, query string) (int, error) {
	result, _, err := g.restClient.Search.Issues(ctx, query, &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0, classify("search "+query, err)
	}
	return result.GetTotal(), nil
}
