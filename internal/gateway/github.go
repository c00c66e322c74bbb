// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/watarik/ghdash/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchIssues(ctx context.Context, owner, repo string) ([]domain.Issue, error)
	FetchPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, error)
	FetchRepoMeta(ctx context.Context, owner, repo string) (*domain.RepoMeta, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	perPage       int
	logger        *log.Logger
}

// repoMetaQuery fetches the repository header metadata in a single call.
type repoMetaQuery struct {
	Repository struct {
		Description    string
		StargazerCount int
		Issues         struct {
			TotalCount int
		} `graphql:"issues(states: OPEN)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
func NewGitHubGateway(token string, perPage int, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		},
	}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		perPage:       perPage,
		logger:        logger,
	}, nil
}

// FetchIssues retrieves a single page of issues (open and closed) for a
// repository. The Issues API mixes in pull requests; those records carry a
// pull_request marker and are flagged, not dropped, so the normalizer can
// decide.
func (g *GitHubGateway) FetchIssues(ctx context.Context, owner, repo string) ([]domain.Issue, error) {
	g.logger.Printf("Fetching issues for %s/%s...", owner, repo)
	opts := &github.IssueListByRepoOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: g.perPage},
	}

	apiIssues, _, err := g.restClient.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues for %s/%s: %w", owner, repo, err)
	}

	issues := make([]domain.Issue, 0, len(apiIssues))
	for _, api := range apiIssues {
		issues = append(issues, convertIssue(api))
	}

	g.logger.Printf("Fetched %d issues for %s/%s.", len(issues), owner, repo)
	return issues, nil
}

// FetchPullRequests retrieves a single page of pull requests (all states)
// for a repository.
func (g *GitHubGateway) FetchPullRequests(ctx context.Context, owner, repo string) ([]domain.PullRequest, error) {
	g.logger.Printf("Fetching pull requests for %s/%s...", owner, repo)
	opts := &github.PullRequestListOptions{
		State:       "all",
		ListOptions: github.ListOptions{PerPage: g.perPage},
	}

	apiPRs, _, err := g.restClient.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", owner, repo, err)
	}

	prs := make([]domain.PullRequest, 0, len(apiPRs))
	for _, api := range apiPRs {
		prs = append(prs, convertPullRequest(api))
	}

	g.logger.Printf("Fetched %d pull requests for %s/%s.", len(prs), owner, repo)
	return prs, nil
}

// FetchRepoMeta retrieves repository header metadata via the GraphQL API.
func (g *GitHubGateway) FetchRepoMeta(ctx context.Context, owner, repo string) (*domain.RepoMeta, error) {
	variables := map[string]interface{}{
		"owner": githubv4.String(owner),
		"name":  githubv4.String(repo),
	}

	var q repoMetaQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to query repository metadata for %s/%s: %w", owner, repo, err)
	}

	return &domain.RepoMeta{
		Description: q.Repository.Description,
		Stars:       q.Repository.StargazerCount,
		OpenIssues:  q.Repository.Issues.TotalCount,
	}, nil
}

func convertIssue(api *github.Issue) domain.Issue {
	issue := domain.Issue{
		Number:        api.GetNumber(),
		Title:         api.GetTitle(),
		State:         api.GetState(),
		CreatedAt:     api.GetCreatedAt().Time,
		Comments:      api.GetComments(),
		HTMLURL:       api.GetHTMLURL(),
		Labels:        []domain.Label{},
		IsPullRequest: api.PullRequestLinks != nil,
	}

	if api.ClosedAt != nil {
		closedAt := api.ClosedAt.Time
		issue.ClosedAt = &closedAt
	}
	if api.Assignee != nil {
		issue.Assignee = convertUser(api.Assignee)
	}
	if api.User != nil {
		issue.Author = convertUser(api.User)
	}
	for _, label := range api.Labels {
		issue.Labels = append(issue.Labels, domain.Label{
			Name:  label.GetName(),
			Color: label.GetColor(),
		})
	}

	return issue
}

func convertPullRequest(api *github.PullRequest) domain.PullRequest {
	pr := domain.PullRequest{
		Number:    api.GetNumber(),
		Title:     api.GetTitle(),
		State:     api.GetState(),
		CreatedAt: api.GetCreatedAt().Time,
		HTMLURL:   api.GetHTMLURL(),
	}

	if api.ClosedAt != nil {
		closedAt := api.ClosedAt.Time
		pr.ClosedAt = &closedAt
	}
	if api.MergedAt != nil {
		mergedAt := api.MergedAt.Time
		pr.MergedAt = &mergedAt
	}
	if api.User != nil {
		pr.Author = convertUser(api.User)
	}

	return pr
}

func convertUser(api *github.User) *domain.User {
	return &domain.User{
		Login:     api.GetLogin(),
		AvatarURL: api.GetAvatarURL(),
		HTMLURL:   api.GetHTMLURL(),
	}
}
