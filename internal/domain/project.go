package domain

import "fmt"

// unsetOrder is used when a project has no configured display rank.
const unsetOrder = 999

// Project is a tracked repository together with its fetched issue and pull
// request sets and derived statistics. Filtered views live alongside the
// raw data; applying filters produces a shallow copy with fresh snapshots,
// never an in-place update.
type Project struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	Name  string `json:"name"`
	Order int    `json:"order"`

	Meta *RepoMeta `json:"meta,omitempty"`

	Issues       []Issue       `json:"issues"`
	PullRequests []PullRequest `json:"pull_requests"`

	Stats      Stats             `json:"stats"`
	Resolution ResolutionSummary `json:"resolution"`

	FilteredIssues       []Issue       `json:"filtered_issues,omitempty"`
	FilteredPullRequests []PullRequest `json:"filtered_pull_requests,omitempty"`
	FilteredStats        *Stats        `json:"filtered_stats,omitempty"`
}

// Key returns the unique owner/repo identifier of the project.
func (p *Project) Key() string {
	return fmt.Sprintf("%s/%s", p.Owner, p.Repo)
}

// SortOrder returns the configured display rank, treating an unset (zero)
// order as 999 so unranked projects sink to the end.
func (p *Project) SortOrder() int {
	if p.Order == 0 {
		return unsetOrder
	}
	return p.Order
}

// EffectiveStats returns the filtered stats snapshot when one exists,
// falling back to the unfiltered stats.
func (p *Project) EffectiveStats() Stats {
	if p.FilteredStats != nil {
		return *p.FilteredStats
	}
	return p.Stats
}

// Stats is a derived per-project summary. It is always recomputed as a
// fresh snapshot from an issue list, never mutated in place.
type Stats struct {
	Open     int `json:"open"`
	Closed   int `json:"closed"`
	Assigned int `json:"assigned"`
	Total    int `json:"total"`
	Points   int `json:"points"`
	Comments int `json:"comments"`
}

// GlobalStats summarizes all issues across every tracked project.
type GlobalStats struct {
	Open            int `json:"open"`
	WithComments    int `json:"with_comments"`
	Assigned        int `json:"assigned"`
	ClosedSince     int `json:"closed_since_threshold"`
	TotalPoints     int `json:"total_points"`
	CollectedPoints int `json:"collected_points"`
}

// Contributor accumulates the leaderboard entry for a single assignee.
// An entry exists only if at least one issue is assigned to the username.
type Contributor struct {
	Login                  string  `json:"login"`
	AssignedCount          int     `json:"assigned_count"`
	ClosedCount            int     `json:"closed_count"`
	TotalPoints            int     `json:"total_points"`
	AssignedIssues         []Issue `json:"assigned_issues"`
	ClosedIssuesWithPoints []Issue `json:"closed_issues_with_points"`
}

// RepoMeta carries repository header metadata fetched separately from the
// issue data.
type RepoMeta struct {
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	OpenIssues  int    `json:"open_issues"`
}

// ResolutionSummary describes how long a project's closed issues took to
// resolve, in hours from creation to close.
type ResolutionSummary struct {
	Count       int     `json:"count"`
	MeanHours   float64 `json:"mean_hours"`
	MedianHours float64 `json:"median_hours"`
	P90Hours    float64 `json:"p90_hours"`
}
