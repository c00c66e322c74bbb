// Package usecase contains the business logic of the application.
package usecase

import (
	"time"

	"github.com/watarik/ghdash/internal/domain"
)

// NormalizeIssues derives the points value for every raw issue and applies
// the closed-since-threshold filter: open issues are retained
// unconditionally, closed issues only when their closing timestamp is on or
// after the threshold. Dropped issues are excluded from all downstream
// aggregation, including global totals. The input slice is not mutated.
func NormalizeIssues(raw []domain.Issue, threshold time.Time) []domain.Issue {
	kept := make([]domain.Issue, 0, len(raw))
	for _, issue := range raw {
		issue.Points = domain.PointsFromLabels(issue.Labels)

		if issue.State == domain.StateClosed && !issue.ClosedSince(threshold) {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}

// FilterPullRequests applies the same closed-since-threshold rule to pull
// requests, based on each PR's own closing timestamp.
func FilterPullRequests(raw []domain.PullRequest, threshold time.Time) []domain.PullRequest {
	kept := make([]domain.PullRequest, 0, len(raw))
	for _, pr := range raw {
		if pr.State == domain.StateClosed && !pr.ClosedSince(threshold) {
			continue
		}
		kept = append(kept, pr)
	}
	return kept
}
