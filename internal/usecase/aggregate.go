package usecase

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/watarik/ghdash/internal/domain"
)

// ProjectStats computes a fresh stats snapshot over an issue list. The
// list may be a project's full issue set or a filtered view.
func ProjectStats(issues []domain.Issue) domain.Stats {
	var s domain.Stats
	for _, issue := range issues {
		switch issue.State {
		case domain.StateOpen:
			s.Open++
		case domain.StateClosed:
			s.Closed++
		}
		if issue.Assignee != nil {
			s.Assigned++
		}
		s.Points += issue.Points
		s.Comments += issue.Comments
	}
	s.Total = len(issues)
	return s
}

// GlobalStats summarizes all issues across every project. It always runs
// over the full normalized set, never the user-selected filter view.
// Collected points only count closed-since-threshold issues that carry
// points, so collected never exceeds total.
func GlobalStats(projects []domain.Project, threshold time.Time) domain.GlobalStats {
	var g domain.GlobalStats
	for i := range projects {
		for _, issue := range projects[i].Issues {
			if issue.State == domain.StateOpen {
				g.Open++
			}
			if issue.Comments > 0 {
				g.WithComments++
			}
			if issue.Assignee != nil {
				g.Assigned++
			}
			g.TotalPoints += issue.Points

			if issue.ClosedSince(threshold) {
				g.ClosedSince++
				if issue.Points > 0 {
					g.CollectedPoints += issue.Points
				}
			}
		}
	}
	return g
}

// Leaderboard builds the contributor ranking from scratch over the full
// project set. Every assigned issue is attributed to exactly one
// contributor bucket; users with no assigned issues never appear. Ties
// keep encounter order.
func Leaderboard(projects []domain.Project, threshold time.Time, contribSort string) []domain.Contributor {
	buckets := map[string]*domain.Contributor{}
	logins := []string{}

	for i := range projects {
		for _, issue := range projects[i].Issues {
			if issue.Assignee == nil {
				continue
			}

			login := issue.Assignee.Login
			contributor, ok := buckets[login]
			if !ok {
				contributor = &domain.Contributor{Login: login}
				buckets[login] = contributor
				logins = append(logins, login)
			}

			contributor.AssignedCount++
			contributor.AssignedIssues = append(contributor.AssignedIssues, issue)

			if issue.ClosedSince(threshold) {
				contributor.ClosedCount++
				if issue.Points > 0 {
					contributor.TotalPoints += issue.Points
					contributor.ClosedIssuesWithPoints = append(contributor.ClosedIssuesWithPoints, issue)
				}
			}
		}
	}

	board := make([]domain.Contributor, 0, len(logins))
	for _, login := range logins {
		board = append(board, *buckets[login])
	}

	key := func(c domain.Contributor) int {
		switch contribSort {
		case domain.ContribSortClosed:
			return c.ClosedCount
		case domain.ContribSortAssigned:
			return c.AssignedCount
		default:
			return c.TotalPoints
		}
	}
	sort.SliceStable(board, func(i, j int) bool {
		return key(board[i]) > key(board[j])
	})

	return board
}

// DailyActivity produces the four dense day→count series over the
// inclusive [start, end] window. Timestamps outside the window are
// silently excluded.
func DailyActivity(projects []domain.Project, start, end time.Time) domain.DailyCounts {
	counts := domain.NewDailyCounts(start, end)

	for i := range projects {
		for _, issue := range projects[i].Issues {
			counts.CountIssue(issue)
		}
		for _, pr := range projects[i].PullRequests {
			counts.CountPullRequest(pr)
		}
	}

	return counts
}

// ResolutionSummary computes mean/median/p90 hours-to-close over the
// closed issues in the list. Issues without a closing timestamp are
// skipped; an empty sample yields a zeroed summary.
func ResolutionSummary(issues []domain.Issue) domain.ResolutionSummary {
	hours := []float64{}
	for _, issue := range issues {
		if issue.State == domain.StateClosed && issue.ClosedAt != nil {
			hours = append(hours, issue.ClosedAt.Sub(issue.CreatedAt).Hours())
		}
	}

	summary := domain.ResolutionSummary{Count: len(hours)}
	if len(hours) == 0 {
		return summary
	}

	summary.MeanHours, _ = stats.Mean(hours)
	summary.MedianHours, _ = stats.Median(hours)
	summary.P90Hours, _ = stats.Percentile(hours, 90)
	return summary
}
