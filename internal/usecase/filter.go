package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/watarik/ghdash/internal/domain"
)

// nameCollator backs the locale-aware project name sort. Sorting is
// single-threaded, so sharing one collator is safe.
var nameCollator = collate.New(language.English)

// FilterIssues applies the four issue predicates (status, assignment,
// comments, points) as a conjunction. A fresh slice is returned; the input
// is never mutated.
func FilterIssues(issues []domain.Issue, filters domain.Filters) []domain.Issue {
	kept := make([]domain.Issue, 0, len(issues))
	for _, issue := range issues {
		if filters.Status != domain.FilterAll && issue.State != filters.Status {
			continue
		}
		if filters.Assignment == domain.FilterAssigned && issue.Assignee == nil {
			continue
		}
		if filters.Assignment == domain.FilterUnassigned && issue.Assignee != nil {
			continue
		}
		if filters.Comments == domain.FilterHasComments && issue.Comments == 0 {
			continue
		}
		if filters.Comments == domain.FilterNoComments && issue.Comments > 0 {
			continue
		}
		if filters.Points == domain.FilterHasPoints && issue.Points == 0 {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}

// FilterPullRequestsByStatus applies the PR status predicate.
func FilterPullRequestsByStatus(prs []domain.PullRequest, prStatus string) []domain.PullRequest {
	if prStatus == domain.FilterAll {
		kept := make([]domain.PullRequest, len(prs))
		copy(kept, prs)
		return kept
	}

	kept := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.State == prStatus {
			kept = append(kept, pr)
		}
	}
	return kept
}

// ApplyFilters returns a shallow copy of the project extended with the
// filtered issue/PR views and a freshly derived stats snapshot. The
// original project record is left untouched, so applying the same filters
// twice yields identical results.
func ApplyFilters(project domain.Project, filters domain.Filters) domain.Project {
	filtered := FilterIssues(project.Issues, filters)
	filteredStats := ProjectStats(filtered)

	project.FilteredIssues = filtered
	project.FilteredPullRequests = FilterPullRequestsByStatus(project.PullRequests, filters.PRStatus)
	project.FilteredStats = &filteredStats
	return project
}

// SortProjects orders a copy of the project list by the selected key.
// Numeric keys (points, issues, closed) use the filtered stats when
// present; name uses locale-aware collation; order falls back to 999 for
// unranked projects. Ties keep input order.
func SortProjects(projects []domain.Project, filters domain.Filters) []domain.Project {
	sorted := make([]domain.Project, len(projects))
	copy(sorted, projects)

	desc := filters.SortOrder == domain.SortDesc

	if filters.SortBy == domain.SortByName {
		sort.SliceStable(sorted, func(i, j int) bool {
			cmp := nameCollator.CompareString(sorted[i].Name, sorted[j].Name)
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
		return sorted
	}

	key := func(p domain.Project) int {
		switch filters.SortBy {
		case domain.SortByPoints:
			return p.EffectiveStats().Points
		case domain.SortByIssues:
			return p.EffectiveStats().Total
		case domain.SortByClosed:
			return p.EffectiveStats().Closed
		default:
			return p.SortOrder()
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return key(sorted[i]) > key(sorted[j])
		}
		return key(sorted[i]) < key(sorted[j])
	})
	return sorted
}

// VisibleProjects hides projects whose (filtered) issue total is zero.
// This is display suppression only; the underlying data is untouched.
func VisibleProjects(projects []domain.Project) []domain.Project {
	visible := make([]domain.Project, 0, len(projects))
	for _, project := range projects {
		if project.EffectiveStats().Total > 0 {
			visible = append(visible, project)
		}
	}
	return visible
}
