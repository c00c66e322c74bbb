package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watarik/ghdash/internal/domain"
)

func filterFixture() domain.Project {
	return domain.Project{
		Owner: "acme",
		Repo:  "widgets",
		Name:  "Widgets",
		Issues: []domain.Issue{
			{Number: 1, State: domain.StateOpen, Assignee: user("alice"), Comments: 2, Points: 5},
			{Number: 2, State: domain.StateOpen},
			{Number: 3, State: domain.StateOpen, Comments: 1},
			{Number: 4, State: domain.StateClosed, ClosedAt: dayPtr("2026-02-01"), Points: 3},
			{Number: 5, State: domain.StateClosed, ClosedAt: dayPtr("2026-02-02"), Assignee: user("bob")},
		},
		PullRequests: []domain.PullRequest{
			{Number: 1, State: domain.StateOpen},
			{Number: 2, State: domain.StateClosed, ClosedAt: dayPtr("2026-02-01")},
		},
	}
}

func TestFilterIssues(t *testing.T) {
	issues := filterFixture().Issues

	testCases := []struct {
		name            string
		mutate          func(*domain.Filters)
		expectedNumbers []int
	}{
		{
			name:            "default status open",
			mutate:          func(f *domain.Filters) {},
			expectedNumbers: []int{1, 2, 3},
		},
		{
			name:            "status all",
			mutate:          func(f *domain.Filters) { f.Status = domain.FilterAll },
			expectedNumbers: []int{1, 2, 3, 4, 5},
		},
		{
			name:            "status closed",
			mutate:          func(f *domain.Filters) { f.Status = domain.StateClosed },
			expectedNumbers: []int{4, 5},
		},
		{
			name: "assigned only",
			mutate: func(f *domain.Filters) {
				f.Status = domain.FilterAll
				f.Assignment = domain.FilterAssigned
			},
			expectedNumbers: []int{1, 5},
		},
		{
			name: "unassigned only",
			mutate: func(f *domain.Filters) {
				f.Status = domain.FilterAll
				f.Assignment = domain.FilterUnassigned
			},
			expectedNumbers: []int{2, 3, 4},
		},
		{
			name: "has comments",
			mutate: func(f *domain.Filters) {
				f.Comments = domain.FilterHasComments
			},
			expectedNumbers: []int{1, 3},
		},
		{
			name: "no comments",
			mutate: func(f *domain.Filters) {
				f.Comments = domain.FilterNoComments
			},
			expectedNumbers: []int{2},
		},
		{
			name: "has points",
			mutate: func(f *domain.Filters) {
				f.Status = domain.FilterAll
				f.Points = domain.FilterHasPoints
			},
			expectedNumbers: []int{1, 4},
		},
		{
			name: "predicates combine as AND",
			mutate: func(f *domain.Filters) {
				f.Assignment = domain.FilterAssigned
				f.Comments = domain.FilterHasComments
				f.Points = domain.FilterHasPoints
			},
			expectedNumbers: []int{1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filters := domain.DefaultFilters()
			tc.mutate(&filters)

			filtered := FilterIssues(issues, filters)

			numbers := make([]int, 0, len(filtered))
			for _, issue := range filtered {
				numbers = append(numbers, issue.Number)
			}
			assert.Equal(t, tc.expectedNumbers, numbers)
		})
	}
}

// TestApplyFilters replays the reference scenario: status=open on a
// project with 3 open and 2 closed issues.
func TestApplyFilters(t *testing.T) {
	project := filterFixture()
	filters := domain.DefaultFilters()

	filtered := ApplyFilters(project, filters)

	require.NotNil(t, filtered.FilteredStats)
	assert.Equal(t, 3, filtered.FilteredStats.Total)
	assert.Equal(t, 3, filtered.FilteredStats.Open)
	assert.Equal(t, 0, filtered.FilteredStats.Closed)

	// The original project record is reconstructed, not mutated.
	assert.Nil(t, project.FilteredStats)
	assert.Len(t, project.Issues, 5)
}

func TestApplyFilters_Idempotent(t *testing.T) {
	project := filterFixture()
	filters := domain.DefaultFilters()
	filters.Status = domain.FilterAll
	filters.Points = domain.FilterHasPoints

	first := ApplyFilters(project, filters)
	second := ApplyFilters(project, filters)

	assert.Equal(t, first.FilteredIssues, second.FilteredIssues)
	assert.Equal(t, *first.FilteredStats, *second.FilteredStats)
}

func TestApplyFilters_PRStatus(t *testing.T) {
	project := filterFixture()
	filters := domain.DefaultFilters()
	filters.PRStatus = domain.StateOpen

	filtered := ApplyFilters(project, filters)

	require.Len(t, filtered.FilteredPullRequests, 1)
	assert.Equal(t, 1, filtered.FilteredPullRequests[0].Number)
}

func TestSortProjects(t *testing.T) {
	projects := []domain.Project{
		{Name: "gamma", Order: 2, Stats: domain.Stats{Total: 3, Points: 10, Closed: 1}},
		{Name: "alpha", Order: 0, Stats: domain.Stats{Total: 1, Points: 30, Closed: 2}}, // unset order sinks to 999
		{Name: "Beta", Order: 1, Stats: domain.Stats{Total: 2, Points: 20, Closed: 2}},
	}

	testCases := []struct {
		name      string
		sortBy    string
		sortOrder string
		expected  []string
	}{
		{"by configured order", domain.SortByOrder, domain.SortAsc, []string{"Beta", "gamma", "alpha"}},
		{"by points descending", domain.SortByPoints, domain.SortDesc, []string{"alpha", "Beta", "gamma"}},
		{"by points ascending", domain.SortByPoints, domain.SortAsc, []string{"gamma", "Beta", "alpha"}},
		{"by issue count descending", domain.SortByIssues, domain.SortDesc, []string{"gamma", "Beta", "alpha"}},
		{"by closed count descending, ties keep input order", domain.SortByClosed, domain.SortDesc, []string{"alpha", "Beta", "gamma"}},
		{"by name, locale-aware", domain.SortByName, domain.SortAsc, []string{"alpha", "Beta", "gamma"}},
		{"by name descending", domain.SortByName, domain.SortDesc, []string{"gamma", "Beta", "alpha"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filters := domain.DefaultFilters()
			filters.SortBy = tc.sortBy
			filters.SortOrder = tc.sortOrder

			sorted := SortProjects(projects, filters)

			names := make([]string, 0, len(sorted))
			for _, project := range sorted {
				names = append(names, project.Name)
			}
			assert.Equal(t, tc.expected, names)

			// The input order is untouched.
			assert.Equal(t, "gamma", projects[0].Name)
		})
	}
}

func TestSortProjects_UsesFilteredStats(t *testing.T) {
	filteredStats := domain.Stats{Total: 9, Points: 1}
	projects := []domain.Project{
		{Name: "a", Stats: domain.Stats{Points: 5}, FilteredStats: &filteredStats},
		{Name: "b", Stats: domain.Stats{Points: 3}},
	}

	filters := domain.DefaultFilters()
	filters.SortBy = domain.SortByPoints
	filters.SortOrder = domain.SortDesc

	sorted := SortProjects(projects, filters)

	// a's filtered points (1) lose to b's unfiltered points (3).
	assert.Equal(t, "b", sorted[0].Name)
}

func TestVisibleProjects(t *testing.T) {
	empty := domain.Stats{Total: 0}
	projects := []domain.Project{
		{Name: "shown", Stats: domain.Stats{Total: 2}},
		{Name: "hidden", Stats: domain.Stats{Total: 0}},
		{Name: "filtered-out", Stats: domain.Stats{Total: 5}, FilteredStats: &empty},
	}

	visible := VisibleProjects(projects)

	require.Len(t, visible, 1)
	assert.Equal(t, "shown", visible[0].Name)

	// Suppression is display-only; the input list still has all three.
	assert.Len(t, projects, 3)
}
