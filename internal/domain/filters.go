package domain

import (
	"fmt"
	"strings"
)

// Filter values shared by the status, assignment, comments and points
// predicates.
const (
	FilterAll         = "all"
	FilterAssigned    = "assigned"
	FilterUnassigned  = "unassigned"
	FilterHasComments = "has-comments"
	FilterNoComments  = "no-comments"
	FilterHasPoints   = "has-points"
)

// Project sort keys and directions.
const (
	SortByOrder  = "order"
	SortByPoints = "points"
	SortByIssues = "issues"
	SortByClosed = "closed"
	SortByName   = "name"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Contributor leaderboard sort keys.
const (
	ContribSortPoints   = "points"
	ContribSortClosed   = "closed"
	ContribSortAssigned = "assigned"
)

// Filters is the user-selected view configuration. The zero value is not
// meaningful; use DefaultFilters.
type Filters struct {
	Status      string `json:"status"`
	Assignment  string `json:"assignment"`
	Comments    string `json:"comments"`
	Points      string `json:"points"`
	SortBy      string `json:"sort_by"`
	SortOrder   string `json:"sort_order"`
	ContribSort string `json:"contrib_sort"`
	PRStatus    string `json:"pr_status"`
}

// DefaultFilters returns the initial view configuration: open issues,
// configuration order, top contributors by points.
func DefaultFilters() Filters {
	return Filters{
		Status:      StateOpen,
		Assignment:  FilterAll,
		Comments:    FilterAll,
		Points:      FilterAll,
		SortBy:      SortByOrder,
		SortOrder:   SortAsc,
		ContribSort: ContribSortPoints,
		PRStatus:    FilterAll,
	}
}

// Validate checks every field against its allowed value set.
func (f Filters) Validate() error {
	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"status", f.Status, []string{FilterAll, StateOpen, StateClosed}},
		{"assignment", f.Assignment, []string{FilterAll, FilterAssigned, FilterUnassigned}},
		{"comments", f.Comments, []string{FilterAll, FilterHasComments, FilterNoComments}},
		{"points", f.Points, []string{FilterAll, FilterHasPoints}},
		{"sort-by", f.SortBy, []string{SortByOrder, SortByPoints, SortByIssues, SortByClosed, SortByName}},
		{"sort-order", f.SortOrder, []string{SortAsc, SortDesc}},
		{"contrib-sort", f.ContribSort, []string{ContribSortPoints, ContribSortClosed, ContribSortAssigned}},
		{"pr-status", f.PRStatus, []string{FilterAll, StateOpen, StateClosed}},
	}

	for _, check := range checks {
		if !contains(check.allowed, check.value) {
			return fmt.Errorf("invalid %s %q, must be one of: %s",
				check.field, check.value, strings.Join(check.allowed, ", "))
		}
	}

	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
