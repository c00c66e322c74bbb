package domain

import "time"

// DayFormat is the calendar-day key format used by the activity heatmap.
const DayFormat = "2006-01-02"

// DailyCounts holds four parallel day→count series over an inclusive date
// window. Every day in the window is present with a zero default, so
// in-range lookups never miss; out-of-range timestamps are silently
// ignored during accumulation.
type DailyCounts struct {
	Assigned  map[string]int `json:"assigned"`
	Closed    map[string]int `json:"closed"`
	MergedPRs map[string]int `json:"merged_prs"`
	OpenPRs   map[string]int `json:"open_prs"`
}

// NewDailyCounts pre-populates all four series with every calendar day in
// [start, end]. An inverted range yields empty series.
func NewDailyCounts(start, end time.Time) DailyCounts {
	counts := DailyCounts{
		Assigned:  map[string]int{},
		Closed:    map[string]int{},
		MergedPRs: map[string]int{},
		OpenPRs:   map[string]int{},
	}

	for day := dayStart(start); !day.After(dayStart(end)); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayFormat)
		counts.Assigned[key] = 0
		counts.Closed[key] = 0
		counts.MergedPRs[key] = 0
		counts.OpenPRs[key] = 0
	}

	return counts
}

// CountIssue buckets an issue's creation date into the assigned series and,
// when closed, its closing date into the closed series.
func (d DailyCounts) CountIssue(issue Issue) {
	bump(d.Assigned, issue.CreatedAt)
	if issue.ClosedAt != nil {
		bump(d.Closed, *issue.ClosedAt)
	}
}

// CountPullRequest buckets a merged PR by its merge date and an open PR by
// its creation date. Closed-but-unmerged PRs are not charted.
func (d DailyCounts) CountPullRequest(pr PullRequest) {
	if pr.Merged() {
		bump(d.MergedPRs, *pr.MergedAt)
		return
	}
	if pr.State == StateOpen {
		bump(d.OpenPRs, pr.CreatedAt)
	}
}

// bump increments the day bucket for ts only if that day is inside the
// pre-populated window. Time-of-day is discarded; the key is formatted in
// the timestamp's own location.
func bump(series map[string]int, ts time.Time) {
	key := ts.Format(DayFormat)
	if _, ok := series[key]; ok {
		series[key]++
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
