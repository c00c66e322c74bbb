package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(DayFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(value string) *time.Time {
	t := day(value)
	return &t
}

func TestNewDailyCounts_DenseWindow(t *testing.T) {
	counts := NewDailyCounts(day("2026-02-26"), day("2026-03-02"))

	expectedKeys := []string{"2026-02-26", "2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}

	for _, series := range []map[string]int{counts.Assigned, counts.Closed, counts.MergedPRs, counts.OpenPRs} {
		require.Len(t, series, len(expectedKeys))
		for _, key := range expectedKeys {
			value, ok := series[key]
			assert.True(t, ok, "missing key %s", key)
			assert.Equal(t, 0, value)
		}
	}
}

func TestNewDailyCounts_InvertedRange(t *testing.T) {
	counts := NewDailyCounts(day("2026-03-02"), day("2026-02-26"))
	assert.Empty(t, counts.Assigned)
	assert.Empty(t, counts.Closed)
	assert.Empty(t, counts.MergedPRs)
	assert.Empty(t, counts.OpenPRs)
}

func TestDailyCounts_CountIssue(t *testing.T) {
	counts := NewDailyCounts(day("2026-02-01"), day("2026-02-03"))

	counts.CountIssue(Issue{State: StateOpen, CreatedAt: day("2026-02-01")})
	counts.CountIssue(Issue{State: StateClosed, CreatedAt: day("2026-02-01"), ClosedAt: dayPtr("2026-02-03")})

	// Out-of-range timestamps are silently excluded and never create keys.
	counts.CountIssue(Issue{State: StateClosed, CreatedAt: day("2026-01-15"), ClosedAt: dayPtr("2026-02-10")})

	assert.Equal(t, 2, counts.Assigned["2026-02-01"])
	assert.Equal(t, 1, counts.Closed["2026-02-03"])
	assert.Len(t, counts.Assigned, 3)
	assert.Len(t, counts.Closed, 3)
}

func TestDailyCounts_CountPullRequest(t *testing.T) {
	counts := NewDailyCounts(day("2026-02-01"), day("2026-02-03"))

	// Merged PRs bucket by merge date, open PRs by creation date.
	counts.CountPullRequest(PullRequest{
		State:     StateClosed,
		CreatedAt: day("2026-01-20"),
		ClosedAt:  dayPtr("2026-02-02"),
		MergedAt:  dayPtr("2026-02-02"),
	})
	counts.CountPullRequest(PullRequest{State: StateOpen, CreatedAt: day("2026-02-01")})

	// Closed without a merge timestamp means abandoned: not charted.
	counts.CountPullRequest(PullRequest{
		State:     StateClosed,
		CreatedAt: day("2026-02-01"),
		ClosedAt:  dayPtr("2026-02-02"),
	})

	assert.Equal(t, 1, counts.MergedPRs["2026-02-02"])
	assert.Equal(t, 1, counts.OpenPRs["2026-02-01"])
	assert.Equal(t, 0, counts.OpenPRs["2026-02-02"])
}
