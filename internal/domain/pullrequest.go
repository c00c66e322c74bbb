package domain

import "time"

// PullRequest is a single pull request. A PR counts as merged only when it
// is closed and carries a merge timestamp; closed without one means it was
// abandoned.
type PullRequest struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	Author    *User      `json:"user,omitempty"`
	HTMLURL   string     `json:"html_url"`
}

// Merged reports whether the pull request was actually merged.
func (p *PullRequest) Merged() bool {
	return p.State == StateClosed && p.MergedAt != nil
}

// ClosedSince reports whether the pull request was closed on or after the
// threshold date.
func (p *PullRequest) ClosedSince(threshold time.Time) bool {
	return p.State == StateClosed && p.ClosedAt != nil && !p.ClosedAt.Before(threshold)
}
