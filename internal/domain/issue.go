// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// Issue and pull request states as reported by the GitHub API.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Label is a single issue label.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// User is a GitHub account referenced as author or assignee.
type User struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// Issue is a single tracker issue. Optional API fields are pointers;
// absence is never an error. Points and IsPullRequest are derived during
// normalization and never change afterwards.
type Issue struct {
	Number        int        `json:"number"`
	Title         string     `json:"title"`
	State         string     `json:"state"`
	CreatedAt     time.Time  `json:"created_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	Assignee      *User      `json:"assignee,omitempty"`
	Author        *User      `json:"user,omitempty"`
	Labels        []Label    `json:"labels"`
	Comments      int        `json:"comments"`
	HTMLURL       string     `json:"html_url"`
	Points        int        `json:"points"`
	IsPullRequest bool       `json:"is_pull_request"`
}

// ClosedSince reports whether the issue was closed on or after the
// threshold date. Closed issues without a closing timestamp never qualify.
func (i *Issue) ClosedSince(threshold time.Time) bool {
	return i.State == StateClosed && i.ClosedAt != nil && !i.ClosedAt.Before(threshold)
}
