package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/watarik/ghdash/internal/domain"
	"github.com/watarik/ghdash/internal/gateway"
)

// ProjectSource identifies one repository to include on the board.
type ProjectSource struct {
	Owner string
	Repo  string
	Name  string
	Order int
}

// Board is the fully aggregated dashboard: the sorted, visible project
// list plus the global summary, contributor leaderboard and daily activity
// series.
type Board struct {
	GeneratedAt  time.Time            `json:"generated_at"`
	Projects     []domain.Project     `json:"projects"`
	Global       domain.GlobalStats   `json:"global"`
	Contributors []domain.Contributor `json:"contributors"`
	Daily        domain.DailyCounts   `json:"daily"`
	Filters      domain.Filters       `json:"filters"`
}

// Builder is the use case for assembling the dashboard. It orchestrates
// the fetching, normalization and aggregation of all project data.
type Builder struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewBuilder creates a new Builder instance.
func NewBuilder(fetcher gateway.Fetcher, logger *log.Logger) *Builder {
	return &Builder{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Build fetches every configured project concurrently, normalizes the raw
// data against the threshold date, and computes all dashboard views. The
// heatmap covers the inclusive [heatmapStart, heatmapEnd] window. After
// the fetch phase everything is a pure in-memory transform.
func (b *Builder) Build(ctx context.Context, sources []ProjectSource, threshold time.Time, filters domain.Filters, heatmapStart, heatmapEnd time.Time) (*Board, error) {
	b.logger.Println("Usecase: Starting board build...")

	projects := make([]domain.Project, len(sources))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		eg.Go(func() error {
			rawIssues, err := b.fetcher.FetchIssues(egCtx, src.Owner, src.Repo)
			if err != nil {
				return fmt.Errorf("project %s/%s: %w", src.Owner, src.Repo, err)
			}

			rawPRs, err := b.fetcher.FetchPullRequests(egCtx, src.Owner, src.Repo)
			if err != nil {
				return fmt.Errorf("project %s/%s: %w", src.Owner, src.Repo, err)
			}

			// Header metadata is decoration; a failed lookup must not
			// take down the whole board.
			meta, err := b.fetcher.FetchRepoMeta(egCtx, src.Owner, src.Repo)
			if err != nil {
				b.logger.Printf("  repo metadata unavailable for %s/%s: %v", src.Owner, src.Repo, err)
				meta = nil
			}

			project := domain.Project{
				Owner:        src.Owner,
				Repo:         src.Repo,
				Name:         src.Name,
				Order:        src.Order,
				Meta:         meta,
				Issues:       NormalizeIssues(rawIssues, threshold),
				PullRequests: FilterPullRequests(rawPRs, threshold),
			}
			project.Stats = ProjectStats(project.Issues)
			project.Resolution = ResolutionSummary(project.Issues)

			projects[i] = project
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	b.logger.Println("Usecase: All project data fetched.")

	// Global views run over the full normalized set, before any
	// user-selected filtering.
	board := &Board{
		GeneratedAt:  time.Now(),
		Global:       GlobalStats(projects, threshold),
		Contributors: Leaderboard(projects, threshold, filters.ContribSort),
		Daily:        DailyActivity(projects, heatmapStart, heatmapEnd),
		Filters:      filters,
	}

	view := make([]domain.Project, 0, len(projects))
	for _, project := range projects {
		view = append(view, ApplyFilters(project, filters))
	}
	board.Projects = VisibleProjects(SortProjects(view, filters))

	b.logger.Println("Usecase: Board build complete.")
	return board, nil
}
