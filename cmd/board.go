// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/watarik/ghdash/internal/config"
	"github.com/watarik/ghdash/internal/domain"
	"github.com/watarik/ghdash/internal/gateway"
	"github.com/watarik/ghdash/internal/usecase"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Aggregates the configured repositories and outputs the dashboard as JSON",
	Long: `Fetches issues and pull requests for every configured repository,
computes per-project and global statistics, the contributor leaderboard and
the daily activity heatmap, and outputs the result in JSON format.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}

		threshold, err := cfg.Threshold()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			fmt.Fprintln(os.Stderr, "Error: GITHUB_TOKEN environment variable is not set.")
			os.Exit(1)
		}

		// The heatmap window defaults to threshold date through today.
		const inputDateLayout = "2006/01/02"
		heatmapStart := threshold
		heatmapEnd := time.Now()

		if fromStr, _ := cmd.Flags().GetString("from"); fromStr != "" {
			heatmapStart, err = time.Parse(inputDateLayout, fromStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid --from date format. Please use YYYY/MM/DD. Error: %v\n", err)
				os.Exit(1)
			}
		}
		if toStr, _ := cmd.Flags().GetString("to"); toStr != "" {
			heatmapEnd, err = time.Parse(inputDateLayout, toStr)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid --to date format. Please use YYYY/MM/DD. Error: %v\n", err)
				os.Exit(1)
			}
		}

		filters := filtersFromFlags(cmd)
		if err := filters.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, cfg.Settings.PerPage, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		builder := usecase.NewBuilder(githubGateway, logger)

		sources := make([]usecase.ProjectSource, 0, len(cfg.Projects))
		for _, project := range cfg.Projects {
			sources = append(sources, usecase.ProjectSource{
				Owner: project.Owner,
				Repo:  project.Repo,
				Name:  project.Name,
				Order: project.Order,
			})
		}

		board, err := builder.Build(ctx, sources, threshold, filters, heatmapStart, heatmapEnd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to build dashboard: %v\n", err)
			os.Exit(1)
		}

		// Marshal the result into a pretty-printed JSON string.
		jsonData, err := json.MarshalIndent(board, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal dashboard to JSON: %v\n", err)
			os.Exit(1)
		}

		// Print the final JSON to standard output.
		fmt.Println(string(jsonData))
	},
}

// filtersFromFlags merges the flag values over the defaults.
func filtersFromFlags(cmd *cobra.Command) domain.Filters {
	filters := domain.DefaultFilters()
	filters.Status, _ = cmd.Flags().GetString("status")
	filters.Assignment, _ = cmd.Flags().GetString("assignment")
	filters.Comments, _ = cmd.Flags().GetString("comments")
	filters.Points, _ = cmd.Flags().GetString("points")
	filters.SortBy, _ = cmd.Flags().GetString("sort-by")
	filters.SortOrder, _ = cmd.Flags().GetString("sort-order")
	filters.ContribSort, _ = cmd.Flags().GetString("contrib-sort")
	filters.PRStatus, _ = cmd.Flags().GetString("pr-status")
	return filters
}

func init() {
	rootCmd.AddCommand(boardCmd)

	defaults := domain.DefaultFilters()
	boardCmd.Flags().StringP("config", "c", "", "Path to the configuration file (default: $CONFIG_PATH or config.yaml)")
	boardCmd.Flags().String("from", "", "Start date of the heatmap window (YYYY/MM/DD, default: threshold date)")
	boardCmd.Flags().String("to", "", "End date of the heatmap window (YYYY/MM/DD, default: today)")
	boardCmd.Flags().String("status", defaults.Status, "Issue status filter (all|open|closed)")
	boardCmd.Flags().String("assignment", defaults.Assignment, "Assignment filter (all|assigned|unassigned)")
	boardCmd.Flags().String("comments", defaults.Comments, "Comments filter (all|has-comments|no-comments)")
	boardCmd.Flags().String("points", defaults.Points, "Points filter (all|has-points)")
	boardCmd.Flags().String("sort-by", defaults.SortBy, "Project sort key (order|points|issues|closed|name)")
	boardCmd.Flags().String("sort-order", defaults.SortOrder, "Project sort direction (asc|desc)")
	boardCmd.Flags().String("contrib-sort", defaults.ContribSort, "Leaderboard sort key (points|closed|assigned)")
	boardCmd.Flags().String("pr-status", defaults.PRStatus, "Pull request status filter (all|open|closed)")
}
