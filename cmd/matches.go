package cmd

import (
	"context"

	"github.com/emr-dev1/resume-matcher/internal/filtering"
	"github.com/emr-dev1/resume-matcher/internal/logger"
	"github.com/emr-dev1/resume-matcher/internal/matcher"
	"github.com/emr-dev1/resume-matcher/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List a project's matches with client-side filtering",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		matches, err := client.GetMatches(id, nil)
		if err != nil {
			logger.Fatal("loading matches", zap.Error(err))
		}

		results := store.NewResults(logger)
		results.SetMatches(matches.Items)
		results.SetFilters(specFromFlags(cmd, logger))

		sortField, _ := cmd.Flags().GetString("sort")
		sortOrder, _ := cmd.Flags().GetString("order")
		results.SetSort(sortField, sortOrder)

		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")

		printJSON(results.Page(page, pageSize))
		logger.Info("matches",
			zap.Int("total", results.SourceLen()),
			zap.Int("after_filters", results.Len()),
			zap.Int("page", page),
			zap.Int("pages", results.TotalPages(pageSize)),
		)
	},
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count a project's matches server-side",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		total, err := client.GetMatchCount(id, matchOptionsFromFlags(cmd))
		if err != nil {
			logger.Fatal("counting matches", zap.Error(err))
		}

		logger.Info("match count", zap.Int("total_matches", total))
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show match statistics for a project",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		stats, err := client.GetMatchStatistics(id)
		if err != nil {
			logger.Fatal("loading match statistics", zap.Error(err))
		}

		printJSON(stats)
	},
}

func init() {
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(statsCmd)

	addFilterFlags(matchesCmd)
	matchesCmd.Flags().String("sort", "rank", "sort field: rank, similarity_score, resume_filename or a position column")
	matchesCmd.Flags().String("order", store.SortAsc, "sort order: asc or desc")
	matchesCmd.Flags().Int("page", 1, "page number, 1-based")
	matchesCmd.Flags().Int("page-size", store.DefaultPageSize, "matches per page")

	countCmd.Flags().Float64("min-score", -1, "minimum similarity score (0..1)")
	countCmd.Flags().Int("position", 0, "restrict to a single position id")
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("min-score", -1, "minimum similarity score (0..1)")
	cmd.Flags().Int("position", 0, "restrict to a single position id")
	cmd.Flags().Int("top-n", 0, "keep at most N matches per position")
	cmd.Flags().String("search", "", "free-text search across position columns and filenames")
	cmd.Flags().String("field", "", "position column for the field filter")
	cmd.Flags().String("operator", "", "field filter operator: contains, equals, starts_with")
	cmd.Flags().String("value", "", "field filter value")
}

func matchOptionsFromFlags(cmd *cobra.Command) *matcher.MatchOptions {
	opts := &matcher.MatchOptions{}

	if minScore, _ := cmd.Flags().GetFloat64("min-score"); minScore >= 0 {
		opts.MinScore = minScore
		opts.HasMinScore = true
	}
	opts.PositionID, _ = cmd.Flags().GetInt("position")

	return opts
}

func specFromFlags(cmd *cobra.Command, l *zap.Logger) filtering.Spec {
	spec := filtering.Spec{}

	if minScore, _ := cmd.Flags().GetFloat64("min-score"); minScore >= 0 {
		spec.MinScore = filtering.Float64(minScore)
	}
	if position, _ := cmd.Flags().GetInt("position"); position > 0 {
		spec.PositionID = filtering.Int(position)
	}
	if topN, _ := cmd.Flags().GetInt("top-n"); topN > 0 {
		spec.TopN = filtering.Int(topN)
	}
	spec.Search, _ = cmd.Flags().GetString("search")
	spec.Field, _ = cmd.Flags().GetString("field")
	spec.Value, _ = cmd.Flags().GetString("value")

	operator, _ := cmd.Flags().GetString("operator")
	spec.Operator = filtering.Operator(operator)
	if operator != "" && !spec.Operator.Valid() {
		l.Warn("unknown field operator, the field filter is disabled",
			zap.String("operator", operator),
		)
	}

	if fields := logger.StringFields(
		logger.StringField{Key: "search", Value: spec.Search},
		logger.StringField{Key: "field", Value: spec.Field},
		logger.StringField{Key: "operator", Value: string(spec.Operator)},
		logger.StringField{Key: "value", Value: spec.Value},
	); len(fields) > 0 {
		l.Debug("text filter criteria", fields...)
	}

	return spec
}
