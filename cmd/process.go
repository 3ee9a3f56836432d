package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/emr-dev1/resume-matcher/internal/matcher"
	"github.com/emr-dev1/resume-matcher/internal/poller"
	"github.com/emr-dev1/resume-matcher/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Start matching for a project and wait for completion",
	Run: func(_ *cobra.Command, _ []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		logger := newLogger()
		client := newClient(ctx, logger)
		id := projectID(logger)

		projects := store.NewProjects(client, logger)
		results := store.NewResults(logger)

		jobID, err := client.StartProcessing(id)
		if err != nil {
			logger.Fatal("starting processing", zap.Error(err))
		}

		logger.Info("processing started", zap.Int("project_id", id), zap.Int("job_id", jobID))
		projects.SetStatus(id, matcher.JobStatusProcessing)

		coordinator := poller.New(client, logger)
		handle, err := coordinator.Start(ctx, jobID, func(_ *matcher.Job) error {
			// The completed job changed positions, resumes and matches
			// server-side; drop the cached collections and pull the
			// fresh match set.
			projects.Invalidate(id)

			matches, err := client.GetMatches(id, nil)
			if err != nil {
				return err
			}

			results.SetMatches(matches.Items)
			logger.Info("reloaded matches", zap.Int("count", matches.Len()))
			return nil
		})
		if err != nil {
			logger.Fatal("starting the polling coordinator", zap.Error(err))
		}

		<-handle.Done()

		switch coordinator.State() {
		case poller.StateCompleted:
			logger.Info("matching finished", zap.Int("matches", results.SourceLen()))
		case poller.StateFailed:
			job := coordinator.Job()
			logger.Fatal("matching failed", zap.String("error_message", job.ErrorMessage))
		default:
			logger.Info("exiting", zap.String("reason", "polling cancelled"))
		}
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}
