package cmd

import (
	"context"
	"strconv"

	"github.com/emr-dev1/resume-matcher/internal/store"
	"github.com/emr-dev1/resume-matcher/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const extractedTextLogLimit = 500

var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "Inspect a project's uploaded resumes",
}

var resumesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the project's resumes",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		projects := store.NewProjects(newClient(context.Background(), logger), logger)
		id := projectID(logger)

		resumes, err := projects.LoadResumes(id)
		if err != nil {
			logger.Fatal("loading resumes", zap.Error(err))
		}

		printJSON(resumes.Items)
		logger.Info("listed resumes", zap.Int("count", resumes.Len()))
	},
}

var resumesShowCmd = &cobra.Command{
	Use:   "show <resume-id>",
	Short: "Show a resume including its extracted text",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		resumeID, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("invalid resume id", zap.String("argument", args[0]))
		}

		resume, err := client.GetResumeDetails(id, resumeID)
		if err != nil {
			logger.Fatal("loading resume details", zap.Error(err))
		}

		printJSON(resume)
		logger.Info("resume",
			zap.String("filename", resume.Filename),
			zap.String("status", resume.Status),
			zap.Int("char_count", resume.CharCount),
			zap.String("extracted_text", utils.TruncateForLog(resume.ExtractedText, extractedTextLogLimit)),
		)
	},
}

var resumesReparseCmd = &cobra.Command{
	Use:   "reparse <resume-id>",
	Short: "Re-run text extraction for a resume with the current parsing config",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		resumeID, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("invalid resume id", zap.String("argument", args[0]))
		}

		if err := client.ReparseResume(id, resumeID); err != nil {
			logger.Fatal("reparsing resume", zap.Error(err))
		}

		logger.Info("reparse requested", zap.Int("resume_id", resumeID))
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "List a project's positions",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		projects := store.NewProjects(newClient(context.Background(), logger), logger)
		id := projectID(logger)

		positions, err := projects.LoadPositions(id)
		if err != nil {
			logger.Fatal("loading positions", zap.Error(err))
		}

		printJSON(positions.Items)
		logger.Info("listed positions", zap.Int("count", positions.Len()))
	},
}

func init() {
	rootCmd.AddCommand(resumesCmd)
	rootCmd.AddCommand(positionsCmd)
	resumesCmd.AddCommand(resumesListCmd)
	resumesCmd.AddCommand(resumesShowCmd)
	resumesCmd.AddCommand(resumesReparseCmd)
}
