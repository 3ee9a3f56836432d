package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/emr-dev1/resume-matcher/internal/matcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload position sheets and resumes to a project",
}

var uploadPositionsCmd = &cobra.Command{
	Use:   "positions <file>",
	Short: "Upload a positions sheet and preview its columns",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		file, err := os.Open(args[0])
		if err != nil {
			logger.Fatal("opening positions file", zap.Error(err))
		}
		defer file.Close()

		preview, err := client.UploadPositions(id, filepath.Base(args[0]), file)
		if err != nil {
			logger.Fatal("uploading positions", zap.Error(err))
		}

		printJSON(preview)
		logger.Info("uploaded positions sheet",
			zap.Strings("columns", preview.Columns),
			zap.Int("row_count", preview.RowCount),
		)
	},
}

var uploadConfirmCmd = &cobra.Command{
	Use:   "confirm <file>",
	Short: "Confirm the positions sheet with chosen embedding and output columns",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		embedding, err := cmd.Flags().GetStringSlice("embedding-columns")
		if err != nil || len(embedding) == 0 {
			logger.Fatal("at least one embedding column is required",
				zap.String("hint", "pass --embedding-columns col1,col2"),
			)
		}

		// Output columns default to all columns server-side when empty.
		output, _ := cmd.Flags().GetStringSlice("output-columns")

		file, err := os.Open(args[0])
		if err != nil {
			logger.Fatal("opening positions file", zap.Error(err))
		}
		defer file.Close()

		result, err := client.ConfirmPositions(id, filepath.Base(args[0]), file, embedding, output)
		if err != nil {
			logger.Fatal("confirming positions", zap.Error(err))
		}

		logger.Info("confirmed positions",
			zap.String("message", result.Message),
			zap.Int("count", result.Count),
		)
	},
}

var uploadResumesCmd = &cobra.Command{
	Use:   "resumes <files...>",
	Short: "Upload one or more resume documents",
	Args:  cobra.MinimumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		parts := make([]matcher.FilePart, 0, len(args))
		opened := make([]*os.File, 0, len(args))
		defer func() {
			for _, f := range opened {
				f.Close()
			}
		}()

		for _, path := range args {
			file, err := os.Open(path)
			if err != nil {
				logger.Fatal("opening resume file", zap.String("path", path), zap.Error(err))
			}
			opened = append(opened, file)
			parts = append(parts, matcher.FilePart{Filename: filepath.Base(path), Reader: file})
		}

		result, err := client.UploadResumes(id, parts)
		if err != nil {
			logger.Fatal("uploading resumes", zap.Error(err))
		}

		for _, status := range result.Results {
			logger.Info("resume upload result",
				zap.String("filename", status.Filename),
				zap.String("status", status.Status),
				zap.Int("text_length", status.TextLength),
			)
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.AddCommand(uploadPositionsCmd)
	uploadCmd.AddCommand(uploadConfirmCmd)
	uploadCmd.AddCommand(uploadResumesCmd)

	uploadConfirmCmd.Flags().StringSlice("embedding-columns", nil, "columns used for embedding generation")
	uploadConfirmCmd.Flags().StringSlice("output-columns", nil, "columns included in match output (default all)")
}
