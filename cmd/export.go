package cmd

import (
	"context"

	"github.com/emr-dev1/resume-matcher/internal/matcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a project's matches to csv or xlsx",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		filename, err := client.ExportMatchesToFile(id, format, output)
		if err != nil {
			logger.Fatal("exporting matches", zap.Error(err))
		}

		logger.Info("exported matches",
			zap.String("format", format),
			zap.String("filename", filename),
		)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", matcher.ExportFormatCSV, "export format: csv or xlsx")
	exportCmd.Flags().StringP("output", "o", "", "output file (default a temp file)")
}
