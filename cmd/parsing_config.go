package cmd

import (
	"context"

	"github.com/emr-dev1/resume-matcher/internal/matcher"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var parsingConfigCmd = &cobra.Command{
	Use:   "parsing-config",
	Short: "Manage how resume text is extracted for a project",
}

var parsingConfigGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the project's parsing configuration",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)

		config, err := client.GetParsingConfig(projectID(logger))
		if err != nil {
			logger.Fatal("loading parsing config", zap.Error(err))
		}

		printJSON(config)
	},
}

var parsingConfigSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the project's parsing configuration",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		method, _ := cmd.Flags().GetString("method")
		if method != matcher.ParsingMethodFullText && method != matcher.ParsingMethodSectionBased {
			logger.Fatal("unknown parsing method",
				zap.String("method", method),
				zap.Strings("supported", []string{matcher.ParsingMethodFullText, matcher.ParsingMethodSectionBased}),
			)
		}

		useDefaults, _ := cmd.Flags().GetBool("default-headers")
		headers, _ := cmd.Flags().GetStringSlice("section-headers")
		filters, _ := cmd.Flags().GetStringSlice("filter-strings")

		config := &matcher.ParsingConfig{
			ParsingMethod:     method,
			UseDefaultHeaders: useDefaults,
			SectionHeaders:    headers,
			FilterStrings:     filters,
		}

		// PUT replaces an existing config; fall back to POST when none
		// exists yet.
		updated, err := client.UpdateParsingConfig(id, config)
		if err != nil {
			updated, err = client.CreateParsingConfig(id, config)
		}
		if err != nil {
			logger.Fatal("saving parsing config", zap.Error(err))
		}

		printJSON(updated)
		logger.Info("saved parsing config", zap.String("method", updated.ParsingMethod))
	},
}

var parsingConfigDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the project's parsing configuration",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)
		id := projectID(logger)

		if err := client.DeleteParsingConfig(id); err != nil {
			logger.Fatal("deleting parsing config", zap.Error(err))
		}

		logger.Info("deleted parsing config", zap.Int("project_id", id))
	},
}

var parsingConfigSectionsCmd = &cobra.Command{
	Use:   "default-sections",
	Short: "List the backend's built-in section headers",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		client := newClient(context.Background(), logger)

		sections, err := client.GetDefaultSections()
		if err != nil {
			logger.Fatal("loading default sections", zap.Error(err))
		}

		printJSON(sections)
	},
}

func init() {
	rootCmd.AddCommand(parsingConfigCmd)
	parsingConfigCmd.AddCommand(parsingConfigGetCmd)
	parsingConfigCmd.AddCommand(parsingConfigSetCmd)
	parsingConfigCmd.AddCommand(parsingConfigDeleteCmd)
	parsingConfigCmd.AddCommand(parsingConfigSectionsCmd)

	parsingConfigSetCmd.Flags().String("method", matcher.ParsingMethodFullText, "parsing method: full_text or section_based")
	parsingConfigSetCmd.Flags().Bool("default-headers", true, "use the backend's default section headers")
	parsingConfigSetCmd.Flags().StringSlice("section-headers", nil, "custom section headers")
	parsingConfigSetCmd.Flags().StringSlice("filter-strings", nil, "strings removed from extracted text")
}
