package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/emr-dev1/resume-matcher/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage matching projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		projects := store.NewProjects(newClient(context.Background(), logger), logger)

		if err := projects.Load(); err != nil {
			logger.Fatal("loading projects", zap.Error(err))
		}

		printJSON(projects.All())
		logger.Info("listed projects", zap.Int("count", projects.Len()))
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		projects := store.NewProjects(newClient(context.Background(), logger), logger)

		project, err := projects.Create(args[0])
		if err != nil {
			logger.Fatal("creating project", zap.Error(err))
		}

		logger.Info("created project",
			zap.Int("id", project.ID),
			zap.String("name", project.Name),
			zap.String("status", project.Status),
		)
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project and all its data",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("invalid project id", zap.String("argument", args[0]))
		}

		if cmd.Flag("yes").Value.String() != "true" {
			prompt := promptui.Select{
				Label: fmt.Sprintf("Delete project %d and all its positions, resumes and matches?", id),
				Items: []string{PromptNo, PromptYes},
			}

			_, answer, err := prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
			if answer != PromptYes {
				logger.Info("exiting", zap.String("reason", "deletion not confirmed"))
				return
			}
		}

		projects := store.NewProjects(newClient(context.Background(), logger), logger)
		if err := projects.Remove(id); err != nil {
			logger.Fatal("deleting project", zap.Error(err))
		}

		logger.Info("deleted project", zap.Int("id", id))
	},
}

var projectsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single project",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			logger.Fatal("invalid project id", zap.String("argument", args[0]))
		}

		projects := store.NewProjects(newClient(context.Background(), logger), logger)
		project, err := projects.Get(id)
		if err != nil {
			logger.Fatal("getting project", zap.Error(err))
		}

		printJSON(project)
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	projectsCmd.AddCommand(projectsShowCmd)

	projectsDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}

func printJSON(v any) {
	pretty, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(pretty))
}
