package cmd

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/emr-dev1/resume-matcher/internal/logger"
	"github.com/emr-dev1/resume-matcher/internal/matcher"
	"github.com/emr-dev1/resume-matcher/internal/secrets"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "resume-matcher"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-matcher is a cli client for the resume-to-position matching service",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-url", "RM_API_URL"); err != nil {
		log.Fatalf("binding RM_API_URL environment variable: %v", err)
	}
	if err := viper.BindEnv("token-file", "RM_TOKEN_FILE"); err != nil {
		log.Fatalf("binding RM_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the matching backend (default http://localhost:8000)")
	rootCmd.PersistentFlags().IntP("project", "p", 0, "project id for project-scoped commands")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("project", rootCmd.PersistentFlags().Lookup("project"))
}

func initConfig() {
	// A .env next to the binary is a convenience for local setups.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional for the client; flags and env cover
	// everything. A file that exists but does not parse is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

// newLogger builds the zap logger from the persistent flags.
func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// newClient builds the API client, resolving the optional bearer token.
func newClient(ctx context.Context, l *zap.Logger) *matcher.Client {
	client := matcher.New(ctx, l, viper.GetString("api-url"))

	tokenFile := strings.TrimSpace(viper.GetString("token-file"))
	if tokenFile != "" {
		token, err := secrets.Load(secrets.Source{
			Name: "api token",
			File: tokenFile,
		})
		if err != nil {
			l.Fatal("loading api token", zap.Error(err))
		}
		client.SetToken(token)
	}

	return client
}

// projectID resolves the --project flag, fatal when missing.
func projectID(l *zap.Logger) int {
	id := viper.GetInt("project")
	if id <= 0 {
		l.Fatal("a project id is required", zap.String("hint", "pass --project <id>"))
	}
	return id
}
