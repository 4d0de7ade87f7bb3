package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizrush/internal/app"
	"github.com/abhisek/quizrush/internal/config"
	"github.com/abhisek/quizrush/internal/logging"
	"github.com/abhisek/quizrush/internal/topics"
)

var rootCmd = &cobra.Command{
	Use:   "quizrush",
	Short: "Timed multiple-choice quiz game for the terminal",
	Long: `QuizRush: pick a topic, answer before the countdown runs out, and
see how far you get. Every ten correct answers the clock gets faster;
five misses and the game is over.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		return app.Run(app.Options{
			Loader:  env.Registry,
			Entries: env.Config.Menu,
			Logger:  env.Log,
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to config file (overrides QUIZRUSH_CONFIG)")
	flags.String("topics-dir", "", "Directory of extra topic files (overrides QUIZRUSH_TOPICS_DIR)")
	flags.String("log-file", "", "Write logs to this file (overrides QUIZRUSH_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

// environment is what every command needs: resolved config, a logger and
// the topic registry.
type environment struct {
	Config   config.Config
	Log      zerolog.Logger
	Registry *topics.Registry

	closer io.Closer
}

func (e *environment) Close() error {
	return e.closer.Close()
}

// setup resolves config (flags win over file and env), opens the log file
// and builds the registry.
func setup(cmd *cobra.Command) (*environment, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("topics-dir"); v != "" {
		cfg.TopicsDir = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	reg, err := topics.Default(cfg.TopicsDir, log)
	if err != nil {
		closer.Close()
		return nil, err
	}

	log.Debug().
		Str("topics_dir", cfg.TopicsDir).
		Int("menu_entries", len(cfg.Menu)).
		Msg("configuration resolved")

	return &environment{Config: cfg, Log: log, Registry: reg, closer: closer}, nil
}
