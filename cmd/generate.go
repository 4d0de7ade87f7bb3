package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizrush/internal/llm"
	"github.com/abhisek/quizrush/internal/logging"
	"github.com/abhisek/quizrush/internal/topicgen"
	"github.com/abhisek/quizrush/internal/topics"
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Draft a topic file with an LLM",
	Long: `Ask the configured LLM provider for multiple-choice questions and write
them as a topic file. If the output file exists its questions are kept and
new ones are appended without duplicates.

The provider is read from the llm section of the config file or from
QUIZRUSH_LLM_PROVIDER / QUIZRUSH_LLM_API_KEY (ANTHROPIC_API_KEY,
OPENAI_API_KEY, GEMINI_API_KEY and OPENROUTER_API_KEY are detected too).`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("subject", "", "What the questions should be about (defaults to the topic name)")
	generateCmd.Flags().String("title", "", "Title stored in the file")
	generateCmd.Flags().Int("count", 20, "Number of new questions")
	generateCmd.Flags().String("out", "", "Output file, .json or .yaml (defaults to <topics-dir>/<topic>.json)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()
	if env.Config.LogFile == "" {
		env.Log = logging.Console(cmd.ErrOrStderr(), env.Config.LogLevel)
	}

	topic := args[0]
	subject, _ := cmd.Flags().GetString("subject")
	if subject == "" {
		subject = topic
	}
	title, _ := cmd.Flags().GetString("title")
	count, _ := cmd.Flags().GetInt("count")
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filepath.Join(env.Config.TopicsDir, topic+".json")
	}

	req := topicgen.Request{Subject: subject, Title: title, Count: count}
	if data, err := os.ReadFile(out); err == nil {
		prev, err := topics.Decode(out, data)
		if err != nil {
			return err
		}
		req.Existing = prev.Questions
		if req.Title == "" {
			req.Title = prev.Title
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	provider, err := llm.NewProvider(cmd.Context(), env.Config.LLM, env.Log)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Generating %d questions about %q with %s...\n", count, subject, env.Config.LLM.Provider)
	f, genErr := topicgen.New(provider, topicgen.DefaultConfig(), env.Log).Generate(cmd.Context(), req)
	if genErr != nil && !errors.Is(genErr, topicgen.ErrShortfall) {
		return genErr
	}

	data, err := topics.Encode(out, f)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d questions to %s\n", len(f.Questions), out)
	if genErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", genErr)
	}
	return nil
}
