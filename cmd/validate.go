package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizrush/internal/quiz"
	"github.com/abhisek/quizrush/internal/topics"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check topic files against the topic schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failed := 0
		for _, name := range args {
			data, err := os.ReadFile(name)
			if err != nil {
				fmt.Fprintf(out, "✗ %s: %v\n", name, err)
				failed++
				continue
			}
			f, err := topics.Decode(name, data)
			if err != nil {
				fmt.Fprintf(out, "✗ %v\n", err)
				failed++
				continue
			}

			playable := len(quiz.FilterPlayable(f.Questions))
			switch {
			case playable == 0:
				fmt.Fprintf(out, "✗ %s: no question has %d or more options\n", name, quiz.MinOptions)
				failed++
			case playable < len(f.Questions):
				fmt.Fprintf(out, "! %s: %d questions, %d skipped (fewer than %d options)\n",
					name, len(f.Questions), len(f.Questions)-playable, quiz.MinOptions)
			default:
				fmt.Fprintf(out, "✓ %s: %d questions\n", name, playable)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files invalid", failed, len(args))
		}
		return nil
	},
}
