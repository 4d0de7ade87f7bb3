package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizrush/internal/app"
	"github.com/abhisek/quizrush/internal/launcher"
	"github.com/abhisek/quizrush/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play <topic>",
	Short: "Start a topic directly, skipping the menu",
	Long: `Start a game for one topic. Budget and title come from the matching menu
entry unless overridden.

With --dry-run no terminal UI is started: a simulated player answers on a
virtual clock and the result is printed. Useful for checking a topic file
and the level curve.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Duration("budget", 0, "Initial answer time per question (e.g. 5s)")
	playCmd.Flags().String("title", "", "Title shown above the questions")
	playCmd.Flags().Bool("dry-run", false, "Simulate a session without the UI")
	playCmd.Flags().Float64("accuracy", 0.8, "Dry run: probability the simulated player is right")
	playCmd.Flags().Uint64("seed", 0, "Dry run: random seed (0 picks one)")
	playCmd.Flags().Int("max", 100, "Dry run: stop after this many questions (0 = until game over, capped at 10000)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	entry, ok := launcher.Find(env.Config.Menu, args[0])
	if !ok {
		entry = launcher.Entry{Topic: args[0]}
	}
	if d, _ := cmd.Flags().GetDuration("budget"); d > 0 {
		entry.Budget = d
	}
	if t, _ := cmd.Flags().GetString("title"); t != "" {
		entry.Title = t
	}

	if dry, _ := cmd.Flags().GetBool("dry-run"); !dry {
		return app.Run(app.Options{
			Loader:  env.Registry,
			Entries: env.Config.Menu,
			Logger:  env.Log,
			Start:   &entry,
		})
	}

	questions, err := env.Registry.Load(cmd.Context(), entry.Topic)
	if err != nil {
		return err
	}

	accuracy, _ := cmd.Flags().GetFloat64("accuracy")
	seed, _ := cmd.Flags().GetUint64("seed")
	limit, _ := cmd.Flags().GetInt("max")
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))

	res, steps, err := quiz.Simulate(entry.SessionConfig(), questions,
		quiz.RandomPlayer(r, accuracy), limit,
		quiz.WithRand(r), quiz.WithLogger(env.Log))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s · seed %d · %d questions loaded\n\n", entry.Label(), seed, len(questions))
	for i, s := range steps {
		mark := "✓"
		switch {
		case s.TimedOut:
			mark = "⏰"
		case !s.Correct:
			mark = "✗"
		}
		fmt.Fprintf(out, "%3d  %s  L%d %-6s  %s\n", i+1, mark, s.Level, s.Budget.Round(100*time.Millisecond), s.Question)
	}
	fmt.Fprintf(out, "\ncorrect %d · incorrect %d · level %d · final budget %s",
		res.Correct, res.Incorrect, res.Level, res.AnswerBudget.Round(100*time.Millisecond))
	if res.GameOver {
		fmt.Fprint(out, " · GAME OVER")
	}
	fmt.Fprintln(out)
	return nil
}
