package quiz

import (
	"math/rand/v2"
	"time"
)

// Player picks an answer for the question on screen and how long it takes
// to do so. An empty option lets the question time out.
type Player func(st SessionState) (option string, delay time.Duration)

// Step records one question of a simulated session.
type Step struct {
	Question string
	Answer   string
	Correct  bool
	TimedOut bool
	Level    int
	Budget   time.Duration
}

// SimulationCap bounds a simulated session. The pool cycles and the budget
// has a floor, so a player who never misses would otherwise play forever.
const SimulationCap = 10_000

// Simulate plays a headless session on a virtual clock until game over or
// until maxQuestions have been asked. Zero, a negative value or anything
// above SimulationCap means SimulationCap. The returned Result is taken
// before the engine is torn down.
func Simulate(cfg SessionConfig, questions []Question, player Player, maxQuestions int, opts ...Option) (Result, []Step, error) {
	if maxQuestions <= 0 || maxQuestions > SimulationCap {
		maxQuestions = SimulationCap
	}
	sched := NewManualScheduler(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	opts = append(opts, WithClock(sched.Now))
	e, err := NewEngine(cfg, questions, sched, opts...)
	if err != nil {
		return Result{}, nil, err
	}
	defer e.Exit()

	e.Start()
	var steps []Step
	for len(steps) < maxQuestions {
		st := e.State()
		if st.Phase != PhaseAwaitingAnswer {
			break
		}
		q, _ := st.Current()
		step := Step{Question: q.Text, Budget: st.AnswerBudget}

		option, delay := player(st)
		if option != "" && delay < st.AnswerBudget {
			sched.Advance(delay)
			step.Answer = option
			step.Correct = e.Answer(option)
		} else {
			sched.Advance(st.AnswerBudget)
		}
		after := e.State()
		step.TimedOut = after.TimedOut
		step.Level = after.Level
		steps = append(steps, step)

		if after.Phase == PhaseGameOver {
			break
		}
		sched.RunNext()
	}
	return e.Summary(), steps, nil
}

// RandomPlayer answers correctly with probability accuracy, otherwise
// picks a wrong option. Every answer takes half the budget.
func RandomPlayer(r *rand.Rand, accuracy float64) Player {
	return func(st SessionState) (string, time.Duration) {
		q, ok := st.Current()
		if !ok {
			return "", 0
		}
		delay := st.AnswerBudget / 2
		if r.Float64() < accuracy {
			return q.Correct(), delay
		}
		wrong := q.Options[1+r.IntN(len(q.Options)-1)]
		return wrong, delay
	}
}
