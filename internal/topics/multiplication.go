package topics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abhisek/quizrush/internal/quiz"
)

// MultiplicationTables returns a Source with every product of the 1-10
// tables. Distractors are near misses: a neighbouring row or column first,
// then small offsets from the product.
func MultiplicationTables() Source {
	return SourceFunc(func(context.Context) ([]quiz.Question, error) {
		qs := make([]quiz.Question, 0, 100)
		for a := 1; a <= 10; a++ {
			for b := 1; b <= 10; b++ {
				qs = append(qs, multiplicationQuestion(a, b))
			}
		}
		return qs, nil
	})
}

func multiplicationQuestion(a, b int) quiz.Question {
	p := a * b
	candidates := []int{(a + 1) * b, a * (b + 1), (a - 1) * b, a * (b - 1), p + 1, p - 1, p + 10, p + 2}

	options := []string{strconv.Itoa(p)}
	seen := map[int]bool{p: true}
	for _, c := range candidates {
		if len(options) == quiz.MinOptions {
			break
		}
		if c <= 0 || seen[c] {
			continue
		}
		seen[c] = true
		options = append(options, strconv.Itoa(c))
	}
	return quiz.Question{
		Text:    fmt.Sprintf("%d × %d = ?", a, b),
		Options: options,
	}
}
