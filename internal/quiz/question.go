package quiz

// MinOptions is the minimum number of answer options a playable question carries.
const MinOptions = 4

// Question is a single multiple-choice question.
//
// Options[0] is always the correct answer. The order shown to the player is
// a fresh shuffle computed by the engine every time the question comes up.
type Question struct {
	// Text is the prompt shown to the player.
	Text string `json:"question" yaml:"question"`

	// Options holds the answer choices, correct answer first.
	Options []string `json:"options" yaml:"options"`

	// ImageURL optionally points at an illustration for the question.
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Correct returns the correct answer text, or "" for a question without options.
func (q Question) Correct() string {
	if len(q.Options) == 0 {
		return ""
	}
	return q.Options[0]
}

// Playable reports whether the question has enough options to be asked.
func (q Question) Playable() bool {
	return len(q.Options) >= MinOptions
}

// FilterPlayable returns the playable questions in their original order.
func FilterPlayable(questions []Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Playable() {
			out = append(out, q)
		}
	}
	return out
}
