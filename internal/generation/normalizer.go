package generation

import (
	"math/rand"
	"strings"

	"github.com/studyboi/quizforge/internal/model"
)

const (
	// OptionCount is the canonical number of options per question.
	OptionCount = 4

	// FillerOption pads the option list when the model supplied fewer
	// than three usable wrong answers.
	FillerOption = "None of the above"

	// MaxFieldLength caps question text and explanations.
	MaxFieldLength = 1000
)

// Shuffler is the injected randomness source for option ordering.
// Production uses math/rand; tests substitute deterministic
// permutations to verify the correct-index invariant exhaustively.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type randShuffler struct{}

func (randShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Normalizer converts untrusted raw questions into the canonical
// 4-option representation. It is total by construction: every malformed
// field degrades to a safe default instead of failing, so one bad model
// question never discards a whole batch.
type Normalizer struct {
	shuffler Shuffler
}

func NewNormalizer(shuffler Shuffler) *Normalizer {
	if shuffler == nil {
		shuffler = randShuffler{}
	}
	return &Normalizer{shuffler: shuffler}
}

// Normalize produces the canonical question for one raw question,
// assigning the given 0-based order.
//
// The option list is built as [correctAnswer, wrongAnswers...], capped
// at 4 entries, padded with FillerOption up to exactly 4, then shuffled
// with a uniform permutation. The correct index is recovered by exact
// string match after the shuffle; when the match fails (empty correct
// answer, or a mutated duplicate) the index falls back to 0. The
// fallback is a known degenerate case kept for compatibility with the
// stored quiz format, not a silent success claim.
func (n *Normalizer) Normalize(raw RawQuestion, order int) model.QuizQuestion {
	correct := coerceString(raw.CorrectAnswer)

	options := make([]string, 0, OptionCount)
	if correct != "" {
		options = append(options, correct)
	}
	for _, wrong := range coerceStringSlice(raw.WrongAnswers) {
		if len(options) >= OptionCount {
			break
		}
		options = append(options, wrong)
	}
	for len(options) < OptionCount {
		options = append(options, FillerOption)
	}

	n.shuffler.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	question := truncate(coerceString(raw.Question), MaxFieldLength)

	var explanation *string
	if e := coerceString(raw.Explanation); e != "" {
		e = truncate(e, MaxFieldLength)
		explanation = &e
	}

	return model.QuizQuestion{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  explanation,
		OrderInQuiz:  order,
	}
}

// coerceString yields the trimmed string value, or "" for any
// non-string input.
func coerceString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// coerceStringSlice yields the trimmed, non-empty string entries of a
// JSON array value; non-array inputs and non-string entries are dropped.
func coerceStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
