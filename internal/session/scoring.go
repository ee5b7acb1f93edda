package session

import (
	"math"

	"github.com/studyboi/quizforge/internal/model"
)

// Unanswered marks a selection slot the user has not filled in yet.
const Unanswered = -1

// ScoreResult is derived, immutable, and recomputable at will: it is a
// pure function of the questions and selections that produced it.
type ScoreResult struct {
	Score              int    `json:"score"`
	Total              int    `json:"total"`
	Percentage         int    `json:"percentage"`
	PerQuestionCorrect []bool `json:"per_question_correct"`
}

// Score grades selections against questions in order. Both slices must
// have equal length; a selection is correct when it equals the
// question's correct index. An empty quiz scores percentage 0 instead
// of dividing by zero.
func Score(questions []model.QuizQuestion, selections []int) ScoreResult {
	total := len(questions)
	perQuestion := make([]bool, total)

	score := 0
	for i, q := range questions {
		if i < len(selections) && selections[i] == q.CorrectIndex {
			perQuestion[i] = true
			score++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(100 * float64(score) / float64(total)))
	}

	return ScoreResult{
		Score:              score,
		Total:              total,
		Percentage:         percentage,
		PerQuestionCorrect: perQuestion,
	}
}
