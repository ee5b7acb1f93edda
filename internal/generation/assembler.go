package generation

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/studyboi/quizforge/internal/model"
)

// Assembler combines normalized questions with quiz metadata into one
// persistable unit.
type Assembler struct {
	normalizer *Normalizer
}

func NewAssembler(normalizer *Normalizer) *Assembler {
	return &Assembler{normalizer: normalizer}
}

// Assemble builds the Quiz and its questions from the parsed document.
// An empty questions list is ErrNoQuestions. Extra questions beyond the
// requested count are silently discarded; fewer than requested is
// accepted as partial success, since a short quiz is still usable.
func (a *Assembler) Assemble(doc *GeneratedQuiz, req Request) (*model.Quiz, error) {
	if doc == nil || len(doc.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	rawQuestions := doc.Questions
	if len(rawQuestions) > req.QuestionCount {
		log.Debug().Int("generated", len(rawQuestions)).Int("requested", req.QuestionCount).Msg("Discarding surplus generated questions")
		rawQuestions = rawQuestions[:req.QuestionCount]
	}

	questions := make([]model.QuizQuestion, 0, len(rawQuestions))
	for i, raw := range rawQuestions {
		questions = append(questions, a.normalizer.Normalize(raw, i))
	}

	title := coerceString(doc.Title)
	if title == "" {
		title = fmt.Sprintf("%s Quiz", req.Topic)
	}
	description := coerceString(doc.Description)
	if description == "" {
		description = fmt.Sprintf("AI-generated quiz about %s", req.Topic)
	}

	return &model.Quiz{
		Title:       truncate(title, 200),
		Description: truncate(description, MaxFieldLength),
		Subject:     req.Topic,
		Difficulty:  req.Difficulty,
		IsPublic:    req.IsPublic,
		Questions:   questions,
	}, nil
}
