package generation

import (
	"fmt"
	"strings"
)

const (
	MinQuestionCount = 3
	MaxQuestionCount = 25
	MinGradeLevel    = 6
	MaxGradeLevel    = 12
	DefaultGrade     = 10
)

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// Request describes one quiz to generate. Build it with NewRequest and
// treat it as immutable afterwards.
type Request struct {
	Topic          string
	Difficulty     string
	QuestionCount  int
	AdditionalInfo string
	GradeLevel     int
	IsPublic       bool
}

// NewRequest validates topic and difficulty and clamps the numeric
// fields into their supported ranges.
func NewRequest(topic, difficulty string, questionCount, gradeLevel int, additionalInfo string, isPublic bool) (Request, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Request{}, fmt.Errorf("topic must not be empty")
	}
	if !validDifficulties[difficulty] {
		return Request{}, fmt.Errorf("difficulty must be one of easy, medium, hard; got %q", difficulty)
	}

	return Request{
		Topic:          topic,
		Difficulty:     difficulty,
		QuestionCount:  clamp(questionCount, MinQuestionCount, MaxQuestionCount),
		AdditionalInfo: strings.TrimSpace(additionalInfo),
		GradeLevel:     clampGrade(gradeLevel),
		IsPublic:       isPublic,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampGrade(g int) int {
	if g == 0 {
		return DefaultGrade
	}
	return clamp(g, MinGradeLevel, MaxGradeLevel)
}
