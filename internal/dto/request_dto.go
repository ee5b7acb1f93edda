package dto

// GenerateQuizRequest carries the caller's parameters for AI quiz
// generation. Counts outside 3-25 and grades outside 6-12 are clamped,
// not rejected.
type GenerateQuizRequest struct {
	Topic          string `json:"topic" binding:"required"`
	Difficulty     string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	QuestionCount  int    `json:"question_count" binding:"required"`
	AdditionalInfo string `json:"additional_info"`
	GradeLevel     int    `json:"grade_level"`
	IsPublic       bool   `json:"is_public"`
}

// CreateQuestionRequest hand-authors one question for an existing quiz.
// It terminates in the same 4-option shape as generated questions.
type CreateQuestionRequest struct {
	Question     string   `json:"question" binding:"required"`
	Options      []string `json:"options" binding:"required,len=4,dive,required"`
	CorrectIndex *int     `json:"correct_index" binding:"required,min=0,max=3"`
	Explanation  string   `json:"explanation"`
}

// SelectAnswerRequest records an option choice for the current question.
type SelectAnswerRequest struct {
	OptionIndex *int `json:"option_index" binding:"required,min=0,max=3"`
}

// MoveRequest navigates the session one question forward or back.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required,oneof=next previous"`
}
