package dto

import "time"

type QuestionResponse struct {
	ID           uint     `json:"id"`
	QuizID       uint     `json:"quiz_id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  *string  `json:"explanation,omitempty"`
	OrderInQuiz  int      `json:"order_in_quiz"`
}

type QuizResponse struct {
	ID          uint               `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Subject     string             `json:"subject"`
	Difficulty  string             `json:"difficulty"`
	CreatedBy   string             `json:"created_by"`
	IsPublic    bool               `json:"is_public"`
	Questions   []QuestionResponse `json:"questions,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// QuizSummaryResponse lists quizzes without their questions.
type QuizSummaryResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Subject     string    `json:"subject"`
	Difficulty  string    `json:"difficulty"`
	CreatedBy   string    `json:"created_by"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
}

type ScoreResultResponse struct {
	Score              int    `json:"score"`
	Total              int    `json:"total"`
	Percentage         int    `json:"percentage"`
	PerQuestionCorrect []bool `json:"per_question_correct"`
}

// SessionResponse is the caller-facing snapshot of an open session.
type SessionResponse struct {
	QuizID       uint                 `json:"quiz_id"`
	Phase        string               `json:"phase"`
	CurrentIndex int                  `json:"current_index"`
	Selections   []int                `json:"selections"`
	Answered     int                  `json:"answered"`
	Total        int                  `json:"total"`
	Result       *ScoreResultResponse `json:"result,omitempty"`
}

type AttemptResponse struct {
	ID             uint      `json:"id"`
	QuizID         uint      `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title,omitempty"`
	QuizSubject    string    `json:"quiz_subject,omitempty"`
	QuizDifficulty string    `json:"quiz_difficulty,omitempty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
