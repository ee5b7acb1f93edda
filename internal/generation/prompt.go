package generation

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the generation prompt for a validated request.
// The prompt is deterministic: identical requests always produce the
// identical string, so any randomness in quiz content comes from the
// model, never from prompt assembly.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a %s difficulty quiz about %q with exactly %d multiple choice questions for a grade %d student.\n\n",
		req.Difficulty, req.Topic, req.QuestionCount, req.GradeLevel)

	if req.AdditionalInfo != "" {
		fmt.Fprintf(&b, "Additional context: %s\n\n", req.AdditionalInfo)
	}

	b.WriteString(`Return ONLY a valid JSON object (no markdown, no code blocks) in this exact format:
{
  "title": "Quiz title",
  "description": "Brief description",
  "questions": [
    {
      "question": "Question text",
      "correctAnswer": "Correct answer",
      "wrongAnswers": ["Wrong 1", "Wrong 2", "Wrong 3"],
      "explanation": "Why this is correct"
    }
  ]
}

`)

	fmt.Fprintf(&b, "Make questions appropriate for %s level. Each question must have exactly 3 wrong answers.", req.Difficulty)

	return b.String()
}
