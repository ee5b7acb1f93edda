package generation

import (
	"errors"
	"testing"
)

const validQuizJSON = `{
  "title": "Space Quiz",
  "description": "Questions about the solar system",
  "questions": [
    {
      "question": "Which planet is closest to the sun?",
      "correctAnswer": "Mercury",
      "wrongAnswers": ["Venus", "Mars", "Earth"],
      "explanation": "Mercury orbits at about 58 million km."
    }
  ]
}`

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "plain JSON", raw: validQuizJSON},
		{name: "json fence", raw: "```json\n" + validQuizJSON + "\n```"},
		{name: "bare fence", raw: "```\n" + validQuizJSON + "\n```"},
		{name: "surrounding whitespace", raw: "\n\n  " + validQuizJSON + "  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseResponse(tt.raw)
			if err != nil {
				t.Fatalf("ParseResponse: %v", err)
			}
			if got := len(doc.Questions); got != 1 {
				t.Fatalf("got %d questions, want 1", got)
			}
			if title, _ := doc.Title.(string); title != "Space Quiz" {
				t.Errorf("title = %q, want %q", title, "Space Quiz")
			}
			q := doc.Questions[0]
			if ca, _ := q.CorrectAnswer.(string); ca != "Mercury" {
				t.Errorf("correctAnswer = %q, want %q", ca, "Mercury")
			}
		})
	}
}

func TestParseResponseMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not JSON", raw: "I'm sorry, I cannot generate that quiz."},
		{name: "truncated", raw: `{"title": "Half a qu`},
		{name: "top-level array", raw: `[{"question": "q"}]`},
		{name: "scalar", raw: `42`},
		{name: "string", raw: `"a quiz"`},
		{name: "null", raw: `null`},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestParseResponseLooseFieldTypes(t *testing.T) {
	// Field-level type errors are tolerated at parse time; the
	// normalizer degrades them later.
	raw := `{
	  "title": 7,
	  "questions": [
	    {"question": "Q?", "correctAnswer": 42, "wrongAnswers": "not an array"}
	  ]
	}`

	doc, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(doc.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(doc.Questions))
	}
}

func TestParseResponseMissingQuestions(t *testing.T) {
	doc, err := ParseResponse(`{"title": "Empty"}`)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(doc.Questions) != 0 {
		t.Errorf("got %d questions, want 0", len(doc.Questions))
	}
}
