package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RawQuestion is one question exactly as the model produced it. Every
// field is untrusted: it may be missing, empty, the wrong type, or
// absurdly long. Field-level cleanup happens in the normalizer, not here.
type RawQuestion struct {
	Question      any `json:"question"`
	CorrectAnswer any `json:"correctAnswer"`
	WrongAnswers  any `json:"wrongAnswers"`
	Explanation   any `json:"explanation"`
}

// GeneratedQuiz is the loosely-typed document extracted from the raw
// model reply. Title and Description are untrusted too: the assembler
// coerces them and falls back to synthesized defaults.
type GeneratedQuiz struct {
	Title       any           `json:"title"`
	Description any           `json:"description"`
	Questions   []RawQuestion `json:"questions"`
}

// ParseResponse strips markdown fences, trims whitespace, and parses the
// remainder as a JSON object. It guarantees only that a syntactically
// valid JSON object came back; anything else (invalid JSON, a top-level
// array, a scalar, null) is ErrMalformedResponse.
func ParseResponse(raw string) (*GeneratedQuiz, error) {
	cleaned := stripCodeFences(raw)

	// Reject non-object top levels before the typed decode: a bare
	// array or scalar is valid JSON but not a valid quiz document.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil || probe == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, firstChars(cleaned, 80))
	}

	var doc GeneratedQuiz
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &doc, nil
}

// stripCodeFences removes a leading/trailing ```json / ``` wrapper if
// the model added one despite being told not to.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func firstChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
