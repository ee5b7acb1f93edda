package generation

import "errors"

// Generation failures are per-request; nothing here is process-fatal.
// Callers surface transport failures directly instead of retrying,
// since generation calls are costly and count against quota.
var (
	// ErrUnconfigured means no Gemini API key is configured.
	ErrUnconfigured = errors.New("generation service is not configured")

	// ErrUnavailable covers transport failures and non-2xx upstream responses.
	ErrUnavailable = errors.New("generation service unavailable")

	// ErrTimeout means the bounded generation deadline fired.
	ErrTimeout = errors.New("generation request timed out")

	// ErrMalformedResponse means the model reply was not a JSON object.
	ErrMalformedResponse = errors.New("malformed generation response")

	// ErrNoQuestions means the model replied with an empty questions list.
	// Surfaced distinctly so callers know regenerating with a different
	// topic may help.
	ErrNoQuestions = errors.New("no questions generated")
)
