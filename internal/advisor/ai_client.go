package advisor

import "context"

// AIClient defines the interface for AI-backed advice generation.
// This abstraction allows the advisor to be tested independently of external
// API calls and provides flexibility in choosing AI providers.
type AIClient interface {
	// Advise takes a prompt describing the user's finances and returns a
	// natural-language advice text, or an error if generation fails.
	// Implementations will interact with an external AI service
	// (e.g., Google Gemini).
	Advise(ctx context.Context, prompt string) (string, error)
}
