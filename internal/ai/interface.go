package ai

import (
	"context"
)

// LLMProvider defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type LLMProvider interface {
	// GenerateItinerary sends a fully rendered prompt to the model and returns
	// the generated itinerary text verbatim.
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}
