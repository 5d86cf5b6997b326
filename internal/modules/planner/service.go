// README: Itinerary pipeline; parse -> search -> summarize -> prompt -> generate.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log"

	"wander/internal/ai"
	"wander/internal/search"
)

// Service runs the itinerary pipeline. It holds only shared, read-only
// clients, so a single Service is safe to reuse across requests.
type Service struct {
	search search.Client
	llm    ai.LLMProvider
}

// NewService creates a Service with the given search and LLM clients.
func NewService(searchClient search.Client, llm ai.LLMProvider) *Service {
	return &Service{search: searchClient, llm: llm}
}

// PlanResult is the final artifact of one pipeline run.
type PlanResult struct {
	Request   TripRequest
	Itinerary string
}

// Plan executes the whole pipeline for one request. Strictly linear, each
// step runs once, and any failure aborts the run: ErrInvalidFormat before
// any network call, *search.ProviderError for non-200 search answers,
// ErrNoResults when the summary comes back empty.
func (s *Service) Plan(ctx context.Context, destination, preferences string) (*PlanResult, error) {
	req, err := ParseTripRequest(destination, preferences)
	if err != nil {
		return nil, err
	}

	query := BuildSearchQuery(req)
	log.Printf("searching the web for %q", query)
	resp, err := s.search.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	summary := SummarizeResults(resp)
	if summary == "" {
		return nil, ErrNoResults
	}

	prompt := BuildPrompt(req, summary)
	itinerary, err := s.llm.GenerateItinerary(ctx, prompt)
	if err != nil {
		log.Printf("AI Error: %v", err)
		return nil, fmt.Errorf("generate itinerary: %w", err)
	}

	return &PlanResult{Request: req, Itinerary: itinerary}, nil
}

// UserMessage maps a pipeline error to the fixed text shown to the user.
// Provider errors carry the raw response body verbatim.
func UserMessage(err error) string {
	var provErr *search.ProviderError
	switch {
	case errors.Is(err, ErrInvalidFormat):
		return MsgInvalidFormat
	case errors.Is(err, ErrNoResults):
		return MsgNoResults
	case errors.As(err, &provErr):
		return "Error during search: " + provErr.Body
	default:
		return "Could not generate the itinerary. Please try again later."
	}
}
