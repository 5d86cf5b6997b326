package planner

import "fmt"

// promptTemplate is the fixed instruction text sent to the model, with
// substitution points for day count, place, preferences, and the research
// block. Sent verbatim after substitution.
const promptTemplate = `You are an expert travel agent. Create a detailed day-by-day travel itinerary for a %d-day trip to %s. The user has these preferences: %s

Here is some information I found from my research:
%s

Please use this information to create the itinerary. For each day, suggest 2-3 activities, a food recommendation, and some practical travel tips. Keep the tone friendly and helpful. Do not mention that you used a search engine.`

// BuildSearchQuery assembles the free-text web query for a trip request.
func BuildSearchQuery(req TripRequest) string {
	return fmt.Sprintf("best things to do in %s for %d days %s travel guide",
		req.Place, req.Days, req.Preferences)
}

// BuildPrompt renders the full generation prompt for a trip request and its
// summarized research text.
func BuildPrompt(req TripRequest, searchSummary string) string {
	return fmt.Sprintf(promptTemplate, req.Days, req.Place, req.Preferences, searchSummary)
}
