package planner

import (
	"fmt"
	"strings"

	"wander/internal/search"
)

// maxSummaryResults caps how many organic hits feed the prompt.
const maxSummaryResults = 5

// SummarizeResults reformats the top search hits into the plain-text research
// block embedded in the prompt. Each hit becomes a fixed three-line block with
// "N/A" substituted for missing fields. Returns "" when there is nothing to
// summarize; callers treat that as the recoverable no-information condition.
func SummarizeResults(resp *search.Response) string {
	if resp == nil {
		return ""
	}

	hits := resp.Organic
	if len(hits) > maxSummaryResults {
		hits = hits[:maxSummaryResults]
	}

	var blocks []string
	for _, hit := range hits {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nURL: %s\nSummary: %s\n---",
			orNA(hit.Title), orNA(hit.Link), orNA(hit.Snippet)))
	}
	return strings.Join(blocks, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
