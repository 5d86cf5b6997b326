// README: End-to-end handler tests for both web surfaces, with stubbed search and LLM.
package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httptransport "wander/internal/http"
	"wander/internal/modules/planner"
	"wander/internal/search"
)

// stubSearchClient is a test double for search.Client.
type stubSearchClient struct {
	resp  *search.Response
	err   error
	calls int
}

func (s *stubSearchClient) Search(_ context.Context, _ string) (*search.Response, error) {
	s.calls++
	return s.resp, s.err
}

// stubLLM is a test double for ai.LLMProvider.
type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) GenerateItinerary(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

func buildTestHandler(searchStub *stubSearchClient, llm *stubLLM) http.Handler {
	gin.SetMode(gin.TestMode)
	svc := planner.NewService(searchStub, llm)
	return httptransport.NewServer(httptransport.ServerDeps{Planner: svc}).Routes()
}

func okSearchStub() *stubSearchClient {
	return &stubSearchClient{resp: &search.Response{Organic: []search.Organic{
		{Title: "Ooty Guide", Link: "https://example.com/ooty", Snippet: "Highlights."},
		{Title: "Top Sights", Link: "https://example.com/sights", Snippet: "Gardens."},
	}}}
}

func doJSON(h http.Handler, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, "/api/itineraries", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestCreateItinerary_OK(t *testing.T) {
	h := buildTestHandler(okSearchStub(), &stubLLM{reply: "Day 1: Botanical Gardens..."})

	w := doJSON(h, map[string]string{
		"destination": "Ooty, 4 days",
		"preferences": "solo travel, budget-friendly",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Place     string `json:"place"`
		Days      int    `json:"days"`
		Itinerary string `json:"itinerary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Place != "Ooty" || resp.Days != 4 {
		t.Errorf("response = %+v, want place=Ooty days=4", resp)
	}
	if resp.Itinerary != "Day 1: Botanical Gardens..." {
		t.Errorf("itinerary = %q, want stub reply verbatim", resp.Itinerary)
	}
}

func TestCreateItinerary_InvalidFormat(t *testing.T) {
	searchStub := okSearchStub()
	h := buildTestHandler(searchStub, &stubLLM{reply: "unused"})

	w := doJSON(h, map[string]string{"destination": "Chennai"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), planner.MsgInvalidFormat) {
		t.Errorf("body = %s, want fixed invalid-format message", w.Body.String())
	}
	if searchStub.calls != 0 {
		t.Errorf("search called %d times on invalid input, want 0", searchStub.calls)
	}
}

func TestCreateItinerary_EmptyResults(t *testing.T) {
	h := buildTestHandler(&stubSearchClient{resp: &search.Response{}}, &stubLLM{})

	w := doJSON(h, map[string]string{"destination": "Atlantis, 2 days"})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), planner.MsgNoResults) {
		t.Errorf("body = %s, want no-results message", w.Body.String())
	}
}

func TestCreateItinerary_ProviderError(t *testing.T) {
	h := buildTestHandler(&stubSearchClient{
		err: &search.ProviderError{StatusCode: 403, Body: "Unauthorized."},
	}, &stubLLM{})

	w := doJSON(h, map[string]string{"destination": "Chennai, 3 days"})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized.") {
		t.Errorf("body = %s, want raw provider body surfaced", w.Body.String())
	}
}

func TestForm_Renders(t *testing.T) {
	h := buildTestHandler(okSearchStub(), &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="destination"`) || !strings.Contains(body, `name="preferences"`) {
		t.Errorf("form page missing input fields")
	}
}

func doForm(h http.Handler, destination, preferences string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("destination", destination)
	form.Set("preferences", preferences)
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestSubmit_RendersItinerary(t *testing.T) {
	h := buildTestHandler(okSearchStub(), &stubLLM{reply: "Day 1: Botanical Gardens..."})

	w := doForm(h, "Ooty, 4 days", "solo travel")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Your 4-Day Itinerary for Ooty:") {
		t.Errorf("page missing itinerary header: %s", body)
	}
	if !strings.Contains(body, "Day 1: Botanical Gardens...") {
		t.Errorf("page missing itinerary text")
	}
}

func TestSubmit_RendersError(t *testing.T) {
	searchStub := okSearchStub()
	h := buildTestHandler(searchStub, &stubLLM{})

	w := doForm(h, "Chennai", "history")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), planner.MsgInvalidFormat) {
		t.Errorf("page missing invalid-format message")
	}
	if searchStub.calls != 0 {
		t.Errorf("search called on invalid form input")
	}
}

func TestHealth(t *testing.T) {
	h := buildTestHandler(okSearchStub(), &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
