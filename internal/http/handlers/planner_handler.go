// README: Itinerary handlers (JSON API + HTML form).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wander/internal/modules/planner"
)

// planTimeout bounds one pipeline run (one search call plus one generation call).
const planTimeout = 90 * time.Second

type PlannerHandler struct {
	planner *planner.Service
}

func NewPlannerHandler(svc *planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

type planReq struct {
	Destination string `json:"destination"`
	Preferences string `json:"preferences"`
}

// Create handles POST /api/itineraries.
func (h *PlannerHandler) Create(c *gin.Context) {
	var req planReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	res, err := h.planner.Plan(ctx, req.Destination, strings.TrimSpace(req.Preferences))
	if err != nil {
		writePlanError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{
		"place":     res.Request.Place,
		"days":      res.Request.Days,
		"itinerary": res.Itinerary,
	})
}

// Form handles GET / and renders the empty input form.
func (h *PlannerHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Destination": "",
		"Preferences": "",
	})
}

// Submit handles POST /plan from the HTML form and re-renders the page with
// either the itinerary or the user-facing error message.
func (h *PlannerHandler) Submit(c *gin.Context) {
	destination := strings.TrimSpace(c.PostForm("destination"))
	preferences := strings.TrimSpace(c.PostForm("preferences"))

	page := gin.H{
		"Destination": destination,
		"Preferences": preferences,
	}

	if destination == "" {
		c.HTML(http.StatusOK, "index", page)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	res, err := h.planner.Plan(ctx, destination, preferences)
	if err != nil {
		page["Error"] = planner.UserMessage(err)
		c.HTML(http.StatusOK, "index", page)
		return
	}

	page["Place"] = res.Request.Place
	page["Days"] = res.Request.Days
	page["Itinerary"] = res.Itinerary
	c.HTML(http.StatusOK, "index", page)
}
