// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/modules/planner"
	"wander/internal/search"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writePlanError(c *gin.Context, err error) {
	var provErr *search.ProviderError
	switch {
	case errors.Is(err, planner.ErrInvalidFormat):
		writeError(c, http.StatusBadRequest, planner.MsgInvalidFormat)
	case errors.Is(err, planner.ErrNoResults):
		writeError(c, http.StatusNotFound, planner.MsgNoResults)
	case errors.As(err, &provErr):
		writeError(c, http.StatusBadGateway, provErr.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
