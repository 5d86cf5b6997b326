// README: API gateway; registers HTTP routes and delegates to the planner service.
package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"wander/internal/http/handlers"
	"wander/internal/http/middleware"
	"wander/internal/modules/planner"
)

type ServerDeps struct {
	Planner *planner.Service
}

type Server struct {
	planner *planner.Service
}

func NewServer(deps ServerDeps) *Server {
	return &Server{planner: deps.Planner}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	r.SetHTMLTemplate(pageTemplate)

	h := handlers.NewPlannerHandler(s.planner)
	r.GET("/", h.Form)
	r.POST("/plan", h.Submit)
	r.POST("/api/itineraries", h.Create)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}

var pageTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AI Travel Itinerary Creator</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; }
input[type=text] { width: 100%; padding: 0.4rem; }
button { margin-top: 1rem; padding: 0.5rem 1.5rem; }
.error { color: #b00020; margin-top: 1rem; }
pre { white-space: pre-wrap; background: #f6f6f6; padding: 1rem; }
</style>
</head>
<body>
<h1>&#9992;&#65039; AI Travel Itinerary Creator</h1>
<p>Plan your perfect trip with a little help from AI. Just enter your destination and preferences below!</p>
<form method="post" action="/plan">
<label>Destination and Duration (e.g., Ooty, 4 days)
<input type="text" name="destination" value="{{.Destination}}">
</label>
<label>Travel Preferences (e.g., solo travel, budget-friendly)
<input type="text" name="preferences" value="{{.Preferences}}">
</label>
<button type="submit">Generate Itinerary &#10024;</button>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Itinerary}}
<hr>
<h2>Your {{.Days}}-Day Itinerary for {{.Place}}:</h2>
<pre>{{.Itinerary}}</pre>
{{end}}
</body>
</html>
`
