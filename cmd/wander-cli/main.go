// README: Console entry point; same pipeline as the web server, driven by stdin prompts.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"wander/internal/ai"
	"wander/internal/config"
	"wander/internal/infra"
	"wander/internal/modules/planner"
	"wander/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	llm, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer llm.Close()

	var searchClient search.Client = search.NewSerperClient(cfg.Search.Endpoint, cfg.Search.APIKey)
	if cfg.Redis.Addr != "" {
		searchClient = search.NewCachedClient(searchClient, infra.NewRedis(cfg.Redis.Addr), cfg.Search.CacheTTL)
	}

	svc := planner.NewService(searchClient, llm)
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to your AI Travel Itinerary Creator!")

	for {
		fmt.Print("Where do you want to go? Please enter the city and number of days (e.g., Chennai, 3 days): ")
		if !in.Scan() {
			break
		}
		destination := strings.TrimSpace(in.Text())
		if destination == "" {
			break
		}

		fmt.Print("Any specific preferences? (e.g., history, budget, food): ")
		if !in.Scan() {
			break
		}
		preferences := strings.TrimSpace(in.Text())

		// Parse up front so the progress line can name the trip before any
		// network call happens.
		req, err := planner.ParseTripRequest(destination, preferences)
		if err != nil {
			fmt.Println(planner.MsgInvalidFormat)
			fmt.Println()
			continue
		}

		fmt.Printf("\nPlanning a %d-day trip to %s...\n", req.Days, req.Place)

		res, err := svc.Plan(ctx, destination, preferences)
		if err != nil {
			fmt.Println(planner.UserMessage(err))
			fmt.Println()
			continue
		}

		banner := strings.Repeat("=", 50)
		fmt.Println("\n" + banner)
		fmt.Printf("Here is your %d-day itinerary for %s:\n", res.Request.Days, res.Request.Place)
		fmt.Println(banner)
		fmt.Println(res.Itinerary)
		fmt.Println()
	}
}
