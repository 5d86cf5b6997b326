// README: Entry point; loads config, wires the pipeline, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wander/internal/ai"
	"wander/internal/config"
	httptransport "wander/internal/http"
	"wander/internal/infra"
	"wander/internal/modules/planner"
	"wander/internal/search"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	llm, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer llm.Close()

	var searchClient search.Client = search.NewSerperClient(cfg.Search.Endpoint, cfg.Search.APIKey)
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		searchClient = search.NewCachedClient(searchClient, redisClient, cfg.Search.CacheTTL)
	}

	plannerSvc := planner.NewService(searchClient, llm)

	handler := httptransport.NewServer(httptransport.ServerDeps{Planner: plannerSvc})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
