package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/debby0330/aqi-analysis/internal/adapters/feed"
	"github.com/debby0330/aqi-analysis/internal/adapters/projection"
	"github.com/debby0330/aqi-analysis/internal/adapters/render"
	"github.com/debby0330/aqi-analysis/internal/api"
	"github.com/debby0330/aqi-analysis/internal/config"
	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/services"
)

// main is the server composition root.
// It wires the feed client and the TWD97 projector behind ports, warms the
// snapshot, and starts the HTTP server with a background refresh loop.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	apiKey := os.Getenv("AQI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("AQI_API_KEY is required")
	}

	port := config.Get("PORT", "8080")
	baseURL := config.Get("AQI_API_URL", feed.DefaultBaseURL)
	limit := config.GetInt("AQI_FETCH_LIMIT", 1000)
	interval := config.GetDuration("AQI_REFRESH_INTERVAL", 10*time.Minute)

	source, err := feed.NewMoenvSource(baseURL, apiKey, limit)
	if err != nil {
		log.Fatal(err)
	}

	builder, err := services.NewSnapshotBuilder(projection.NewTWD97Projector(), domain.TaipeiMainStation)
	if err != nil {
		log.Fatal(err)
	}
	holder := services.NewSnapshotHolder(source, builder)

	renderer, err := render.NewMapRenderer()
	if err != nil {
		log.Fatal(err)
	}

	// Warm the snapshot before serving. A failed warm-up is not fatal: the
	// refresh loop retries and /health reports the empty snapshot meanwhile.
	warmCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if err := holder.Refresh(warmCtx); err != nil {
		log.Printf("initial refresh failed: %v", err)
	}
	cancel()

	go refreshLoop(holder, interval)

	app := fiber.New(fiber.Config{
		AppName:               "aqi-analysis",
		DisableStartupMessage: true,
	})
	api.RegisterRoutes(app, holder, renderer)

	log.Printf("Server listening addr=:%s refresh=%s", port, interval)
	log.Fatal(app.Listen(":" + port))
}

// refreshLoop re-fetches the feed on a fixed interval. A failed refresh keeps
// the previous snapshot serving.
func refreshLoop(holder *services.SnapshotHolder, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		if err := holder.Refresh(ctx); err != nil {
			log.Printf("refresh failed: %v", err)
		}
		cancel()
	}
}
