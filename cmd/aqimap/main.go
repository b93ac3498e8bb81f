package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/debby0330/aqi-analysis/internal/adapters/export"
	"github.com/debby0330/aqi-analysis/internal/adapters/feed"
	"github.com/debby0330/aqi-analysis/internal/adapters/projection"
	"github.com/debby0330/aqi-analysis/internal/adapters/render"
	"github.com/debby0330/aqi-analysis/internal/config"
	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/services"
)

// main fetches the current AQI readings once, draws the Leaflet map, and
// exports the full snapshot as CSV. Both outputs share one timestamp so a
// map can always be matched to the data behind it.
func main() {
	outDir := flag.String("out", "outputs", "directory for the HTML map and the CSV export")
	limit := flag.Int("limit", 1000, "maximum number of feed records to request")
	timeout := flag.Duration("timeout", 60*time.Second, "overall deadline for one run")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	apiKey := os.Getenv("AQI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		log.Fatal("AQI_API_KEY is required")
	}
	baseURL := config.Get("AQI_API_URL", feed.DefaultBaseURL)

	source, err := feed.NewMoenvSource(baseURL, apiKey, *limit)
	if err != nil {
		log.Fatal(err)
	}

	builder, err := services.NewSnapshotBuilder(projection.NewTWD97Projector(), domain.TaipeiMainStation)
	if err != nil {
		log.Fatal(err)
	}

	renderer, err := render.NewMapRenderer()
	if err != nil {
		log.Fatal(err)
	}
	exporter := export.NewCSVExporter()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	records, err := source.FetchStations(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("fetch complete records=%d", len(records))

	stations := builder.Build(ctx, records)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	stamp := time.Now().Format("20060102_150405")
	mapPath := filepath.Join(*outDir, "aqi_map_"+stamp+".html")
	csvPath := filepath.Join(*outDir, "aqi_data_"+stamp+".csv")

	markers, err := renderer.RenderFile(ctx, stations, mapPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("map saved path=%s markers=%d", mapPath, markers)

	if err := exporter.Export(ctx, stations, csvPath); err != nil {
		log.Fatal(err)
	}
	log.Printf("csv saved path=%s rows=%d", csvPath, len(stations))
}
