package api

import (
	"bytes"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/debby0330/aqi-analysis/internal/adapters/render"
	"github.com/debby0330/aqi-analysis/internal/api/dto"
	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/services"
)

// RegisterRoutes wires HTTP handlers with their dependencies. This is the API
// composition root (handlers stay unaware of concrete adapters).
func RegisterRoutes(app *fiber.App, holder *services.SnapshotHolder, renderer *render.MapRenderer) {
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		stations, refreshedAt := holder.Snapshot()

		res := dto.HealthResponse{Status: "ok", Stations: len(stations)}
		if !refreshedAt.IsZero() {
			res.RefreshedAt = &refreshedAt
		}
		return c.JSON(res)
	})

	app.Get("/api/stations", func(c *fiber.Ctx) error {
		county := strings.TrimSpace(c.Query("county"))

		stations, _ := holder.Snapshot()
		res := dto.ListStationsResponse{
			Stations: make([]dto.StationResponse, 0, len(stations)),
		}
		for _, st := range stations {
			if county != "" && !strings.EqualFold(st.County, county) {
				continue
			}
			res.Stations = append(res.Stations, toStationResponse(st))
		}
		res.Count = len(res.Stations)

		return c.JSON(res)
	})

	app.Get("/api/stations/:siteid", func(c *fiber.Ctx) error {
		siteID := decodeParam(c.Params("siteid"))

		stations, _ := holder.Snapshot()
		for _, st := range stations {
			if st.SiteID == siteID {
				return c.JSON(toStationResponse(st))
			}
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown station"})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		stations, _ := holder.Snapshot()

		var buf bytes.Buffer
		if _, err := renderer.Render(c.UserContext(), &buf, stations); err != nil {
			log.Printf("render map failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "map rendering failed"})
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})
}

// toStationResponse flattens a station and its derived AQI level into the
// transport shape.
func toStationResponse(st domain.Station) dto.StationResponse {
	level := domain.ClassifyAQI(st.AQI)
	return dto.StationResponse{
		SiteID:      st.SiteID,
		Name:        st.Name,
		County:      st.County,
		AQI:         st.AQI,
		Level:       level.Label,
		Color:       level.Color,
		Status:      st.Status,
		Pollutant:   st.Pollutant,
		Latitude:    st.Location.Latitude,
		Longitude:   st.Location.Longitude,
		DistanceKm:  st.DistanceKm,
		PublishedAt: st.PublishedAt,
	}
}

// decodeParam unescapes a path segment so Chinese site ids round-trip.
func decodeParam(val string) string {
	if val == "" {
		return val
	}
	if decoded, err := url.PathUnescape(val); err == nil {
		return decoded
	}
	return val
}
