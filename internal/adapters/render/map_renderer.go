package render

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/platform/obs"
)

//go:embed map.tmpl
var mapTemplate string

// MapTitle is fixed; the map's visual styling is not configurable.
const MapTitle = "台灣即時 AQI 監測地圖"

type mapMarker struct {
	Name   string  `json:"name"`
	County string  `json:"county"`
	AQI    string  `json:"aqi"`
	Level  string  `json:"level"`
	Color  string  `json:"color"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

type mapPage struct {
	Title   string
	Markers []mapMarker
}

// MapRenderer produces the standalone Leaflet document for a snapshot.
type MapRenderer struct {
	tmpl *template.Template
}

func NewMapRenderer() (*MapRenderer, error) {
	tmpl, err := template.New("map").Parse(mapTemplate)
	if err != nil {
		return nil, fmt.Errorf("new map renderer: parse template: %w", err)
	}
	return &MapRenderer{tmpl: tmpl}, nil
}

// Render writes the map document for stations to w and reports how many
// markers it drew. Stations without published coordinates are left off the
// map; they still appear in the CSV export.
func (r *MapRenderer) Render(ctx context.Context, w io.Writer, stations []domain.Station) (_ int, err error) {
	defer obs.Time(ctx, "map.Render")(&err)

	markers := make([]mapMarker, 0, len(stations))
	for _, st := range stations {
		if st.Location.IsMissing() {
			continue
		}

		level := domain.ClassifyAQI(st.AQI)
		markers = append(markers, mapMarker{
			Name:   st.Name,
			County: st.County,
			AQI:    st.AQI,
			Level:  level.Label,
			Color:  level.Color,
			Lat:    st.Location.Latitude,
			Lon:    st.Location.Longitude,
		})
	}

	page := mapPage{Title: MapTitle, Markers: markers}
	if err := r.tmpl.Execute(w, page); err != nil {
		return 0, fmt.Errorf("render map: %w", err)
	}

	return len(markers), nil
}

// RenderFile writes the map document to path, creating the parent directory
// if needed.
func (r *MapRenderer) RenderFile(ctx context.Context, stations []domain.Station, path string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("render map: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("render map: %w", err)
	}
	defer f.Close()

	return r.Render(ctx, f, stations)
}
