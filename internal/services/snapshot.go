package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/platform/obs"
	"github.com/debby0330/aqi-analysis/internal/ports"
)

// Placeholders the established dataset consumers expect when the feed omits
// a field.
const (
	UnknownSiteName = "未知測站"
	UnknownCounty   = "未知縣市"
	NotAvailable    = "N/A"
)

// SnapshotBuilder turns raw upstream records into distance-annotated
// stations. The reference point is projected exactly once, at construction,
// and held immutable for the lifetime of the builder.
type SnapshotBuilder struct {
	projector ports.Projector
	reference domain.ProjectedPoint
}

// NewSnapshotBuilder projects the geodetic reference and fails if the
// reference itself cannot be projected; every later failure is per-station
// and non-fatal.
func NewSnapshotBuilder(projector ports.Projector, reference domain.GeodeticPoint) (*SnapshotBuilder, error) {
	ref, err := projector.Project(reference)
	if err != nil {
		return nil, fmt.Errorf("new snapshot builder: project reference point: %w", err)
	}

	return &SnapshotBuilder{projector: projector, reference: ref}, nil
}

// Reference returns the projected reference point.
func (b *SnapshotBuilder) Reference() domain.ProjectedPoint { return b.reference }

// Build assembles one Station per raw record, preserving feed order.
// Missing text fields get their placeholders. Coordinates that fail to
// parse collapse to the 0 sentinel and skip projection; a failed projection
// likewise leaves the distance nil rather than aborting the run. The work
// is sequential and deterministic: the same records always produce the same
// snapshot.
func (b *SnapshotBuilder) Build(ctx context.Context, records []ports.RawStation) []domain.Station {
	defer obs.Time(ctx, "snapshot.Build")(nil)

	stations := make([]domain.Station, 0, len(records))

	for _, r := range records {
		lat, latOK := parseCoordinate(r.Latitude)
		lon, lonOK := parseCoordinate(r.Longitude)
		point := domain.GeodeticPoint{Latitude: lat, Longitude: lon}

		st := domain.Station{
			SiteID:      strings.TrimSpace(r.SiteID),
			Name:        textOr(r.SiteName, UnknownSiteName),
			County:      textOr(r.County, UnknownCounty),
			AQI:         textOr(r.AQI, NotAvailable),
			Pollutant:   textOr(r.Pollutant, NotAvailable),
			Status:      textOr(r.Status, NotAvailable),
			PublishedAt: textOr(r.PublishTime, NotAvailable),
			Location:    point,
		}

		if latOK && lonOK {
			if projected, err := b.projector.Project(point); err == nil {
				d := projected.DistanceKm(b.reference)
				st.DistanceKm = &d
			}
		}

		stations = append(stations, st)
	}

	return stations
}

func textOr(raw, fallback string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return fallback
}

// parseCoordinate parses one geodetic axis. Anything unparseable collapses
// to 0, the upstream "no coordinates" sentinel, and reports false so the
// caller knows not to project.
func parseCoordinate(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
