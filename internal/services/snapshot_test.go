package services

import (
	"context"
	"testing"

	"github.com/debby0330/aqi-analysis/internal/adapters/projection"
	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/ports"
)

func scriptedBuilder(t *testing.T) *SnapshotBuilder {
	t.Helper()

	projector := projection.NewMockProjector([]projection.MockPoint{
		{In: domain.TaipeiMainStation, Out: domain.ProjectedPoint{Easting: 302000, Northing: 2771000}},
		{
			In:  domain.GeodeticPoint{Latitude: 25.129167, Longitude: 121.760056},
			Out: domain.ProjectedPoint{Easting: 305000, Northing: 2775000},
		},
	})

	builder, err := NewSnapshotBuilder(projector, domain.TaipeiMainStation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return builder
}

func TestSnapshotBuilderBuild(t *testing.T) {
	builder := scriptedBuilder(t)

	want := domain.ProjectedPoint{Easting: 302000, Northing: 2771000}
	if ref := builder.Reference(); ref != want {
		t.Fatalf("Reference = %+v, want %+v", ref, want)
	}

	records := []ports.RawStation{{
		SiteID:      "1",
		SiteName:    "基隆",
		County:      "基隆市",
		AQI:         "32",
		Pollutant:   "O3",
		Status:      "良好",
		PublishTime: "2026/01/01 10:00:00",
		Latitude:    "25.129167",
		Longitude:   "121.760056",
	}}

	stations := builder.Build(context.Background(), records)
	if len(stations) != 1 {
		t.Fatalf("got %d stations, want 1", len(stations))
	}

	st := stations[0]
	if st.Name != "基隆" || st.County != "基隆市" || st.AQI != "32" {
		t.Errorf("fields not mapped: %+v", st)
	}
	if st.Location.Latitude != 25.129167 || st.Location.Longitude != 121.760056 {
		t.Errorf("coordinates not coerced: %+v", st.Location)
	}
	if st.DistanceKm == nil {
		t.Fatal("DistanceKm is nil, want a value")
	}
	// Scripted points sit 3 km east and 4 km north of the reference.
	if *st.DistanceKm != 5 {
		t.Errorf("DistanceKm = %v, want 5", *st.DistanceKm)
	}
}

func TestSnapshotBuilderDefaults(t *testing.T) {
	builder := scriptedBuilder(t)

	stations := builder.Build(context.Background(), []ports.RawStation{{}})
	if len(stations) != 1 {
		t.Fatalf("got %d stations, want 1", len(stations))
	}

	st := stations[0]
	if st.Name != UnknownSiteName {
		t.Errorf("Name = %q, want %q", st.Name, UnknownSiteName)
	}
	if st.County != UnknownCounty {
		t.Errorf("County = %q, want %q", st.County, UnknownCounty)
	}
	if st.AQI != NotAvailable || st.Pollutant != NotAvailable || st.Status != NotAvailable || st.PublishedAt != NotAvailable {
		t.Errorf("placeholders not applied: %+v", st)
	}
	if !st.Location.IsMissing() {
		t.Errorf("empty coordinates should collapse to the 0 sentinel, got %+v", st.Location)
	}
	if st.DistanceKm != nil {
		t.Errorf("DistanceKm = %v, want nil for missing coordinates", *st.DistanceKm)
	}
}

func TestSnapshotBuilderTransformFailureIsNonFatal(t *testing.T) {
	builder := scriptedBuilder(t)

	records := []ports.RawStation{
		{SiteName: "基隆", Latitude: "25.129167", Longitude: "121.760056"},
		{SiteName: "外島", Latitude: "26.160469", Longitude: "119.951108"}, // not scripted: projection fails
		{SiteName: "亂碼", Latitude: "not-a-number", Longitude: "121.5"},
	}

	stations := builder.Build(context.Background(), records)
	if len(stations) != len(records) {
		t.Fatalf("got %d stations, want %d (count must be preserved)", len(stations), len(records))
	}

	if stations[0].DistanceKm == nil {
		t.Error("station 0 lost its distance")
	}
	if stations[1].DistanceKm != nil {
		t.Error("station 1 has a distance despite a failed projection")
	}
	if stations[2].DistanceKm != nil {
		t.Error("station 2 has a distance despite garbage coordinates")
	}
	if stations[2].Location.Latitude != 0 || stations[2].Location.Longitude != 121.5 {
		t.Errorf("garbage latitude should collapse to 0, got %+v", stations[2].Location)
	}

	for i, want := range []string{"基隆", "外島", "亂碼"} {
		if stations[i].Name != want {
			t.Errorf("station %d = %q, want %q (order must be preserved)", i, stations[i].Name, want)
		}
	}
}

// The 0 sentinel gates map markers only. A record that literally publishes
// numeric zeros still parses, still projects, and gets a distance.
func TestSnapshotBuilderZeroCoordinateStillMeasured(t *testing.T) {
	builder, err := NewSnapshotBuilder(projection.NewTWD97Projector(), domain.TaipeiMainStation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stations := builder.Build(context.Background(), []ports.RawStation{
		{SiteName: "零值", Latitude: "0", Longitude: "121.5"},
	})

	st := stations[0]
	if st.DistanceKm == nil {
		t.Fatal("parsed zero coordinates should still be measured")
	}
	if *st.DistanceKm < 1000 {
		t.Errorf("distance = %v km, want the equator-range magnitude", *st.DistanceKm)
	}
	if !st.Location.IsMissing() {
		t.Error("zero latitude should still read as missing for marker rendering")
	}
}

func TestNewSnapshotBuilderRejectsBadReference(t *testing.T) {
	projector := projection.NewMockProjector(nil)

	if _, err := NewSnapshotBuilder(projector, domain.TaipeiMainStation); err == nil {
		t.Error("expected error when the reference point cannot be projected")
	}
}

type countingProjector struct {
	inner ports.Projector
	calls map[domain.GeodeticPoint]int
}

func (c *countingProjector) Project(p domain.GeodeticPoint) (domain.ProjectedPoint, error) {
	c.calls[p]++
	return c.inner.Project(p)
}

func TestSnapshotBuilderProjectsReferenceOnce(t *testing.T) {
	counting := &countingProjector{
		inner: projection.NewTWD97Projector(),
		calls: map[domain.GeodeticPoint]int{},
	}

	builder, err := NewSnapshotBuilder(counting, domain.TaipeiMainStation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := []ports.RawStation{
		{SiteName: "基隆", Latitude: "25.129167", Longitude: "121.760056"},
		{SiteName: "新店", Latitude: "24.949028", Longitude: "121.383528"},
	}
	builder.Build(context.Background(), records)
	builder.Build(context.Background(), records)

	if got := counting.calls[domain.TaipeiMainStation]; got != 1 {
		t.Errorf("reference projected %d times, want exactly 1", got)
	}
}

// End to end over the real projector: repeated builds must agree bit for bit.
func TestSnapshotBuilderDeterministic(t *testing.T) {
	builder, err := NewSnapshotBuilder(projection.NewTWD97Projector(), domain.TaipeiMainStation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := []ports.RawStation{
		{SiteName: "基隆", AQI: "32", Latitude: "25.129167", Longitude: "121.760056"},
		{SiteName: "淡水", AQI: "55", Latitude: "25.164444", Longitude: "121.446111"},
	}

	first := builder.Build(context.Background(), records)
	second := builder.Build(context.Background(), records)

	for i := range first {
		a, b := first[i], second[i]
		if a.DistanceKm == nil || b.DistanceKm == nil {
			t.Fatalf("station %d lost its distance", i)
		}
		if *a.DistanceKm != *b.DistanceKm {
			t.Errorf("station %d distance differs between builds: %v vs %v", i, *a.DistanceKm, *b.DistanceKm)
		}
		if *a.DistanceKm <= 0 {
			t.Errorf("station %d distance = %v, want > 0", i, *a.DistanceKm)
		}
	}
}
