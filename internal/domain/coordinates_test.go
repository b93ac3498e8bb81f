package domain

import "testing"

func TestDistanceKm(t *testing.T) {
	a := ProjectedPoint{Easting: 250000, Northing: 2700000}
	b := ProjectedPoint{Easting: 250300, Northing: 2700400}

	// 300 m east and 400 m north make a 500 m hypotenuse.
	if got := a.DistanceKm(b); got != 0.5 {
		t.Errorf("DistanceKm = %v, want 0.5", got)
	}

	if got, want := b.DistanceKm(a), a.DistanceKm(b); got != want {
		t.Errorf("distance not symmetric: %v vs %v", got, want)
	}

	if got := a.DistanceKm(a); got != 0 {
		t.Errorf("self distance = %v, want exactly 0", got)
	}
}

func TestDistanceKmRounding(t *testing.T) {
	origin := ProjectedPoint{}

	// 1234.5 m is 1.2345 km and rounds down to 1.23.
	if got := origin.DistanceKm(ProjectedPoint{Easting: 1234.5}); got != 1.23 {
		t.Errorf("DistanceKm(1234.5 m) = %v, want 1.23", got)
	}

	// 1235 m is 1.235 km; the exact tie rounds away from zero.
	if got := origin.DistanceKm(ProjectedPoint{Easting: 1235}); got != 1.24 {
		t.Errorf("DistanceKm(1235 m) = %v, want 1.24", got)
	}
}

func TestGeodeticPointIsMissing(t *testing.T) {
	cases := []struct {
		point GeodeticPoint
		want  bool
	}{
		{GeodeticPoint{Latitude: 25.0478, Longitude: 121.5170}, false},
		{GeodeticPoint{Latitude: 0, Longitude: 121.5170}, true},
		{GeodeticPoint{Latitude: 25.0478, Longitude: 0}, true},
		{GeodeticPoint{}, true},
		{GeodeticPoint{Latitude: -36.85, Longitude: 174.76}, false},
	}

	for _, c := range cases {
		if got := c.point.IsMissing(); got != c.want {
			t.Errorf("IsMissing(%+v) = %v, want %v", c.point, got, c.want)
		}
	}
}
