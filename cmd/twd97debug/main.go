package main

import (
	"fmt"
	"log"

	"github.com/debby0330/aqi-analysis/internal/adapters/projection"
	"github.com/debby0330/aqi-analysis/internal/domain"
)

// main prints the projected TWD97 coordinates and the planar distance to
// Taipei Main Station for a few well known sites, for eyeballing the
// projection against published control points.
func main() {
	sites := []struct {
		name  string
		point domain.GeodeticPoint
	}{
		{"台北車站", domain.TaipeiMainStation},
		{"基隆", domain.GeodeticPoint{Latitude: 25.129167, Longitude: 121.760056}},
		{"新店", domain.GeodeticPoint{Latitude: 24.949028, Longitude: 121.383528}},
		{"淡水", domain.GeodeticPoint{Latitude: 25.164444, Longitude: 121.446111}},
	}

	projector := projection.NewTWD97Projector()

	reference, err := projector.Project(domain.TaipeiMainStation)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-12s %12s %12s %14s %14s %12s\n",
		"site", "lat", "lon", "easting(m)", "northing(m)", "distance(km)")
	for _, s := range sites {
		projected, err := projector.Project(s.point)
		if err != nil {
			fmt.Printf("%-12s %12.6f %12.6f  %v\n", s.name, s.point.Latitude, s.point.Longitude, err)
			continue
		}
		fmt.Printf("%-12s %12.6f %12.6f %14.2f %14.2f %12.2f\n",
			s.name, s.point.Latitude, s.point.Longitude,
			projected.Easting, projected.Northing, projected.DistanceKm(reference))
	}
}
