package domain

import "math"

// WGS84 geodetic position in decimal degrees (EPSG:4326).
type GeodeticPoint struct {
	Latitude  float64
	Longitude float64
}

// TaipeiMainStation is the fixed reference point distances are measured from.
var TaipeiMainStation = GeodeticPoint{Latitude: 25.0478, Longitude: 121.5170}

// IsMissing reports the upstream "no coordinates published" sentinel.
// The feed emits 0 for stations without a fix; 0°N and 0°E do not occur
// anywhere in Taiwan.
func (p GeodeticPoint) IsMissing() bool {
	return p.Latitude == 0 || p.Longitude == 0
}

// Planar position in TWD97 / TM2 zone 121 meters (EPSG:3826).
type ProjectedPoint struct {
	Easting  float64
	Northing float64
}

// DistanceKm returns the Euclidean distance to q in kilometers, rounded to
// two decimal places (half away from zero). Self-distance is exactly 0.
func (p ProjectedPoint) DistanceKm(q ProjectedPoint) float64 {
	meters := math.Hypot(p.Easting-q.Easting, p.Northing-q.Northing)
	return math.Round(meters/10) / 100
}
