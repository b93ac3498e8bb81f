package projection

import (
	"fmt"
	"math"

	"github.com/debby0330/aqi-analysis/internal/domain"
)

// TWD97 / TM2 zone 121 (EPSG:3826) on the GRS80 ellipsoid. The WGS84 to
// TWD97 datum shift is identity at the precision of this feed.
const (
	semiMajorAxisM     = 6378137.0
	flattening         = 1.0 / 298.257222101
	centralMeridianDeg = 121.0
	scaleFactor        = 0.9999
	falseEastingM      = 250000.0
	falseNorthingM     = 0.0

	degToRad = math.Pi / 180
)

// TransformError reports a geodetic point the projector refused. The
// original point is retained so callers can log what was rejected; a failed
// transform is never fatal, the affected station just loses its distance.
type TransformError struct {
	Point  domain.GeodeticPoint
	Reason string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform (%v, %v): %s", e.Point.Latitude, e.Point.Longitude, e.Reason)
}

// TWD97Projector implements ports.Projector with the analytic forward
// Transverse Mercator development (the USGS series). Within a few degrees
// of the 121°E central meridian the series is accurate to well under a
// millimeter, which covers every Taiwanese station. Points far outside that
// band still project deterministically, with no accuracy claim.
type TWD97Projector struct {
	e2  float64 // first eccentricity squared
	ep2 float64 // second eccentricity squared

	// Meridional arc coefficients, fixed by the ellipsoid.
	m0, m2, m4, m6 float64
}

func NewTWD97Projector() *TWD97Projector {
	e2 := flattening * (2 - flattening)
	e4 := e2 * e2
	e6 := e4 * e2

	return &TWD97Projector{
		e2:  e2,
		ep2: e2 / (1 - e2),
		m0:  1 - e2/4 - 3*e4/64 - 5*e6/256,
		m2:  3*e2/8 + 3*e4/32 + 45*e6/1024,
		m4:  15*e4/256 + 45*e6/1024,
		m6:  35 * e6 / 3072,
	}
}

// Project converts p to TWD97 / TM2 zone 121 meters.
func (t *TWD97Projector) Project(p domain.GeodeticPoint) (domain.ProjectedPoint, error) {
	if !isFinite(p.Latitude) || !isFinite(p.Longitude) {
		return domain.ProjectedPoint{}, &TransformError{Point: p, Reason: "coordinates must be finite"}
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return domain.ProjectedPoint{}, &TransformError{Point: p, Reason: "coordinates outside geodetic range"}
	}

	lat := p.Latitude * degToRad

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)

	// Subtract in degrees first so a point on the central meridian keeps
	// the false easting exactly.
	a := (p.Longitude - centralMeridianDeg) * degToRad * cosLat

	n := semiMajorAxisM / math.Sqrt(1-t.e2*sinLat*sinLat)
	tt := tanLat * tanLat
	c := t.ep2 * cosLat * cosLat

	a2 := a * a
	a3 := a2 * a
	a4 := a2 * a2
	a5 := a4 * a
	a6 := a4 * a2

	easting := falseEastingM + scaleFactor*n*(a+
		(1-tt+c)*a3/6+
		(5-18*tt+tt*tt+72*c-58*t.ep2)*a5/120)

	northing := falseNorthingM + scaleFactor*(t.meridionalArc(lat)+
		n*tanLat*(a2/2+
			(5-tt+9*c+4*c*c)*a4/24+
			(61-58*tt+tt*tt+600*c-330*t.ep2)*a6/720))

	return domain.ProjectedPoint{Easting: easting, Northing: northing}, nil
}

// meridionalArc returns the ellipsoidal arc length in meters from the
// equator to latitude lat (radians).
func (t *TWD97Projector) meridionalArc(lat float64) float64 {
	return semiMajorAxisM * (t.m0*lat -
		t.m2*math.Sin(2*lat) +
		t.m4*math.Sin(4*lat) -
		t.m6*math.Sin(6*lat))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
