package ports

import (
	"github.com/debby0330/aqi-analysis/internal/domain"
)

// Port: a boundary for projecting WGS84 geodetic points onto the TWD97 plane.
type Projector interface {
	// Project converts a geodetic point to TWD97 / TM2 zone 121 meters.
	// Implementations must be deterministic and side-effect free: the same
	// point always yields the bit-identical result.
	Project(p domain.GeodeticPoint) (domain.ProjectedPoint, error)
}
