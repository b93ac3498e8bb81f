package projection

import (
	"github.com/debby0330/aqi-analysis/internal/domain"
)

type MockPoint struct {
	In  domain.GeodeticPoint
	Out domain.ProjectedPoint
}

// MockProjector returns scripted projections for service tests. Points
// without a script entry fail with a TransformError, which doubles as the
// failure-injection path.
type MockProjector struct {
	m map[domain.GeodeticPoint]domain.ProjectedPoint
}

func NewMockProjector(points []MockPoint) *MockProjector {
	m := make(map[domain.GeodeticPoint]domain.ProjectedPoint, len(points))
	for _, p := range points {
		m[p.In] = p.Out
	}
	return &MockProjector{m: m}
}

func (p *MockProjector) Project(g domain.GeodeticPoint) (domain.ProjectedPoint, error) {
	out, ok := p.m[g]
	if !ok {
		return domain.ProjectedPoint{}, &TransformError{Point: g, Reason: "no scripted projection"}
	}
	return out, nil
}
