package feed

import (
	"context"

	"github.com/debby0330/aqi-analysis/internal/ports"
)

// MockStationSource serves a canned record set, or a scripted error, for
// holder and route tests.
type MockStationSource struct {
	Records []ports.RawStation
	Err     error
}

func (m *MockStationSource) FetchStations(ctx context.Context) ([]ports.RawStation, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]ports.RawStation, len(m.Records))
	copy(out, m.Records)
	return out, nil
}
