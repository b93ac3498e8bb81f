package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/ports"
)

// SnapshotHolder keeps the latest built snapshot for the HTTP server.
// Refresh replaces the snapshot atomically and readers get copies, so the
// refresh ticker and request handlers never share a slice. A failed refresh
// keeps the previous snapshot serving.
type SnapshotHolder struct {
	source  ports.StationSource
	builder *SnapshotBuilder

	mu          sync.RWMutex
	stations    []domain.Station
	refreshedAt time.Time
}

func NewSnapshotHolder(source ports.StationSource, builder *SnapshotBuilder) *SnapshotHolder {
	return &SnapshotHolder{source: source, builder: builder}
}

// Refresh fetches the feed and swaps in the rebuilt snapshot.
func (h *SnapshotHolder) Refresh(ctx context.Context) error {
	records, err := h.source.FetchStations(ctx)
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}

	stations := h.builder.Build(ctx, records)

	h.mu.Lock()
	h.stations = stations
	h.refreshedAt = time.Now()
	h.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the current stations and the time of the last
// successful refresh. The zero time means no refresh has succeeded yet.
func (h *SnapshotHolder) Snapshot() ([]domain.Station, time.Time) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]domain.Station, len(h.stations))
	copy(out, h.stations)
	return out, h.refreshedAt
}
