package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/debby0330/aqi-analysis/internal/domain"
	"github.com/debby0330/aqi-analysis/internal/platform/obs"
)

// Column order matches the established dataset layout. Downstream Excel
// users rely on both the Chinese header text and the UTF-8 BOM.
var csvHeader = []string{
	"測站名稱", "縣市", "AQI", "等級", "狀態", "主要污染物",
	"緯度", "經度", "距離台北車站(公里)", "更新時間",
}

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Export writes the snapshot to path as UTF-8 with BOM, creating the parent
// directory if needed. Every station appears, including those without
// coordinates; a nil distance becomes an empty cell.
func (e *CSVExporter) Export(ctx context.Context, stations []domain.Station, path string) (err error) {
	defer obs.Time(ctx, "csv.Export")(&err)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}
	defer f.Close()

	// The encoder emits the BOM ahead of the first write.
	bom := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(bom)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("export csv: write header: %w", err)
	}

	for _, st := range stations {
		if err := w.Write(csvRow(st)); err != nil {
			return fmt.Errorf("export csv: write row for %q: %w", st.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export csv: flush: %w", err)
	}
	if err := bom.Close(); err != nil {
		return fmt.Errorf("export csv: finalize encoding: %w", err)
	}

	return nil
}

func csvRow(st domain.Station) []string {
	distance := ""
	if st.DistanceKm != nil {
		distance = strconv.FormatFloat(*st.DistanceKm, 'f', 2, 64)
	}

	return []string{
		st.Name,
		st.County,
		st.AQI,
		domain.ClassifyAQI(st.AQI).Label,
		st.Status,
		st.Pollutant,
		strconv.FormatFloat(st.Location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(st.Location.Longitude, 'f', -1, 64),
		distance,
		st.PublishedAt,
	}
}
