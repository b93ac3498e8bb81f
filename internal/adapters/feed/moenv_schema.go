package feed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/debby0330/aqi-analysis/internal/ports"
)

// The open-data platform is not consistent about typing: numeric fields
// arrive quoted on some datasets and bare on others, and null shows up where
// a station has no reading. flexString folds all of it to text; parsing
// happens later, in the snapshot service.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	b := bytes.TrimSpace(data)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return fmt.Errorf("decode quoted field: %w", err)
		}
		*s = flexString(v)
		return nil
	}

	// Bare numbers and booleans keep their literal text.
	*s = flexString(b)
	return nil
}

type stationRecord struct {
	SiteID      flexString `json:"siteid"`
	SiteName    flexString `json:"sitename"`
	County      flexString `json:"county"`
	AQI         flexString `json:"aqi"`
	Pollutant   flexString `json:"pollutant"`
	Status      flexString `json:"status"`
	PublishTime flexString `json:"publishtime"`
	Latitude    flexString `json:"latitude"`
	Longitude   flexString `json:"longitude"`
}

// Envelope shapes observed on the v2 API: {"records": [...]} on current
// deployments, {"value": [...]} on older ones. Bare arrays are handled in
// decodeStations before this struct is consulted.
type recordEnvelope struct {
	Value   []stationRecord `json:"value"`
	Records []stationRecord `json:"records"`
}

var errUnexpectedPayload = errors.New("unexpected payload shape (no record list)")

func decodeStations(data []byte) ([]stationRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errUnexpectedPayload
	}

	if trimmed[0] == '[' {
		var records []stationRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode station list: %w", err)
		}
		return records, nil
	}

	var env recordEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode station envelope: %w", err)
	}

	switch {
	case env.Records != nil:
		return env.Records, nil
	case env.Value != nil:
		return env.Value, nil
	}

	return nil, errUnexpectedPayload
}

func (r stationRecord) toRaw() ports.RawStation {
	return ports.RawStation{
		SiteID:      string(r.SiteID),
		SiteName:    string(r.SiteName),
		County:      string(r.County),
		AQI:         string(r.AQI),
		Pollutant:   string(r.Pollutant),
		Status:      string(r.Status),
		PublishTime: string(r.PublishTime),
		Latitude:    string(r.Latitude),
		Longitude:   string(r.Longitude),
	}
}
