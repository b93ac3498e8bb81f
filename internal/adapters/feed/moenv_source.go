package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/debby0330/aqi-analysis/internal/platform/obs"
	"github.com/debby0330/aqi-analysis/internal/ports"
)

// DefaultBaseURL serves the aqx_p_432 dataset: the real-time AQI reading of
// every monitoring station, refreshed hourly by the ministry.
const DefaultBaseURL = "https://data.moenv.gov.tw/api/v2/aqx_p_432"

// The dataset holds on the order of a hundred stations; the default cap
// leaves ample headroom without paging.
const defaultLimit = 1000

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// MoenvSource implements ports.StationSource against the ministry's
// open-data API.
type MoenvSource struct {
	session *http.Client
	baseURL string
	apiKey  string
	limit   int
}

// NewMoenvSource returns a source bound to the given endpoint; pass
// DefaultBaseURL outside of tests. A limit of 0 or less selects the default
// record cap.
func NewMoenvSource(baseURL, apiKey string, limit int) (*MoenvSource, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("new moenv source: apiKey must be non-empty")
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	return &MoenvSource{
		session: &http.Client{Timeout: 30 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		limit:   limit,
	}, nil
}

// FetchStations downloads the current reading of every station in a single
// call. A failed call reports the error as-is; retrying is left to the next
// run or refresh tick.
func (s *MoenvSource) FetchStations(ctx context.Context) (_ []ports.RawStation, err error) {
	defer obs.Time(ctx, "moenv.FetchStations")(&err)

	req, err := s.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stations: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch stations: read payload: %w", err)
	}

	records, err := decodeStations(data)
	if err != nil {
		return nil, fmt.Errorf("fetch stations: %w", err)
	}

	out := make([]ports.RawStation, 0, len(records))
	for _, r := range records {
		out = append(out, r.toRaw())
	}

	return out, nil
}

func (s *MoenvSource) newRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("api_key", s.apiKey)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(s.limit))
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func (s *MoenvSource) do(req *http.Request) (*http.Response, error) {
	resp, err := s.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
