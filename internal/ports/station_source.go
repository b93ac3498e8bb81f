package ports

import "context"

// RawStation carries one upstream record with every field still in its
// published text form. Nothing is parsed here; the snapshot service owns
// coercion and placeholder defaults.
type RawStation struct {
	SiteID      string
	SiteName    string
	County      string
	AQI         string
	Pollutant   string
	Status      string
	PublishTime string
	Latitude    string
	Longitude   string
}

// Port: a boundary for fetching the current readings of every monitoring
// station.
type StationSource interface {
	// FetchStations returns one record per station, in feed order.
	FetchStations(ctx context.Context) ([]RawStation, error)
}
