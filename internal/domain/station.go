package domain

// Represents one monitoring-station reading, assembled once per run and not
// mutated afterwards. AQI keeps the raw upstream text ("32", "N/A") so the
// classifier sees exactly what was published; PublishedAt is likewise passed
// through unparsed. DistanceKm is nil when the station's coordinates could
// not be projected.
type Station struct {
	SiteID      string
	Name        string
	County      string
	AQI         string
	Pollutant   string
	Status      string
	Location    GeodeticPoint
	PublishedAt string
	DistanceKm  *float64
}
