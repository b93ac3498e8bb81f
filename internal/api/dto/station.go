package dto

import "time"

type StationResponse struct {
	SiteID      string   `json:"site_id"`
	Name        string   `json:"name"`
	County      string   `json:"county"`
	AQI         string   `json:"aqi"`
	Level       string   `json:"level"`
	Color       string   `json:"color"`
	Status      string   `json:"status"`
	Pollutant   string   `json:"pollutant"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	DistanceKm  *float64 `json:"distance_km"`
	PublishedAt string   `json:"published_at"`
}

type ListStationsResponse struct {
	Count    int               `json:"count"`
	Stations []StationResponse `json:"stations"`
}

type HealthResponse struct {
	Status      string     `json:"status"`
	Stations    int        `json:"stations"`
	RefreshedAt *time.Time `json:"refreshed_at"`
}
