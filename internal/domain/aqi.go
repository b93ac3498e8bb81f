package domain

import (
	"strconv"
	"strings"
)

// AQILevel is one display tier of the air-quality index.
type AQILevel struct {
	Color string
	Label string
}

var (
	LevelGood      = AQILevel{Color: "#00E400", Label: "good"}
	LevelModerate  = AQILevel{Color: "#FFFF00", Label: "moderate"}
	LevelUnhealthy = AQILevel{Color: "#FF0000", Label: "unhealthy"}

	// LevelAbnormal covers readings that are not plain integers: missing
	// values, "N/A" placeholders, instrument garbage.
	LevelAbnormal = AQILevel{Color: "#808080", Label: "abnormal data"}
)

// ClassifyAQI maps a raw AQI reading to its display tier. Bounds are
// inclusive and the first match wins. Every input yields a tier: anything
// unparseable is LevelAbnormal, never an error.
func ClassifyAQI(raw string) AQILevel {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return LevelAbnormal
	}

	switch {
	case v <= 50:
		return LevelGood
	case v <= 100:
		return LevelModerate
	default:
		return LevelUnhealthy
	}
}
