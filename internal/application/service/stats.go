package service

import "time"

type LookupSource string

const (
	SourceCache    LookupSource = "cache"
	SourceUpstream LookupSource = "upstream"
)

// LookupStats records where geography and places came from and the time
// spent on each leg of a lookup.
type LookupStats struct {
	Source       LookupSource
	PlacesSource LookupSource
	ResolveMs    float64
	PlacesMs     float64
	DBMs         float64
}

func convertToMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
