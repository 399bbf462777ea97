package domain

import "time"

type UsageStatus string

const (
	UsageSuccess UsageStatus = "success"
	UsageError   UsageStatus = "error"
)

const (
	EndpointPostcodeLookup = "postcode_lookup"
	EndpointSuggestions    = "suggestions"
	EndpointResidential    = "residential_address"
)

type UsageRecord struct {
	ID         string      `json:"id"`
	IdentityID string      `json:"identityId"`
	Endpoint   string      `json:"endpoint"`
	Status     UsageStatus `json:"status"`
	Timestamp  time.Time   `json:"timestamp"`
}
