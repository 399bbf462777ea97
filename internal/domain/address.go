package domain

import (
	"strings"
	"time"
)

type SourceType string

const (
	SourceGooglePlace SourceType = "googlePlace"
	SourceResidential SourceType = "residential"
)

// AddressSummary is one candidate address returned to a lookup caller.
type AddressSummary struct {
	ID            string     `json:"Id"`
	Type          SourceType `json:"Type"`
	Building      string     `json:"Building"`
	StreetAddress string     `json:"StreetAddress"`
	Town          string     `json:"Town"`
	Postcode      string     `json:"Postcode"`
	Address       string     `json:"Address"`
	CreatedAt     *time.Time `json:"CreatedAt,omitempty"`
}

type ResidentialAddress struct {
	ID             string    `json:"id"`
	Postcode       string    `json:"postcode"`
	BuildingNumber string    `json:"buildingNumber"`
	StreetAddress  string    `json:"streetAddress"`
	Town           string    `json:"town"`
	FullAddress    string    `json:"fullAddress"`
	SubmittedBy    string    `json:"submittedBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Summary maps a stored row verbatim.
func (a ResidentialAddress) Summary() AddressSummary {
	created := a.CreatedAt
	return AddressSummary{
		ID:            a.ID,
		Type:          SourceResidential,
		Building:      a.BuildingNumber,
		StreetAddress: a.StreetAddress,
		Town:          a.Town,
		Postcode:      a.Postcode,
		Address:       a.FullAddress,
		CreatedAt:     &created,
	}
}

type Suggestion struct {
	Postcode string `json:"postcode"`
	Address  string `json:"address"`
}

// NormalizePostcode produces the lookup key form: uppercase, no whitespace.
// Display values keep their own spacing.
func NormalizePostcode(raw string) string {
	return strings.Join(strings.Fields(strings.ToUpper(raw)), "")
}
