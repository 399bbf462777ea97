package domain

import (
	"strings"
	"time"
)

type IdentityKind string

const (
	KindDemo   IdentityKind = "demo"
	KindAPIKey IdentityKind = "apiKey"
)

// Identity is resolved per request from the Authorization header.
type Identity struct {
	Kind           IdentityKind
	ID             string
	AllowedDomains []string
	RateLimit      int
}

func DemoIdentity() *Identity {
	return &Identity{Kind: KindDemo, ID: string(KindDemo)}
}

func (i *Identity) IsDemo() bool { return i == nil || i.Kind == KindDemo }

// AllowsHost reports whether host may call on behalf of this identity.
// An empty allow-list is unrestricted.
func (i *Identity) AllowsHost(host string) bool {
	if len(i.AllowedDomains) == 0 {
		return true
	}
	host = strings.ToLower(strings.TrimSpace(host))
	for _, d := range i.AllowedDomains {
		if strings.ToLower(strings.TrimSpace(d)) == host {
			return true
		}
	}
	return false
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AllowedDomains []string  `json:"allowedDomains"`
	RateLimit      int       `json:"rateLimit"`
	UsageCount     int64     `json:"usageCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserKey is the input of key generation/rotation.
type UserKey struct {
	UserID string
	Name   string
	Email  string
	APIKey string
}

// UserUpdate carries optional fields; nil means unchanged.
type UserUpdate struct {
	Name           *string   `json:"name"`
	Email          *string   `json:"email" validate:"omitempty,email"`
	AllowedDomains *[]string `json:"allowedDomains" validate:"omitempty,dive,hostname_rfc1123"`
	RateLimit      *int      `json:"rateLimit" validate:"omitempty,min=1"`
}

func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.AllowedDomains == nil && u.RateLimit == nil
}
