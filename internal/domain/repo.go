package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a write that collides with an existing row.
	ErrConflict = errors.New("conflict")
)

//go:generate mockgen -source internal/domain/repo.go -destination=internal/domain/mocks/repo_mock.go -package=mocks

type ResidentialRepository interface {
	FindByPostcode(ctx context.Context, normalized string, limit int) ([]ResidentialAddress, error)
	FindByPostcodePrefix(ctx context.Context, normalizedPrefix string, limit int) ([]ResidentialAddress, error)
	Insert(ctx context.Context, addr *ResidentialAddress) error
}

type IdentityRepository interface {
	FindByAPIKey(ctx context.Context, key string) (*Identity, error)
	UpsertAPIKey(ctx context.Context, u UserKey, defaultRateLimit int) error
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UsageRepository interface {
	InsertUsage(ctx context.Context, rec UsageRecord) error
}
