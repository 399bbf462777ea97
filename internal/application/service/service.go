package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/observability"
	"github.com/TemirB/address-lookup/internal/upstream/places"
	"github.com/TemirB/address-lookup/internal/upstream/postcodes"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Resolver interface {
	Resolve(ctx context.Context, postcode string) (postcodes.Geography, error)
	Autocomplete(ctx context.Context, partial string, limit int) ([]string, error)
}

type Places interface {
	Nearby(ctx context.Context, lat, lng float64, radiusMeters, limit int) ([]places.Place, error)
}

type GeographyCache interface {
	Get(key string) (postcodes.Geography, bool)
	Put(key string, v postcodes.Geography)
}

type PlacesCache interface {
	Get(key string) ([]domain.AddressSummary, bool)
	Put(key string, v []domain.AddressSummary)
}

type SuggestionCache interface {
	Get(key string) ([]domain.Suggestion, bool)
	Put(key string, v []domain.Suggestion)
}

type Caches struct {
	Geography   GeographyCache
	Places      PlacesCache
	Suggestions SuggestionCache
}

// Limits shapes the upstream and store queries.
type Limits struct {
	PlacesRadius     int
	PlacesLimit      int
	ResidentialLimit int
	SuggestLocal     int
	SuggestExternal  int
	SuggestMax       int
	SuggestMinLength int
}

func DefaultLimits() Limits {
	return Limits{
		PlacesRadius:     250,
		PlacesLimit:      12,
		ResidentialLimit: 15,
		SuggestLocal:     3,
		SuggestExternal:  3,
		SuggestMax:       5,
		SuggestMinLength: 2,
	}
}

type Service struct {
	caches      Caches
	resolver    Resolver
	places      Places
	residential domain.ResidentialRepository
	limits      Limits
	validate    *validator.Validate
	now         func() time.Time
	logger      *zap.Logger
	metrics     observability.Metrics
}

func NewService(
	caches Caches,
	resolver Resolver,
	places Places,
	residential domain.ResidentialRepository,
	limits Limits,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Service {
	return &Service{
		caches:      caches,
		resolver:    resolver,
		places:      places,
		residential: residential,
		limits:      limits,
		validate:    newValidator(),
		now:         time.Now,
		logger:      logger,
		metrics:     metrics,
	}
}
