package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/upstream"
	"github.com/TemirB/address-lookup/internal/upstream/places"
	"github.com/TemirB/address-lookup/internal/upstream/postcodes"
)

var ErrEmptyPostcode = errors.New("postcode is required")

// LookupPostcode resolves a full postcode and returns places-derived summaries
// followed by residential ones. Only resolution failures are returned; places
// and residential failures shrink the result instead.
func (s *Service) LookupPostcode(ctx context.Context, raw string) ([]domain.AddressSummary, LookupStats, error) {
	var st LookupStats

	key := domain.NormalizePostcode(raw)
	if key == "" {
		return nil, st, ErrEmptyPostcode
	}

	geo, err := s.resolve(ctx, key, &st)
	if err != nil {
		s.logger.Warn("Can't resolve postcode",
			zap.String("postcode", key),
			zap.Int("status", upstream.StatusCode(err)),
			zap.Error(err),
		)
		return nil, st, err
	}

	var (
		g           errgroup.Group
		fromPlaces  []domain.AddressSummary
		residential []domain.ResidentialAddress
	)
	g.Go(func() error {
		fromPlaces = s.nearby(ctx, key, geo, &st)
		return nil
	})
	g.Go(func() error {
		t0 := time.Now()
		rows, err := s.residential.FindByPostcode(ctx, key, s.limits.ResidentialLimit)
		st.DBMs = convertToMs(t0)
		if err != nil {
			s.logger.Error("Residential lookup failed",
				zap.String("postcode", key),
				zap.Error(err),
			)
			return nil
		}
		residential = rows
		return nil
	})
	_ = g.Wait()

	out := make([]domain.AddressSummary, 0, len(fromPlaces)+len(residential))
	seen := make(map[string]struct{}, cap(out))
	add := func(a domain.AddressSummary) {
		if _, ok := seen[a.ID]; ok {
			return
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	for _, a := range fromPlaces {
		add(a)
	}
	for _, r := range residential {
		add(r.Summary())
	}

	s.metrics.ObserveLookup(string(st.Source), st.ResolveMs, st.PlacesMs, st.DBMs)
	s.logger.Info("Postcode looked up",
		zap.String("postcode", key),
		zap.String("source", string(st.Source)),
		zap.Int("places", len(fromPlaces)),
		zap.Int("residential", len(residential)),
		zap.Float64("resolve_ms", st.ResolveMs),
		zap.Float64("places_ms", st.PlacesMs),
		zap.Float64("db_ms", st.DBMs),
	)
	return out, st, nil
}

func (s *Service) resolve(ctx context.Context, key string, st *LookupStats) (postcodes.Geography, error) {
	t0 := time.Now()
	if geo, ok := s.caches.Geography.Get(key); ok {
		st.Source = SourceCache
		st.ResolveMs = convertToMs(t0)
		return geo, nil
	}

	geo, err := s.resolver.Resolve(ctx, key)
	st.Source = SourceUpstream
	st.ResolveMs = convertToMs(t0)
	if err != nil {
		return postcodes.Geography{}, err
	}
	s.caches.Geography.Put(key, geo)
	return geo, nil
}

func (s *Service) nearby(ctx context.Context, key string, geo postcodes.Geography, st *LookupStats) []domain.AddressSummary {
	t0 := time.Now()
	defer func() { st.PlacesMs = convertToMs(t0) }()

	if cached, ok := s.caches.Places.Get(key); ok {
		st.PlacesSource = SourceCache
		return cached
	}
	st.PlacesSource = SourceUpstream

	res, err := s.places.Nearby(ctx, geo.Latitude, geo.Longitude, s.limits.PlacesRadius, s.limits.PlacesLimit)
	if err != nil {
		if errors.Is(err, upstream.ErrNotConfigured) {
			s.logger.Debug("Places search not configured")
		} else {
			s.logger.Error("Places search failed",
				zap.String("postcode", key),
				zap.Error(err),
			)
		}
		return nil
	}

	out := make([]domain.AddressSummary, 0, len(res))
	for _, p := range res {
		out = append(out, placeSummary(p, geo))
	}
	s.caches.Places.Put(key, out)
	return out
}

func placeSummary(p places.Place, geo postcodes.Geography) domain.AddressSummary {
	var street string
	if i := strings.Index(p.Vicinity, ","); i >= 0 {
		street = strings.TrimSpace(p.Vicinity[:i])
	}
	return domain.AddressSummary{
		ID:            "gp_" + p.PlaceID,
		Type:          domain.SourceGooglePlace,
		Building:      p.Name,
		StreetAddress: street,
		Town:          geo.AdminDistrict,
		Postcode:      geo.Postcode,
		Address:       strings.TrimSpace(p.Vicinity + ", " + geo.Postcode),
	}
}
