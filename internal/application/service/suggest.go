package service

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/address-lookup/internal/domain"
)

// Suggest autocompletes a partial postcode. Residential matches come first
// and mask external suggestions for the same postcode.
func (s *Service) Suggest(ctx context.Context, partial string) []domain.Suggestion {
	key := domain.NormalizePostcode(partial)
	if len(key) < s.limits.SuggestMinLength {
		return []domain.Suggestion{}
	}

	if cached, ok := s.caches.Suggestions.Get(key); ok {
		return cached
	}

	var (
		g        errgroup.Group
		local    []domain.ResidentialAddress
		external []string
		failed   atomic.Bool
	)
	g.Go(func() error {
		rows, err := s.residential.FindByPostcodePrefix(ctx, key, s.limits.SuggestLocal)
		if err != nil {
			failed.Store(true)
			s.logger.Error("Residential prefix search failed", zap.String("partial", key), zap.Error(err))
			return nil
		}
		local = rows
		return nil
	})
	g.Go(func() error {
		pcs, err := s.resolver.Autocomplete(ctx, key, s.limits.SuggestExternal)
		if err != nil {
			failed.Store(true)
			s.logger.Warn("Postcode autocomplete failed", zap.String("partial", key), zap.Error(err))
			return nil
		}
		if len(pcs) > s.limits.SuggestExternal {
			pcs = pcs[:s.limits.SuggestExternal]
		}
		external = pcs
		return nil
	})
	_ = g.Wait()

	merged := make([]domain.Suggestion, 0, len(local)+len(external))
	for _, r := range local {
		merged = append(merged, domain.Suggestion{Postcode: r.Postcode, Address: r.FullAddress})
	}
	for _, pc := range external {
		merged = append(merged, domain.Suggestion{Postcode: pc, Address: pc})
	}

	out := dedupSuggestions(merged, s.limits.SuggestMax)
	if !failed.Load() {
		s.caches.Suggestions.Put(key, out)
	}
	return out
}

func dedupSuggestions(in []domain.Suggestion, limit int) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, sg := range in {
		k := domain.NormalizePostcode(sg.Postcode)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, sg)
		if len(out) == limit {
			break
		}
	}
	return out
}
