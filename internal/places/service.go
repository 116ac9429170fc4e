package places

import (
	"context"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/mhollis/serene/internal/constants"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/geo"
	"github.com/mhollis/serene/internal/logger"
	"github.com/mhollis/serene/internal/models"
	"github.com/mhollis/serene/internal/validation"
)

// Service is the provider-agnostic location search facade. Distance ranking,
// deduplication, capping and classification all happen here, never inside an
// adapter.
type Service struct {
	provider Provider

	// generation guards against stale results: each search bumps it, and a
	// search that finishes after being superseded discards its results.
	generation atomic.Uint64
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// SelectProvider picks the concrete backend once at startup: the commercial
// provider when an API key is available, otherwise the open-data fallback.
func SelectProvider(name constants.ProviderName, apiKey string) Provider {
	switch name {
	case constants.ProviderGoogle:
		return NewGoogleProvider(apiKey)
	case constants.ProviderOSM:
		return NewOSMProvider()
	default:
		if apiKey != "" {
			return NewGoogleProvider(apiKey)
		}
		return NewOSMProvider()
	}
}

// ProviderName returns the name of the selected backend
func (s *Service) ProviderName() string {
	return s.provider.Name()
}

// Cancel invalidates any search still in flight, for when the user closes
// the panel that initiated it
func (s *Service) Cancel() {
	s.generation.Add(1)
}

// Geocode resolves a free-text location to coordinates
func (s *Service) Geocode(ctx context.Context, query string) (models.Coordinates, error) {
	coords, err := s.provider.Geocode(ctx, query)
	if err != nil {
		return models.Coordinates{}, err
	}
	if err := validation.ValidateCoordinates(coords); err != nil {
		return models.Coordinates{}, serrors.New(serrors.KindProvider, "provider returned invalid coordinates: %v", err)
	}
	return coords, nil
}

// SearchNearby returns healthcare facilities around the center, deduplicated,
// ranked ascending by great-circle distance and capped at the result limit.
// It returns either the full ranked list or an error, never a partial list.
// A search superseded by a newer one (or by Cancel) discards its results.
func (s *Service) SearchNearby(ctx context.Context, center models.Coordinates, radiusM int) ([]models.Facility, error) {
	if radiusM <= 0 {
		radiusM = constants.DefaultSearchRadiusM
	}
	gen := s.generation.Add(1)

	raw, err := s.provider.SearchNearby(ctx, center, radiusM)
	if err != nil {
		return nil, err
	}

	if s.generation.Load() != gen {
		logger.Debug("Discarding superseded facility search", "generation", gen)
		return nil, serrors.New(serrors.KindNotFound, "search superseded")
	}

	ranked := rank(center, raw)
	logger.Info("Facility search complete", "provider", s.provider.Name(), "results", len(ranked))
	return ranked, nil
}

func rank(center models.Coordinates, raw []models.Facility) []models.Facility {
	seen := map[string]bool{}
	facilities := []models.Facility{}
	for _, f := range raw {
		if !IsHealthcare(f) {
			continue
		}
		if f.ExternalID != "" && seen[f.ExternalID] {
			continue
		}
		seen[f.ExternalID] = true
		f.DistanceKm = geo.DistanceKm(center, f.Coords)
		facilities = append(facilities, f)
	}

	sort.SliceStable(facilities, func(i, j int) bool {
		return facilities[i].DistanceKm < facilities[j].DistanceKm
	})

	if len(facilities) > constants.MaxSearchResults {
		facilities = facilities[:constants.MaxSearchResults]
	}
	return facilities
}

// DirectionsURL builds a Google Maps directions link from an origin to a
// facility, usable regardless of which backend produced the result
func DirectionsURL(origin models.Coordinates, f models.Facility) string {
	return "https://www.google.com/maps/dir/?api=1" +
		"&origin=" + coordParam(origin) +
		"&destination=" + coordParam(f.Coords)
}

func coordParam(c models.Coordinates) string {
	return strconv.FormatFloat(c.Lat, 'f', 6, 64) + "," + strconv.FormatFloat(c.Lng, 'f', 6, 64)
}
