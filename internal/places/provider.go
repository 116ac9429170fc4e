package places

import (
	"context"

	"github.com/mhollis/serene/internal/models"
)

// Provider is the location search capability. Exactly one implementation is
// selected at startup; business logic never branches on provider identity.
type Provider interface {
	// Name identifies the backend for logs and diagnostics
	Name() string

	// Geocode resolves a free-text location to coordinates. It fails with a
	// not-found error when the backend has no match and a provider error on
	// transport or parsing failures.
	Geocode(ctx context.Context, query string) (models.Coordinates, error)

	// SearchNearby returns raw healthcare points of interest around the
	// center. Results are unranked; the search service filters, deduplicates,
	// ranks and caps them.
	SearchNearby(ctx context.Context, center models.Coordinates, radiusM int) ([]models.Facility, error)
}
