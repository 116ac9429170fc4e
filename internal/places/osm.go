package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mhollis/serene/internal/constants"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/models"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"
	defaultOverpassBaseURL  = "https://overpass-api.de"
)

// OSMProvider is the open-data fallback: Nominatim for geocoding and the
// Overpass API for nearby healthcare nodes. It needs no API key.
type OSMProvider struct {
	nominatimBaseURL string
	overpassBaseURL  string
	client           *http.Client
}

func NewOSMProvider() *OSMProvider {
	return &OSMProvider{
		nominatimBaseURL: defaultNominatimBaseURL,
		overpassBaseURL:  defaultOverpassBaseURL,
		client:           &http.Client{Timeout: 20 * time.Second},
	}
}

func (p *OSMProvider) Name() string {
	return string(constants.ProviderOSM)
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (p *OSMProvider) Geocode(ctx context.Context, query string) (models.Coordinates, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.nominatimBaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return models.Coordinates{}, serrors.Wrap(serrors.KindProvider, err)
	}
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("User-Agent", constants.AppName+"/"+constants.Version)

	resp, err := p.client.Do(req)
	if err != nil {
		return models.Coordinates{}, serrors.Wrap(serrors.KindProvider, fmt.Errorf("geocoding request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinates{}, serrors.New(serrors.KindProvider, "geocoding returned HTTP %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinates{}, serrors.Wrap(serrors.KindProvider, fmt.Errorf("malformed geocoding response: %w", err))
	}
	if len(results) == 0 {
		return models.Coordinates{}, serrors.New(serrors.KindNotFound, "no match for location %q", query)
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return models.Coordinates{}, serrors.New(serrors.KindProvider, "geocoding returned non-numeric coordinates")
	}
	return models.Coordinates{Lat: lat, Lng: lng}, nil
}

type overpassResponse struct {
	Elements []struct {
		Type   string            `json:"type"`
		ID     int64             `json:"id"`
		Lat    float64           `json:"lat"`
		Lon    float64           `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

func (p *OSMProvider) SearchNearby(ctx context.Context, center models.Coordinates, radiusM int) ([]models.Facility, error) {
	query := fmt.Sprintf(`[out:json];
(
  node["amenity"="hospital"](around:%[1]d,%[2]f,%[3]f);
  node["amenity"="clinic"](around:%[1]d,%[2]f,%[3]f);
  node["healthcare"](around:%[1]d,%[2]f,%[3]f);
  node["amenity"="doctors"](around:%[1]d,%[2]f,%[3]f);
  node["amenity"="pharmacy"](around:%[1]d,%[2]f,%[3]f);
);
out center 50;`, radiusM, center.Lat, center.Lng)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.overpassBaseURL+"/api/interpreter", strings.NewReader(query))
	if err != nil {
		return nil, serrors.Wrap(serrors.KindProvider, err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.KindProvider, fmt.Errorf("places request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serrors.New(serrors.KindProvider, "places search returned HTTP %d", resp.StatusCode)
	}

	var data overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, serrors.Wrap(serrors.KindProvider, fmt.Errorf("malformed places response: %w", err))
	}

	var facilities []models.Facility
	for _, el := range data.Elements {
		lat, lng := el.Lat, el.Lon
		if el.Center != nil {
			lat, lng = el.Center.Lat, el.Center.Lon
		}

		name := el.Tags["name"]
		if name == "" {
			name = "Unnamed facility"
		}

		facilities = append(facilities, models.Facility{
			Name:       name,
			Address:    osmAddress(el.Tags),
			Kinds:      normalizeOSMTags(el.Tags),
			Coords:     models.Coordinates{Lat: lat, Lng: lng},
			ExternalID: fmt.Sprintf("osm-%s-%d", el.Type, el.ID),
			Phone:      el.Tags["phone"],
		})
	}

	return facilities, nil
}

func osmAddress(tags map[string]string) string {
	if full := tags["addr:full"]; full != "" {
		return full
	}
	parts := []string{}
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// normalizeOSMTags maps OSM amenity/healthcare tags into the shared kind
// vocabulary. Anything surviving the Overpass healthcare query but matching
// no specific kind is tagged generic healthcare.
func normalizeOSMTags(tags map[string]string) []constants.FacilityKind {
	var kinds []constants.FacilityKind

	if tags["amenity"] == "hospital" {
		kinds = append(kinds, constants.KindHospital)
	}
	if tags["amenity"] == "clinic" || tags["healthcare"] == "clinic" {
		kinds = append(kinds, constants.KindMedicalCenter)
	}
	if tags["amenity"] == "doctors" {
		kinds = append(kinds, constants.KindDoctor)
	}
	if tags["amenity"] == "pharmacy" {
		kinds = append(kinds, constants.KindPharmacy)
	}
	if hc := tags["healthcare"]; strings.Contains(hc, "psychology") || strings.Contains(hc, "psychiatry") {
		kinds = append(kinds, constants.KindMentalHealth)
	}
	if tags["healthcare"] == "dentist" || tags["amenity"] == "dentist" {
		kinds = append(kinds, constants.KindDentist)
	}
	if tags["healthcare"] == "physiotherapist" {
		kinds = append(kinds, constants.KindPhysiotherapy)
	}

	if len(kinds) == 0 {
		kinds = append(kinds, constants.KindHealthcare)
	}
	return kinds
}
