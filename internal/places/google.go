package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mhollis/serene/internal/constants"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/models"
)

const defaultGoogleBaseURL = "https://maps.googleapis.com"

// googleSearchTypes are the place types requested from the Nearby Search
// endpoint, one request per type
var googleSearchTypes = []string{"hospital", "doctor", "pharmacy", "health"}

// GoogleProvider talks to the Google Geocoding and Places Nearby Search
// web APIs
type GoogleProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleProvider(apiKey string) *GoogleProvider {
	return &GoogleProvider{
		apiKey:  apiKey,
		baseURL: defaultGoogleBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *GoogleProvider) Name() string {
	return string(constants.ProviderGoogle)
}

type googleGeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (p *GoogleProvider) Geocode(ctx context.Context, query string) (models.Coordinates, error) {
	params := url.Values{}
	params.Set("address", query)
	params.Set("key", p.apiKey)

	var resp googleGeocodeResponse
	if err := p.getJSON(ctx, "/maps/api/geocode/json", params, &resp); err != nil {
		return models.Coordinates{}, err
	}

	switch resp.Status {
	case "OK":
		if len(resp.Results) == 0 {
			return models.Coordinates{}, serrors.New(serrors.KindNotFound, "no match for location %q", query)
		}
		loc := resp.Results[0].Geometry.Location
		return models.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
	case "ZERO_RESULTS":
		return models.Coordinates{}, serrors.New(serrors.KindNotFound, "no match for location %q", query)
	default:
		return models.Coordinates{}, serrors.New(serrors.KindProvider, "geocoding failed with status %s", resp.Status)
	}
}

type googleNearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Vicinity string   `json:"vicinity"`
		Types    []string `json:"types"`
		Rating   *float64 `json:"rating"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		PlaceID              string `json:"place_id"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
	} `json:"results"`
}

func (p *GoogleProvider) SearchNearby(ctx context.Context, center models.Coordinates, radiusM int) ([]models.Facility, error) {
	var facilities []models.Facility

	for _, searchType := range googleSearchTypes {
		params := url.Values{}
		params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
		params.Set("radius", fmt.Sprintf("%d", radiusM))
		params.Set("type", searchType)
		params.Set("key", p.apiKey)

		var resp googleNearbyResponse
		if err := p.getJSON(ctx, "/maps/api/place/nearbysearch/json", params, &resp); err != nil {
			return nil, err
		}
		if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
			return nil, serrors.New(serrors.KindProvider, "places search failed with status %s", resp.Status)
		}

		for _, r := range resp.Results {
			facilities = append(facilities, models.Facility{
				Name:       r.Name,
				Address:    r.Vicinity,
				Kinds:      normalizeGoogleTypes(r.Types),
				Rating:     r.Rating,
				Coords:     models.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
				ExternalID: r.PlaceID,
				Phone:      r.FormattedPhoneNumber,
			})
		}
	}

	return facilities, nil
}

func (p *GoogleProvider) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return serrors.Wrap(serrors.KindProvider, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.KindProvider, fmt.Errorf("request to %s failed: %w", path, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return serrors.New(serrors.KindProvider, "request to %s returned HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return serrors.Wrap(serrors.KindProvider, fmt.Errorf("malformed response from %s: %w", path, err))
	}
	return nil
}

// normalizeGoogleTypes maps Google place type strings into the shared kind
// vocabulary. Unrecognized types are dropped; a result with no recognized
// kind is filtered out by the search service.
func normalizeGoogleTypes(types []string) []constants.FacilityKind {
	var kinds []constants.FacilityKind
	seen := map[constants.FacilityKind]bool{}

	add := func(k constants.FacilityKind) {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}

	for _, t := range types {
		switch t {
		case "hospital":
			add(constants.KindHospital)
		case "doctor":
			add(constants.KindDoctor)
		case "medical_center", "clinic":
			add(constants.KindMedicalCenter)
		case "pharmacy":
			add(constants.KindPharmacy)
		case "psychologist", "psychiatrist", "mental_health_counselor":
			add(constants.KindMentalHealth)
		case "dentist":
			add(constants.KindDentist)
		case "physiotherapist":
			add(constants.KindPhysiotherapy)
		case "health":
			add(constants.KindHealthcare)
		}
	}
	return kinds
}
