package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mhollis/serene/internal/constants"
	serrors "github.com/mhollis/serene/internal/errors"
)

func TestOSMGeocode(t *testing.T) {
	t.Run("resolves a location", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "Berlin" {
				t.Errorf("q param = %q, want Berlin", got)
			}
			if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "serene/") {
				t.Errorf("User-Agent = %q, want serene/<version>", ua)
			}
			fmt.Fprint(w, `[{"lat": "52.5170365", "lon": "13.3888599"}]`)
		}))
		defer server.Close()

		p := NewOSMProvider()
		p.nominatimBaseURL = server.URL

		got, err := p.Geocode(context.Background(), "Berlin")
		if err != nil {
			t.Fatalf("Geocode() returned unexpected error: %v", err)
		}
		if got.Lat != 52.5170365 || got.Lng != 13.3888599 {
			t.Errorf("Geocode() = %+v", got)
		}
	})

	t.Run("empty result list is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		}))
		defer server.Close()

		p := NewOSMProvider()
		p.nominatimBaseURL = server.URL

		_, err := p.Geocode(context.Background(), "nowhere at all")
		if !serrors.IsKind(err, serrors.KindNotFound) {
			t.Errorf("Geocode() error = %v, want not-found kind", err)
		}
	})

	t.Run("non-numeric coordinates are a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"lat": "not-a-number", "lon": "13.38"}]`)
		}))
		defer server.Close()

		p := NewOSMProvider()
		p.nominatimBaseURL = server.URL

		_, err := p.Geocode(context.Background(), "Berlin")
		if !serrors.IsKind(err, serrors.KindProvider) {
			t.Errorf("Geocode() error = %v, want provider kind", err)
		}
	})
}

func TestOSMSearchNearby(t *testing.T) {
	t.Run("maps overpass elements to facilities", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			fmt.Fprint(w, `{"elements": [
				{"type": "node", "id": 101, "lat": 52.51, "lon": 13.4,
				 "tags": {"name": "Charité", "amenity": "hospital", "phone": "+49 30 1234",
				          "addr:housenumber": "1", "addr:street": "Chariteplatz", "addr:city": "Berlin"}},
				{"type": "node", "id": 102, "lat": 52.52, "lon": 13.41,
				 "tags": {"amenity": "pharmacy"}}
			]}`)
		}))
		defer server.Close()

		p := NewOSMProvider()
		p.overpassBaseURL = server.URL

		got, err := p.SearchNearby(context.Background(), coords(52.52, 13.405), 5000)
		if err != nil {
			t.Fatalf("SearchNearby() returned unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("SearchNearby() returned %d facilities, want 2", len(got))
		}

		hospital := got[0]
		if hospital.Name != "Charité" {
			t.Errorf("name = %q, want Charité", hospital.Name)
		}
		if !hospital.HasKind(constants.KindHospital) {
			t.Error("first facility missing hospital kind")
		}
		if hospital.Address != "1 Chariteplatz Berlin" {
			t.Errorf("address = %q, want composed from addr tags", hospital.Address)
		}
		if hospital.ExternalID != "osm-node-101" {
			t.Errorf("external id = %q, want osm-node-101", hospital.ExternalID)
		}
		if hospital.Phone != "+49 30 1234" {
			t.Errorf("phone = %q", hospital.Phone)
		}

		unnamed := got[1]
		if unnamed.Name != "Unnamed facility" {
			t.Errorf("fallback name = %q, want Unnamed facility", unnamed.Name)
		}
		if !unnamed.HasKind(constants.KindPharmacy) {
			t.Error("second facility missing pharmacy kind")
		}
	})

	t.Run("http failure is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		p := NewOSMProvider()
		p.overpassBaseURL = server.URL

		_, err := p.SearchNearby(context.Background(), coords(52.52, 13.405), 5000)
		if !serrors.IsKind(err, serrors.KindProvider) {
			t.Errorf("SearchNearby() error = %v, want provider kind", err)
		}
	})
}

func TestNormalizeOSMTags(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want constants.FacilityKind
	}{
		{"hospital", map[string]string{"amenity": "hospital"}, constants.KindHospital},
		{"clinic", map[string]string{"amenity": "clinic"}, constants.KindMedicalCenter},
		{"doctors", map[string]string{"amenity": "doctors"}, constants.KindDoctor},
		{"pharmacy", map[string]string{"amenity": "pharmacy"}, constants.KindPharmacy},
		{"psychology", map[string]string{"healthcare": "psychology"}, constants.KindMentalHealth},
		{"dentist", map[string]string{"healthcare": "dentist"}, constants.KindDentist},
		{"physiotherapist", map[string]string{"healthcare": "physiotherapist"}, constants.KindPhysiotherapy},
		{"unknown healthcare tag falls back", map[string]string{"healthcare": "blood_donation"}, constants.KindHealthcare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kinds := normalizeOSMTags(tt.tags)
			found := false
			for _, k := range kinds {
				if k == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("normalizeOSMTags(%v) = %v, want to contain %v", tt.tags, kinds, tt.want)
			}
		})
	}
}
