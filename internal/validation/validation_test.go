package validation

import (
	"testing"

	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/models"
)

const today = "2026-09-01"

func TestValidateMoodEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.MoodEntry
		wantErr bool
	}{
		{"valid entry", models.MoodEntry{Date: "2026-09-01", Rating: 7}, false},
		{"valid past entry", models.MoodEntry{Date: "2026-08-15", Rating: 1}, false},
		{"rating at upper bound", models.MoodEntry{Date: "2026-09-01", Rating: 10}, false},
		{"missing date", models.MoodEntry{Rating: 7}, true},
		{"malformed date", models.MoodEntry{Date: "01/09/2026", Rating: 7}, true},
		{"future date", models.MoodEntry{Date: "2026-09-02", Rating: 7}, true},
		{"rating too low", models.MoodEntry{Date: "2026-09-01", Rating: 0}, true},
		{"rating too high", models.MoodEntry{Date: "2026-09-01", Rating: 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMoodEntry(tt.entry, today)
			if tt.wantErr {
				if !serrors.IsKind(err, serrors.KindValidation) {
					t.Errorf("ValidateMoodEntry(%+v) error = %v, want validation kind", tt.entry, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateMoodEntry(%+v) returned unexpected error: %v", tt.entry, err)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		coords  models.Coordinates
		wantErr bool
	}{
		{"origin", models.Coordinates{}, false},
		{"poles", models.Coordinates{Lat: 90, Lng: 180}, false},
		{"negative bounds", models.Coordinates{Lat: -90, Lng: -180}, false},
		{"latitude too high", models.Coordinates{Lat: 90.1}, true},
		{"latitude too low", models.Coordinates{Lat: -90.1}, true},
		{"longitude too high", models.Coordinates{Lng: 180.1}, true},
		{"longitude too low", models.Coordinates{Lng: -180.1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinates(tt.coords)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinates(%+v) error = %v, wantErr %v", tt.coords, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings models.Settings
		wantErr  bool
	}{
		{"defaults", models.Settings{Timezone: "Local", Provider: "auto", SearchRadiusM: 10000}, false},
		{"iana timezone", models.Settings{Timezone: "Europe/Berlin", Provider: "osm", SearchRadiusM: 5000}, false},
		{"bad timezone", models.Settings{Timezone: "Mars/Olympus", Provider: "auto", SearchRadiusM: 10000}, true},
		{"bad provider", models.Settings{Timezone: "Local", Provider: "bing", SearchRadiusM: 10000}, true},
		{"zero radius", models.Settings{Timezone: "Local", Provider: "auto"}, true},
		{"negative radius", models.Settings{Timezone: "Local", Provider: "auto", SearchRadiusM: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSettings(tt.settings)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSettings(%+v) error = %v, wantErr %v", tt.settings, err, tt.wantErr)
			}
		})
	}
}
