package models

import "github.com/mhollis/serene/internal/constants"

// Coordinates is a WGS84 point
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Facility is a healthcare point of interest returned by a location provider
type Facility struct {
	Name       string
	Address    string
	Kinds      []constants.FacilityKind
	Rating     *float64
	Coords     Coordinates
	ExternalID string
	Phone      string
	DistanceKm float64 // from the search center, filled in by the search service
}

// HasKind reports whether the facility carries the given normalized kind
func (f Facility) HasKind(kind constants.FacilityKind) bool {
	for _, k := range f.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
