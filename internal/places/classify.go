package places

import (
	"github.com/mhollis/serene/internal/constants"
	"github.com/mhollis/serene/internal/models"
)

// kindPriority orders facility kinds for display classification. The first
// kind a facility carries wins.
var kindPriority = []struct {
	kind  constants.FacilityKind
	label string
}{
	{constants.KindHospital, "Hospital"},
	{constants.KindDoctor, "Medical Center"},
	{constants.KindMedicalCenter, "Medical Center"},
	{constants.KindPharmacy, "Pharmacy"},
	{constants.KindMentalHealth, "Mental Health"},
	{constants.KindDentist, "Dental"},
	{constants.KindPhysiotherapy, "Physical Therapy"},
}

// Classify maps a facility's normalized kinds to a single human label
func Classify(f models.Facility) string {
	for _, p := range kindPriority {
		if f.HasKind(p.kind) {
			return p.label
		}
	}
	return "Healthcare"
}

// MarkerColor returns the map marker color for a facility, exposed as data
// for any visual layer
func MarkerColor(f models.Facility) string {
	switch {
	case f.HasKind(constants.KindHospital):
		return constants.MarkerColorHospital
	case f.HasKind(constants.KindDoctor), f.HasKind(constants.KindMedicalCenter):
		return constants.MarkerColorDoctor
	case f.HasKind(constants.KindMentalHealth):
		return constants.MarkerColorMentalHealth
	default:
		return constants.MarkerColorDefault
	}
}

// IsHealthcare reports whether the facility carries at least one recognized
// healthcare kind. Providers only emit recognized kinds, so an empty kind
// set means the result is not a healthcare point of interest.
func IsHealthcare(f models.Facility) bool {
	return len(f.Kinds) > 0
}
