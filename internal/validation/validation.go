package validation

import (
	"github.com/mhollis/serene/internal/constants"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/models"
	"github.com/mhollis/serene/internal/utils"
)

// ValidateMoodEntry checks a mood entry before it is persisted. The entry is
// rejected, and the stored history left untouched, on any failure.
// The today parameter is the current date (YYYY-MM-DD) in the user's timezone.
func ValidateMoodEntry(entry models.MoodEntry, today string) error {
	if entry.Date == "" {
		return serrors.New(serrors.KindValidation, "date is required")
	}
	if !utils.ValidateDateFormat(entry.Date) {
		return serrors.New(serrors.KindValidation, "invalid date %q (expected YYYY-MM-DD)", entry.Date)
	}
	if entry.Date > today {
		return serrors.New(serrors.KindValidation, "date %s is in the future", entry.Date)
	}
	if entry.Rating < constants.MinMoodRating || entry.Rating > constants.MaxMoodRating {
		return serrors.New(serrors.KindValidation, "rating must be between %d and %d",
			constants.MinMoodRating, constants.MaxMoodRating)
	}
	return nil
}

// ValidateCoordinates checks that a point is within WGS84 bounds.
func ValidateCoordinates(c models.Coordinates) error {
	if c.Lat < -90 || c.Lat > 90 {
		return serrors.New(serrors.KindValidation, "latitude %f out of range [-90, 90]", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return serrors.New(serrors.KindValidation, "longitude %f out of range [-180, 180]", c.Lng)
	}
	return nil
}

// ValidateSettings checks settings values before they are saved.
func ValidateSettings(s models.Settings) error {
	if !utils.ValidateTimezone(s.Timezone) {
		return serrors.New(serrors.KindValidation, "invalid timezone %q", s.Timezone)
	}
	switch constants.ProviderName(s.Provider) {
	case constants.ProviderAuto, constants.ProviderGoogle, constants.ProviderOSM, "":
	default:
		return serrors.New(serrors.KindValidation, "invalid provider %q (expected auto, google or osm)", s.Provider)
	}
	if s.SearchRadiusM <= 0 {
		return serrors.New(serrors.KindValidation, "search radius must be positive")
	}
	return nil
}
