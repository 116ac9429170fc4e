package constants

import "time"

// MoodBand represents a mood rating filter band
type MoodBand string

// FacilityKind represents a normalized healthcare facility category
type FacilityKind string

// ProviderName identifies a location search backend
type ProviderName string

const (
	AppName           = "serene"
	Version           = "v0.3.1"
	DefaultConfigPath = "~/.config/serene/serene.db"

	// DefaultKeyringUser is the keyring account under which the
	// commercial maps API key is stored
	DefaultKeyringUser = "maps-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DefaultNote is stored when a mood entry is logged without a note
	DefaultNote = "No note"

	// Mood rating bounds
	MinMoodRating = 1
	MaxMoodRating = 10

	// Mood filter bands
	BandHigh   MoodBand = "high"
	BandMedium MoodBand = "medium"
	BandLow    MoodBand = "low"

	// Breathing exercise timing (4-7-8 technique)
	BreathingPrepDuration     = 3 * time.Second
	BreathingInhaleDuration   = 4 * time.Second
	BreathingHoldDuration     = 7 * time.Second
	BreathingExhaleDuration   = 8 * time.Second
	BreathingRestDuration     = 2 * time.Second
	BreathingCompleteDuration = 5 * time.Second
	BreathingTickInterval     = 100 * time.Millisecond
	BreathingMaxCycles        = 4

	// Location search
	DefaultSearchRadiusM = 10000
	MaxSearchResults     = 20
	EarthRadiusKm        = 6371.0

	// Providers
	ProviderAuto   ProviderName = "auto"
	ProviderGoogle ProviderName = "google"
	ProviderOSM    ProviderName = "osm"

	// Facility kinds (normalized across providers)
	KindHospital      FacilityKind = "hospital"
	KindDoctor        FacilityKind = "doctor"
	KindMedicalCenter FacilityKind = "medical_center"
	KindPharmacy      FacilityKind = "pharmacy"
	KindMentalHealth  FacilityKind = "mental_health"
	KindDentist       FacilityKind = "dentist"
	KindPhysiotherapy FacilityKind = "physiotherapy"
	KindHealthcare    FacilityKind = "health"

	// Marker colors by facility kind, exposed for any visual layer
	MarkerColorHospital     = "#dc2626"
	MarkerColorDoctor       = "#059669"
	MarkerColorMentalHealth = "#7c3aed"
	MarkerColorDefault      = "#6366f1"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "serene-"

	// Wearable GATT identifiers (Bluetooth SIG assigned names)
	HeartRateService        = "heart_rate"
	HeartRateCharacteristic = "heart_rate_measurement"
)
