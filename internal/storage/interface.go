package storage

import "github.com/mhollis/serene/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Mood history. The history is append-only; ReplaceMoodHistory is the
	// only bulk mutation and is used by import/restore.
	AddMoodEntry(models.MoodEntry) error
	GetMoodHistory() ([]models.MoodEntry, error)
	ReplaceMoodHistory([]models.MoodEntry) error

	// Heart-rate samples, append-only, kept separate from mood data
	AppendHeartRateSample(models.HeartRateSample) error
	GetHeartRateSamples() ([]models.HeartRateSample, error)

	// Utils
	GetConfigPath() string
}
