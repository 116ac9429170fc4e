package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhollis/serene/internal/constants"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/logger"
	"github.com/mhollis/serene/internal/models"
)

// Store is the on-disk JSON document. Mood history and heart-rate samples
// live under separate keys so neither collection can clobber the other.
type Store struct {
	Version          int                      `json:"version"`
	Settings         models.Settings          `json:"settings"`
	MoodHistory      []models.MoodEntry       `json:"mood_history"`
	HeartRateSamples []models.HeartRateSample `json:"heart_rate_samples"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

// DefaultSettings returns the settings a freshly initialized store starts with
func DefaultSettings() models.Settings {
	return models.Settings{
		Timezone:      "Local",
		Provider:      string(constants.ProviderAuto),
		SearchRadiusM: constants.DefaultSearchRadiusM,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to create config directory: %w", err))
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:          1,
		Settings:         DefaultSettings(),
		MoodHistory:      []models.MoodEntry{},
		HeartRateSamples: []models.HeartRateSample{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'serene init' first")
		}
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to read storage: %w", err))
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Corrupt document: fall back to empty collections so the app stays
		// usable, but surface the problem to the user.
		logger.Warn("Storage file is corrupt, starting with empty collections", "path", s.path, "error", err)
		s.store = &Store{Version: 1, Settings: DefaultSettings()}
	}

	if s.store.MoodHistory == nil {
		s.store.MoodHistory = []models.MoodEntry{}
	}
	if s.store.HeartRateSamples == nil {
		s.store.HeartRateSamples = []models.HeartRateSample{}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save serializes the whole document and replaces the file atomically so a
// failed write can never leave a half-written store behind.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to serialize storage: %w", err))
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to write storage: %w", err))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to replace storage: %w", err))
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddMoodEntry(entry models.MoodEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.MoodHistory = append(s.store.MoodHistory, entry)
	return s.save()
}

func (s *JSONStore) GetMoodHistory() ([]models.MoodEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	history := make([]models.MoodEntry, len(s.store.MoodHistory))
	copy(history, s.store.MoodHistory)
	return history, nil
}

func (s *JSONStore) ReplaceMoodHistory(history []models.MoodEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	replacement := make([]models.MoodEntry, len(history))
	copy(replacement, history)
	s.store.MoodHistory = replacement
	return s.save()
}

func (s *JSONStore) AppendHeartRateSample(sample models.HeartRateSample) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.HeartRateSamples = append(s.store.HeartRateSamples, sample)
	return s.save()
}

func (s *JSONStore) GetHeartRateSamples() ([]models.HeartRateSample, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	samples := make([]models.HeartRateSample, len(s.store.HeartRateSamples))
	copy(samples, s.store.HeartRateSamples)
	return samples, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
