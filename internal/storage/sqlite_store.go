package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	timezone TEXT NOT NULL,
	provider TEXT NOT NULL,
	search_radius_m INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS mood_entries (
	id INTEGER PRIMARY KEY,
	day TEXT NOT NULL,
	rating INTEGER NOT NULL,
	note TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_mood_entries_day ON mood_entries(day);
CREATE TABLE IF NOT EXISTS heart_rate_samples (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	ts TEXT NOT NULL,
	bpm INTEGER NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to create config directory: %w", err))
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to open database: %w", err))
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to create schema: %w", err))
	}

	// Seed default settings on first init
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'serene init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to open database: %w", err))
	}
	s.db = db

	// Schema statements are idempotent, so opening an older file upgrades it
	if _, err := s.db.Exec(schema); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to verify schema: %w", err))
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	var settings models.Settings
	row := s.db.QueryRow("SELECT timezone, provider, search_radius_m FROM settings WHERE id = 1")
	if err := row.Scan(&settings.Timezone, &settings.Provider, &settings.SearchRadiusM); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, fmt.Errorf("settings not found")
		}
		return models.Settings{}, serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to read settings: %w", err))
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (id, timezone, provider, search_radius_m) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET timezone = ?, provider = ?, search_radius_m = ?`,
		settings.Timezone, settings.Provider, settings.SearchRadiusM,
		settings.Timezone, settings.Provider, settings.SearchRadiusM)
	if err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to save settings: %w", err))
	}
	return nil
}

func (s *SQLiteStore) AddMoodEntry(entry models.MoodEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec("INSERT INTO mood_entries (id, day, rating, note) VALUES (?, ?, ?, ?)",
		entry.ID, entry.Date, entry.Rating, entry.Note)
	if err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to add mood entry: %w", err))
	}
	return nil
}

func (s *SQLiteStore) GetMoodHistory() ([]models.MoodEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT id, day, rating, note FROM mood_entries ORDER BY id")
	if err != nil {
		return nil, serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to read mood history: %w", err))
	}
	defer rows.Close()

	history := []models.MoodEntry{}
	for rows.Next() {
		var entry models.MoodEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Rating, &entry.Note); err != nil {
			return nil, serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to scan mood entry: %w", err))
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to read mood history: %w", err))
	}
	return history, nil
}

// ReplaceMoodHistory swaps the whole history inside a single transaction so a
// failed import can never leave a partially replaced table.
func (s *SQLiteStore) ReplaceMoodHistory(history []models.MoodEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM mood_entries"); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to clear mood history: %w", err))
	}
	for _, entry := range history {
		if _, err := tx.Exec("INSERT INTO mood_entries (id, day, rating, note) VALUES (?, ?, ?, ?)",
			entry.ID, entry.Date, entry.Rating, entry.Note); err != nil {
			return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to insert mood entry: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to commit mood history: %w", err))
	}
	return nil
}

func (s *SQLiteStore) AppendHeartRateSample(sample models.HeartRateSample) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec("INSERT INTO heart_rate_samples (ts, bpm) VALUES (?, ?)", sample.TS, sample.BPM)
	if err != nil {
		return serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to append heart-rate sample: %w", err))
	}
	return nil
}

func (s *SQLiteStore) GetHeartRateSamples() ([]models.HeartRateSample, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT ts, bpm FROM heart_rate_samples ORDER BY seq")
	if err != nil {
		return nil, serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to read heart-rate samples: %w", err))
	}
	defer rows.Close()

	samples := []models.HeartRateSample{}
	for rows.Next() {
		var sample models.HeartRateSample
		if err := rows.Scan(&sample.TS, &sample.BPM); err != nil {
			return nil, serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to scan heart-rate sample: %w", err))
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, serrors.Wrap(serrors.KindPersistence, fmt.Errorf("failed to read heart-rate samples: %w", err))
	}
	return samples, nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
