package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mhollis/serene/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "serene.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() returned unexpected error: %v", err)
	}
	return store
}

func TestJSONStoreInit(t *testing.T) {
	t.Run("creates file with default settings", func(t *testing.T) {
		store := setupJSONStore(t)

		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings() returned unexpected error: %v", err)
		}
		if settings.Timezone != "Local" {
			t.Errorf("default timezone = %q, want Local", settings.Timezone)
		}
		if settings.Provider != "auto" {
			t.Errorf("default provider = %q, want auto", settings.Provider)
		}
		if settings.SearchRadiusM != 10000 {
			t.Errorf("default radius = %d, want 10000", settings.SearchRadiusM)
		}
	})

	t.Run("refuses to reinitialize", func(t *testing.T) {
		store := setupJSONStore(t)
		if err := store.Init(); err == nil {
			t.Error("second Init() succeeded, want error")
		}
	})
}

func TestJSONStoreLoad(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
		if err := store.Load(); err == nil {
			t.Error("Load() of missing file succeeded, want error")
		}
	})

	t.Run("corrupt file falls back to empty collections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "serene.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}

		store := NewJSONStore(path)
		if err := store.Load(); err != nil {
			t.Fatalf("Load() of corrupt file returned error: %v", err)
		}

		history, err := store.GetMoodHistory()
		if err != nil {
			t.Fatalf("GetMoodHistory() returned unexpected error: %v", err)
		}
		if len(history) != 0 {
			t.Errorf("corrupt store yielded %d entries, want 0", len(history))
		}
	})

	t.Run("round trips data across load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "serene.json")
		store := NewJSONStore(path)
		if err := store.Init(); err != nil {
			t.Fatal(err)
		}

		entry := models.MoodEntry{ID: 1, Date: "2026-09-01", Rating: 7, Note: "Fine"}
		if err := store.AddMoodEntry(entry); err != nil {
			t.Fatalf("AddMoodEntry() returned unexpected error: %v", err)
		}

		reopened := NewJSONStore(path)
		if err := reopened.Load(); err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		history, err := reopened.GetMoodHistory()
		if err != nil {
			t.Fatal(err)
		}
		if len(history) != 1 || history[0] != entry {
			t.Errorf("reloaded history = %v, want [%+v]", history, entry)
		}
	})
}

func TestJSONStoreReplaceMoodHistory(t *testing.T) {
	store := setupJSONStore(t)

	for i := int64(1); i <= 3; i++ {
		if err := store.AddMoodEntry(models.MoodEntry{ID: i, Date: "2026-09-01", Rating: 5}); err != nil {
			t.Fatal(err)
		}
	}

	replacement := []models.MoodEntry{{ID: 9, Date: "2026-08-31", Rating: 8, Note: "Imported"}}
	if err := store.ReplaceMoodHistory(replacement); err != nil {
		t.Fatalf("ReplaceMoodHistory() returned unexpected error: %v", err)
	}

	history, err := store.GetMoodHistory()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].ID != 9 {
		t.Errorf("history after replace = %v, want the single imported entry", history)
	}
}

func TestJSONStoreHeartRateSamples(t *testing.T) {
	store := setupJSONStore(t)

	samples := []models.HeartRateSample{
		{TS: "2026-09-01T10:00:00Z", BPM: 72},
		{TS: "2026-09-01T10:00:01Z", BPM: 74},
	}
	for _, s := range samples {
		if err := store.AppendHeartRateSample(s); err != nil {
			t.Fatalf("AppendHeartRateSample() returned unexpected error: %v", err)
		}
	}

	got, err := store.GetHeartRateSamples()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d samples, want 2", len(got))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample %d = %+v, want %+v", i, got[i], samples[i])
		}
	}
}

func TestJSONStoreSaveIsAtomic(t *testing.T) {
	store := setupJSONStore(t)

	if err := store.AddMoodEntry(models.MoodEntry{ID: 1, Date: "2026-09-01", Rating: 7}); err != nil {
		t.Fatal(err)
	}

	// The temp file must never survive a successful save.
	if _, err := os.Stat(store.GetConfigPath() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary save file left behind")
	}
}

func TestJSONStoreGetMoodHistoryReturnsCopy(t *testing.T) {
	store := setupJSONStore(t)
	if err := store.AddMoodEntry(models.MoodEntry{ID: 1, Date: "2026-09-01", Rating: 7}); err != nil {
		t.Fatal(err)
	}

	history, _ := store.GetMoodHistory()
	history[0].Rating = 1

	again, _ := store.GetMoodHistory()
	if again[0].Rating != 7 {
		t.Error("mutating the returned history changed the stored copy")
	}
}
