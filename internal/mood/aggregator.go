package mood

import (
	"math"
	"sort"
	"time"

	"github.com/mhollis/serene/internal/constants"
	"github.com/mhollis/serene/internal/models"
)

// Stats computes summary statistics over the full, unfiltered history.
// The today parameter is the current calendar date (YYYY-MM-DD) in the
// user's timezone; the streak is counted backward from it.
// An empty history yields all-zero stats.
func Stats(history []models.MoodEntry, today string) models.MoodStats {
	if len(history) == 0 {
		return models.MoodStats{}
	}

	sum := 0
	best := 0
	for _, entry := range history {
		sum += entry.Rating
		if entry.Rating > best {
			best = entry.Rating
		}
	}

	avg := float64(sum) / float64(len(history))

	return models.MoodStats{
		Total:   len(history),
		Average: math.Round(avg*10) / 10,
		Best:    best,
		Streak:  Streak(history, today),
	}
}

// Streak counts consecutive calendar days, ending today, with at least one
// entry each. A day with multiple entries counts once. No entry today means
// the streak is zero regardless of earlier days.
func Streak(history []models.MoodEntry, today string) int {
	days := make(map[string]struct{}, len(history))
	for _, entry := range history {
		days[entry.Date] = struct{}{}
	}
	if len(days) == 0 {
		return 0
	}

	cursor, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return 0
	}

	streak := 0
	for {
		if _, ok := days[cursor.Format(constants.DateFormat)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// SortForDisplay returns a copy of the history sorted by date descending.
// Same-day entries keep their stored order.
func SortForDisplay(history []models.MoodEntry) []models.MoodEntry {
	sorted := make([]models.MoodEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}

// FilterByBand keeps only entries whose rating falls in the given band.
// An empty band returns the input unchanged.
func FilterByBand(history []models.MoodEntry, band constants.MoodBand) []models.MoodEntry {
	if band == "" {
		return history
	}

	filtered := []models.MoodEntry{}
	for _, entry := range history {
		switch band {
		case constants.BandHigh:
			if entry.Rating >= 8 {
				filtered = append(filtered, entry)
			}
		case constants.BandMedium:
			if entry.Rating >= 5 && entry.Rating <= 7 {
				filtered = append(filtered, entry)
			}
		case constants.BandLow:
			if entry.Rating <= 4 {
				filtered = append(filtered, entry)
			}
		}
	}
	return filtered
}

// Label maps a rating to a mood intensity description
func Label(rating int) string {
	switch {
	case rating >= 9:
		return "Excellent"
	case rating >= 7:
		return "Good"
	case rating >= 5:
		return "Okay"
	case rating >= 3:
		return "Low"
	default:
		return "Very Low"
	}
}

// Emoji maps a rating to a mood intensity icon
func Emoji(rating int) string {
	switch {
	case rating >= 9:
		return "😊"
	case rating >= 7:
		return "🙂"
	case rating >= 5:
		return "😐"
	case rating >= 3:
		return "😕"
	default:
		return "😢"
	}
}
