package models

// MoodEntry represents a single logged mood
type MoodEntry struct {
	ID     int64  `json:"id"`     // unix milliseconds at creation time
	Date   string `json:"date"`   // YYYY-MM-DD format
	Rating int    `json:"rating"` // 1-10
	Note   string `json:"note"`
}

// MoodStats holds summary statistics derived from the full mood history
type MoodStats struct {
	Total   int
	Average float64 // mean rating, rounded to one decimal place
	Best    int
	Streak  int // consecutive calendar days ending today with at least one entry
}
