package heartrate

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Session accumulates decoded samples for one monitoring run. It is
// ephemeral; only the individual samples are persisted.
type Session struct {
	ID        string
	StartedAt time.Time
	samples   []int
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Append records a decoded bpm value in arrival order
func (s *Session) Append(bpm int) {
	s.samples = append(s.samples, bpm)
}

// Count returns the number of samples received so far
func (s *Session) Count() int {
	return len(s.samples)
}

// Latest returns the most recent sample, or 0 before the first one
func (s *Session) Latest() int {
	if len(s.samples) == 0 {
		return 0
	}
	return s.samples[len(s.samples)-1]
}

// Average returns the arithmetic mean of all samples so far, rounded to the
// nearest integer for display. Zero before the first sample.
func (s *Session) Average() int {
	if len(s.samples) == 0 {
		return 0
	}
	sum := 0
	for _, bpm := range s.samples {
		sum += bpm
	}
	return int(math.Round(float64(sum) / float64(len(s.samples))))
}
