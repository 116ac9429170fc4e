package heartrate

import "testing"

func TestSession(t *testing.T) {
	t.Run("empty session", func(t *testing.T) {
		s := NewSession()
		if s.ID == "" {
			t.Error("session has no ID")
		}
		if s.Count() != 0 || s.Latest() != 0 || s.Average() != 0 {
			t.Errorf("empty session: count=%d latest=%d avg=%d, want zeros", s.Count(), s.Latest(), s.Average())
		}
	})

	t.Run("average rounds to nearest integer", func(t *testing.T) {
		s := NewSession()
		for _, bpm := range []int{70, 71} {
			s.Append(bpm)
		}
		// 70.5 rounds up.
		if got := s.Average(); got != 71 {
			t.Errorf("Average() = %d, want 71", got)
		}
	})

	t.Run("latest tracks arrival order", func(t *testing.T) {
		s := NewSession()
		for _, bpm := range []int{60, 90, 75} {
			s.Append(bpm)
		}
		if s.Latest() != 75 {
			t.Errorf("Latest() = %d, want 75", s.Latest())
		}
		if s.Count() != 3 {
			t.Errorf("Count() = %d, want 3", s.Count())
		}
		if s.Average() != 75 {
			t.Errorf("Average() = %d, want 75", s.Average())
		}
	})

	t.Run("distinct sessions get distinct ids", func(t *testing.T) {
		if NewSession().ID == NewSession().ID {
			t.Error("two sessions share an ID")
		}
	})
}
