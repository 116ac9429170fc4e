package heartrate

import (
	"context"
	"path/filepath"
	"testing"

	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/storage"
)

// stubWearable replays fixed frames and closes the channel, like a device
// disconnecting after the last notification.
type stubWearable struct {
	frames [][]byte
}

func (s *stubWearable) Subscribe(ctx context.Context, service, characteristic string) (<-chan []byte, error) {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for _, frame := range s.frames {
			select {
			case <-ctx.Done():
				return
			case out <- frame:
			}
		}
	}()
	return out, nil
}

// openWearable hands out a caller-controlled channel that is never closed.
type openWearable struct {
	frames chan []byte
}

func (o openWearable) Subscribe(ctx context.Context, service, characteristic string) (<-chan []byte, error) {
	return o.frames, nil
}

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "serene.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	return store
}

func TestMonitorRun(t *testing.T) {
	t.Run("nil wearable means capability unavailable", func(t *testing.T) {
		m := NewMonitor(newTestStore(t))
		err := m.Run(context.Background(), nil, nil)
		if !serrors.IsKind(err, serrors.KindCapabilityUnavailable) {
			t.Errorf("Run(nil wearable) error = %v, want capability-unavailable kind", err)
		}
	})

	t.Run("decodes and persists samples in arrival order", func(t *testing.T) {
		store := newTestStore(t)
		m := NewMonitor(store)

		wearable := &stubWearable{frames: [][]byte{
			{0x00, 72},
			{0x01, 0x50, 0x00}, // 80 as uint16
			{0x00, 68},
		}}

		var seen []int
		err := m.Run(context.Background(), wearable, func(bpm int, session *Session) {
			seen = append(seen, bpm)
		})
		if err != nil {
			t.Fatalf("Run() returned unexpected error: %v", err)
		}

		want := []int{72, 80, 68}
		if len(seen) != len(want) {
			t.Fatalf("received %d samples, want %d", len(seen), len(want))
		}
		for i := range want {
			if seen[i] != want[i] {
				t.Errorf("sample %d = %d, want %d", i, seen[i], want[i])
			}
		}

		persisted, err := store.GetHeartRateSamples()
		if err != nil {
			t.Fatalf("GetHeartRateSamples() returned unexpected error: %v", err)
		}
		if len(persisted) != len(want) {
			t.Fatalf("persisted %d samples, want %d", len(persisted), len(want))
		}
		for i := range want {
			if persisted[i].BPM != want[i] {
				t.Errorf("persisted[%d].BPM = %d, want %d", i, persisted[i].BPM, want[i])
			}
			if persisted[i].TS == "" {
				t.Errorf("persisted[%d] missing timestamp", i)
			}
		}
	})

	t.Run("malformed frames are dropped, stream continues", func(t *testing.T) {
		store := newTestStore(t)
		m := NewMonitor(store)

		wearable := &stubWearable{frames: [][]byte{
			{0x00, 72},
			{0x01}, // too short
			{0x00, 68},
		}}

		if err := m.Run(context.Background(), wearable, nil); err != nil {
			t.Fatalf("Run() returned unexpected error: %v", err)
		}

		if got := m.Session().Count(); got != 2 {
			t.Errorf("Session().Count() = %d, want 2 good samples", got)
		}
	})

	t.Run("context cancellation stops the run", func(t *testing.T) {
		m := NewMonitor(newTestStore(t))
		ctx, cancel := context.WithCancel(context.Background())

		// One frame, then the channel stays open so only cancellation can
		// end the run.
		frames := make(chan []byte, 1)
		frames <- []byte{0x00, 72}
		wearable := openWearable{frames: frames}

		done := 0
		err := m.Run(ctx, wearable, func(bpm int, session *Session) {
			done++
			cancel()
		})
		if err != context.Canceled {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
		if done != 1 {
			t.Errorf("processed %d samples before cancel, want 1", done)
		}
	})
}
