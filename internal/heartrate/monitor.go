package heartrate

import (
	"context"
	"time"

	"github.com/mhollis/serene/internal/constants"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/logger"
	"github.com/mhollis/serene/internal/models"
	"github.com/mhollis/serene/internal/storage"
)

// Wearable is the externally supplied device capability: discover a device
// by service, subscribe to a characteristic, receive raw binary
// notifications until the channel closes.
type Wearable interface {
	Subscribe(ctx context.Context, service, characteristic string) (<-chan []byte, error)
}

// SampleFunc is invoked after each decoded and persisted sample, with the
// latest bpm and the session so far. Used by the CLI to render live values.
type SampleFunc func(bpm int, session *Session)

// Monitor subscribes to a wearable's heart-rate notifications, decodes each
// frame and persists every sample in arrival order. Both the dedicated
// heart-rate flow and the generic scan flow run through this one path, so
// they cannot diverge in decoding or persistence.
type Monitor struct {
	store   storage.Provider
	session *Session
}

func NewMonitor(store storage.Provider) *Monitor {
	return &Monitor{
		store:   store,
		session: NewSession(),
	}
}

// Session exposes the running session for display
func (m *Monitor) Session() *Session {
	return m.session
}

// Run subscribes and processes notifications until the context is canceled
// or the device disconnects. A nil wearable means the runtime has no
// Bluetooth support.
func (m *Monitor) Run(ctx context.Context, wearable Wearable, onSample SampleFunc) error {
	if wearable == nil {
		return serrors.New(serrors.KindCapabilityUnavailable, "no wearable device capability available")
	}

	frames, err := wearable.Subscribe(ctx, constants.HeartRateService, constants.HeartRateCharacteristic)
	if err != nil {
		return serrors.Wrap(serrors.KindCapabilityUnavailable, err)
	}
	logger.Info("Subscribed to heart-rate notifications", "session", m.session.ID)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame, ok := <-frames:
			if !ok {
				logger.Info("Wearable disconnected", "session", m.session.ID, "samples", m.session.Count())
				return nil
			}
			if err := m.handleFrame(frame, onSample); err != nil {
				// A single bad frame is dropped; the stream continues.
				logger.Warn("Dropping malformed heart-rate frame", "session", m.session.ID, "error", err)
			}
		}
	}
}

func (m *Monitor) handleFrame(frame []byte, onSample SampleFunc) error {
	bpm, err := DecodeMeasurement(frame)
	if err != nil {
		return err
	}

	m.session.Append(bpm)

	sample := models.HeartRateSample{
		TS:  time.Now().Format(time.RFC3339),
		BPM: bpm,
	}
	if err := m.store.AppendHeartRateSample(sample); err != nil {
		logger.Warn("Failed to persist heart-rate sample", "error", err)
	}

	if onSample != nil {
		onSample(bpm, m.session)
	}
	return nil
}
