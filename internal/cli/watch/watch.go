package watch

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/mhollis/serene/internal/cli"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/heartrate"
)

type WatchCmd struct {
	Replay string `help:"Replay recorded notification frames from a file (one hex-encoded frame per line) instead of a live device."`
}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	monitor := heartrate.NewMonitor(ctx.Store)

	var wearable heartrate.Wearable
	if c.Replay != "" {
		frames, err := readFrames(c.Replay)
		if err != nil {
			return err
		}
		wearable = &replayWearable{frames: frames}
	}
	// No live Bluetooth transport is wired in this build; without a replay
	// source the capability is reported unavailable rather than crashing.

	onSample := func(bpm int, session *heartrate.Session) {
		fmt.Printf("HR: %d bpm  (avg %d over %d samples)\n", bpm, session.Average(), session.Count())
	}

	if err := monitor.Run(context.Background(), wearable, onSample); err != nil {
		if serrors.IsKind(err, serrors.KindCapabilityUnavailable) {
			fmt.Println("No heart-rate device available. Connect a wearable or use --replay.")
			return nil
		}
		return err
	}

	session := monitor.Session()
	if session.Count() > 0 {
		fmt.Printf("Session %s: %d samples, average %d bpm\n", session.ID, session.Count(), session.Average())
	}
	return nil
}

// replayWearable feeds recorded frames through the same subscribe interface
// a live device would use
type replayWearable struct {
	frames [][]byte
}

func (r *replayWearable) Subscribe(ctx context.Context, service, characteristic string) (<-chan []byte, error) {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for _, frame := range r.frames {
			select {
			case <-ctx.Done():
				return
			case out <- frame:
			}
		}
	}()
	return out, nil
}

func readFrames(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer f.Close()

	var frames [][]byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), " ", "")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		frame, err := hex.DecodeString(line)
		if err != nil {
			return nil, serrors.New(serrors.KindFormat, "invalid hex frame %q: %v", line, err)
		}
		frames = append(frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read replay file: %w", err)
	}
	return frames, nil
}
