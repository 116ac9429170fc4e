package mood

import (
	"encoding/json"
	"fmt"
	"io"

	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/models"
)

// Export writes the mood history as indented JSON
func Export(w io.Writer, history []models.MoodEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(history); err != nil {
		return fmt.Errorf("failed to export mood history: %w", err)
	}
	return nil
}

// Import parses a user-supplied JSON payload. The top-level value must be an
// array of entries; anything else is rejected with a format error so the
// caller's existing history stays untouched.
func Import(r io.Reader) ([]models.MoodEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, serrors.Wrap(serrors.KindFormat, fmt.Errorf("failed to read import payload: %w", err))
	}

	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, serrors.Wrap(serrors.KindFormat, fmt.Errorf("import payload is not valid JSON: %w", err))
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, serrors.New(serrors.KindFormat, "import payload must be a JSON array of mood entries")
	}

	var history []models.MoodEntry
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, serrors.Wrap(serrors.KindFormat, fmt.Errorf("import payload has malformed entries: %w", err))
	}
	if history == nil {
		history = []models.MoodEntry{}
	}
	return history, nil
}
