package moods

import (
	"fmt"
	"os"

	"github.com/mhollis/serene/internal/cli"
	"github.com/mhollis/serene/internal/mood"
)

type MoodExportCmd struct {
	File string `arg:"" help:"Destination JSON file."`
}

func (c *MoodExportCmd) Run(ctx *cli.Context) error {
	history, err := ctx.Store.GetMoodHistory()
	if err != nil {
		return err
	}

	f, err := os.Create(c.File)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := mood.Export(f, history); err != nil {
		return err
	}

	fmt.Printf("Exported %d mood entries to %s\n", len(history), c.File)
	return nil
}
