package moods

import (
	"fmt"
	"os"

	"github.com/mhollis/serene/internal/cli"
	"github.com/mhollis/serene/internal/mood"
)

type MoodImportCmd struct {
	File string `arg:"" help:"JSON file containing an array of mood entries."`
}

func (c *MoodImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	// Parse first: a rejected payload must leave the stored history untouched
	history, err := mood.Import(f)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.ReplaceMoodHistory(history); err != nil {
		return err
	}

	fmt.Printf("Mood history imported successfully! %d entries.\n", len(history))
	return nil
}
