package moods

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/mhollis/serene/internal/cli"
	"github.com/mhollis/serene/internal/constants"
	"github.com/mhollis/serene/internal/models"
	"github.com/mhollis/serene/internal/utils"
	"github.com/mhollis/serene/internal/validation"
)

type MoodAddCmd struct {
	Rating int    `short:"r" help:"Mood rating (1-10). Omit for an interactive form." default:"0"`
	Date   string `short:"d" help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Note   string `short:"n" help:"Optional note."`
}

func (c *MoodAddCmd) Validate() error {
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %s", c.Date)
	}
	if c.Rating != 0 && (c.Rating < constants.MinMoodRating || c.Rating > constants.MaxMoodRating) {
		return fmt.Errorf("rating must be between %d and %d", constants.MinMoodRating, constants.MaxMoodRating)
	}
	return nil
}

func (c *MoodAddCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = today
	}
	rating := c.Rating
	note := c.Note

	// No rating on the command line means interactive entry
	if rating == 0 {
		if err := runMoodForm(&date, &rating, &note, today); err != nil {
			return err
		}
	}

	entry := models.MoodEntry{
		ID:     time.Now().UnixMilli(),
		Date:   date,
		Rating: rating,
		Note:   strings.TrimSpace(note),
	}
	if entry.Note == "" {
		entry.Note = constants.DefaultNote
	}

	if err := validation.ValidateMoodEntry(entry, today); err != nil {
		return err
	}

	if err := ctx.Store.AddMoodEntry(entry); err != nil {
		return err
	}

	fmt.Printf("Mood logged successfully! Rating: %d/10\n", entry.Rating)
	return nil
}

func runMoodForm(date *string, rating *int, note *string, today string) error {
	ratingOptions := make([]huh.Option[int], 0, constants.MaxMoodRating)
	for r := constants.MinMoodRating; r <= constants.MaxMoodRating; r++ {
		ratingOptions = append(ratingOptions, huh.NewOption(fmt.Sprintf("%d", r), r))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, today or earlier").
				Value(date).
				Validate(func(s string) error {
					if !utils.ValidateDateFormat(s) {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					if s > today {
						return fmt.Errorf("date cannot be in the future")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("How are you feeling? (1-10)").
				Options(ratingOptions...).
				Value(rating),
			huh.NewText().
				Title("Note").
				Placeholder("Anything on your mind? (optional)").
				Value(note),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	return nil
}
