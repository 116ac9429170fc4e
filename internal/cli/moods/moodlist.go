package moods

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhollis/serene/internal/cli"
	"github.com/mhollis/serene/internal/constants"
	"github.com/mhollis/serene/internal/models"
	"github.com/mhollis/serene/internal/mood"
)

var (
	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	entryDateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	entryNoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type MoodListCmd struct {
	Filter string `short:"f" help:"Filter by rating band (high|medium|low)." enum:"high,medium,low," default:""`
}

func (c *MoodListCmd) Run(ctx *cli.Context) error {
	history, err := ctx.Store.GetMoodHistory()
	if err != nil {
		return err
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	// Stats always cover the full, unfiltered history
	fmt.Println(renderStats(mood.Stats(history, today)))
	fmt.Println()

	if len(history) == 0 {
		fmt.Println(emptyStyle.Render("No moods logged yet. Start tracking your mood to see your progress and insights!"))
		return nil
	}

	display := mood.FilterByBand(mood.SortForDisplay(history), constants.MoodBand(c.Filter))
	if len(display) == 0 {
		fmt.Println(emptyStyle.Render("No entries match this filter."))
		return nil
	}

	for _, entry := range display {
		date := entry.Date
		if t, err := time.Parse(constants.DateFormat, entry.Date); err == nil {
			date = t.Format("Mon, Jan 2 2006")
		}
		fmt.Printf("%s  %s %d/10 • %s\n", entryDateStyle.Render(date), mood.Emoji(entry.Rating), entry.Rating, mood.Label(entry.Rating))
		if entry.Note != "" {
			fmt.Printf("    %s\n", entryNoteStyle.Render(entry.Note))
		}
	}
	return nil
}

func renderStats(stats models.MoodStats) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		statLabelStyle.Render("Entries:"), statStyle.Render(fmt.Sprintf("%d", stats.Total)),
		statLabelStyle.Render("Average:"), statStyle.Render(fmt.Sprintf("%.1f", stats.Average)),
		statLabelStyle.Render("Best:"), statStyle.Render(fmt.Sprintf("%d", stats.Best)),
		statLabelStyle.Render("Streak:"), statStyle.Render(fmt.Sprintf("%d days", stats.Streak)))
}

type MoodStatsCmd struct{}

func (c *MoodStatsCmd) Run(ctx *cli.Context) error {
	history, err := ctx.Store.GetMoodHistory()
	if err != nil {
		return err
	}
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	fmt.Println(renderStats(mood.Stats(history, today)))
	return nil
}
