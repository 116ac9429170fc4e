package system

import (
	"fmt"

	"github.com/mhollis/serene/internal/cli"
	"github.com/mhollis/serene/internal/keyring"
	"github.com/mhollis/serene/internal/utils"
	"github.com/mhollis/serene/internal/validation"
)

type DoctorCmd struct{}

// Run performs health checks and prints a diagnostic report. Checks never
// abort early; every finding is reported.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true
	report := func(passed bool, label string, detail string) {
		mark := "✅"
		if !passed {
			mark = "❌"
			ok = false
		}
		if detail != "" {
			fmt.Printf("%s %s: %s\n", mark, label, detail)
		} else {
			fmt.Printf("%s %s\n", mark, label)
		}
	}

	report(true, "Storage", ctx.Store.GetConfigPath())

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		report(false, "Settings", err.Error())
	} else {
		if err := validation.ValidateSettings(settings); err != nil {
			report(false, "Settings", err.Error())
		} else {
			report(true, "Settings", fmt.Sprintf("timezone=%s provider=%s radius=%dm",
				settings.Timezone, settings.Provider, settings.SearchRadiusM))
		}
		if !utils.ValidateTimezone(settings.Timezone) {
			report(false, "Timezone", settings.Timezone)
		}
	}

	history, err := ctx.Store.GetMoodHistory()
	if err != nil {
		report(false, "Mood history", err.Error())
	} else {
		report(true, "Mood history", fmt.Sprintf("%d entries", len(history)))
	}

	samples, err := ctx.Store.GetHeartRateSamples()
	if err != nil {
		report(false, "Heart-rate samples", err.Error())
	} else {
		report(true, "Heart-rate samples", fmt.Sprintf("%d samples", len(samples)))
	}

	if keyring.IsAvailable() {
		if cli.MapsAPIKey() != "" {
			report(true, "Maps API key", "configured (commercial provider available)")
		} else {
			report(true, "Maps API key", "not set (open-data provider will be used)")
		}
	} else {
		report(true, "OS keyring", "unavailable; set SERENE_MAPS_API_KEY to use the commercial provider")
	}

	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("\nAll checks passed.")
	return nil
}
