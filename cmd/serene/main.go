package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mhollis/serene/internal/cli"
	"github.com/mhollis/serene/internal/cli/backups"
	"github.com/mhollis/serene/internal/cli/facilities"
	"github.com/mhollis/serene/internal/cli/moods"
	"github.com/mhollis/serene/internal/cli/settings"
	"github.com/mhollis/serene/internal/cli/system"
	"github.com/mhollis/serene/internal/cli/watch"
	"github.com/mhollis/serene/internal/logger"
	"github.com/mhollis/serene/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Data file path. A .json extension selects the plain JSON store; anything else uses SQLite." type:"path" default:"~/.config/serene/serene.db"`
	Debug   bool   `help:"Enable verbose logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize serene storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Mood   struct {
		Add    moods.MoodAddCmd    `cmd:"" help:"Log a mood entry." default:"1"`
		List   moods.MoodListCmd   `cmd:"" help:"List mood history."`
		Stats  moods.MoodStatsCmd  `cmd:"" help:"Show mood statistics."`
		Export moods.MoodExportCmd `cmd:"" help:"Export mood history to a JSON file."`
		Import moods.MoodImportCmd `cmd:"" help:"Import mood history from a JSON file."`
	} `cmd:"" help:"Track daily moods."`
	Breathe cli.BreatheCmd     `cmd:"" help:"Run a guided 4-7-8 breathing exercise."`
	Find    facilities.FindCmd `cmd:"" help:"Find nearby healthcare facilities."`
	Watch   watch.WatchCmd     `cmd:"" help:"Monitor heart rate from a wearable."`
	Tips    cli.TipsCmd        `cmd:"" help:"Show wellness tips."`
	Backup  struct {
		Create backups.BackupCreateCmd `cmd:"" help:"Create a manual backup." default:"1"`
		List   backups.BackupListCmd   `cmd:"" help:"List available backups."`
	} `cmd:"" help:"Manage data backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("serene"),
		kong.Description("Mental wellness companion: mood tracking, guided breathing, and care finding"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.3.1"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Store selection by file extension
	var store storage.Provider
	if strings.EqualFold(filepath.Ext(CLI.Config), ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
