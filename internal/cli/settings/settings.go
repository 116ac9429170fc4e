package settings

import (
	"fmt"

	"github.com/mhollis/serene/internal/cli"
	"github.com/mhollis/serene/internal/keyring"
	"github.com/mhollis/serene/internal/validation"
)

type SettingsCmd struct {
	Show         ShowCmd         `cmd:"" help:"Show current settings." default:"1"`
	Set          SetCmd          `cmd:"" help:"Update a setting."`
	SetAPIKey    SetAPIKeyCmd    `cmd:"" name:"set-api-key" help:"Store the maps API key in the OS keyring."`
	DeleteAPIKey DeleteAPIKeyCmd `cmd:"" name:"delete-api-key" help:"Remove the maps API key from the OS keyring."`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	fmt.Printf("timezone:        %s\n", settings.Timezone)
	fmt.Printf("provider:        %s\n", settings.Provider)
	fmt.Printf("search-radius-m: %d\n", settings.SearchRadiusM)
	return nil
}

type SetCmd struct {
	Timezone string `help:"IANA timezone name, or 'Local'."`
	Provider string `help:"Location provider (auto|google|osm)."`
	Radius   int    `help:"Facility search radius in meters." default:"0"`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.Timezone != "" {
		settings.Timezone = c.Timezone
	}
	if c.Provider != "" {
		settings.Provider = c.Provider
	}
	if c.Radius > 0 {
		settings.SearchRadiusM = c.Radius
	}

	if err := validation.ValidateSettings(settings); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	fmt.Println("Settings updated.")
	return nil
}

type SetAPIKeyCmd struct {
	Key string `arg:"" help:"Maps API key."`
}

func (c *SetAPIKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.SetAPIKey(c.Key); err != nil {
		return err
	}
	fmt.Println("API key stored in OS keyring.")
	return nil
}

type DeleteAPIKeyCmd struct{}

func (c *DeleteAPIKeyCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		return err
	}
	fmt.Println("API key removed from OS keyring.")
	return nil
}
