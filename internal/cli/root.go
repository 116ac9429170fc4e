package cli

import (
	"os"

	"github.com/mhollis/serene/internal/backup"
	"github.com/mhollis/serene/internal/constants"
	"github.com/mhollis/serene/internal/keyring"
	"github.com/mhollis/serene/internal/logger"
	"github.com/mhollis/serene/internal/places"
	"github.com/mhollis/serene/internal/storage"
	"github.com/mhollis/serene/internal/utils"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// Today returns the current date string in the user's configured timezone
func (c *Context) Today() (string, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return "", err
	}
	return utils.GetTodayInTimezone(settings.Timezone)
}

// LocationService builds the location search facade with the provider chosen
// by settings and key availability. Selection happens once per invocation,
// never per call site.
func (c *Context) LocationService() (*places.Service, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, err
	}
	provider := places.SelectProvider(constants.ProviderName(settings.Provider), MapsAPIKey())
	logger.Debug("Selected location provider", "provider", provider.Name())
	return places.NewService(provider), nil
}

// MapsAPIKey returns the commercial maps API key from the OS keyring,
// falling back to the SERENE_MAPS_API_KEY environment variable
func MapsAPIKey() string {
	if key, err := keyring.GetAPIKey(); err == nil {
		return key
	}
	return os.Getenv("SERENE_MAPS_API_KEY")
}
