package facilities

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhollis/serene/internal/cli"
	serrors "github.com/mhollis/serene/internal/errors"
	"github.com/mhollis/serene/internal/models"
	"github.com/mhollis/serene/internal/places"
	"github.com/mhollis/serene/internal/validation"
)

var (
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type FindCmd struct {
	Location string  `arg:"" optional:"" help:"Free-text location to search around (address, city, place name)."`
	Radius   int     `short:"r" help:"Search radius in meters. Defaults to the configured radius." default:"0"`
	Lat      float64 `help:"Skip geocoding and use this latitude (requires --lng)." default:"91"`
	Lng      float64 `help:"Skip geocoding and use this longitude (requires --lat)." default:"181"`
}

func (c *FindCmd) Validate() error {
	hasCoords := c.Lat <= 90 && c.Lng <= 180
	if c.Location == "" && !hasCoords {
		return fmt.Errorf("provide a location or both --lat and --lng")
	}
	return nil
}

func (c *FindCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.LocationService()
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	radius := c.Radius
	if radius <= 0 {
		radius = settings.SearchRadiusM
	}

	reqCtx := context.Background()

	center, err := c.center(reqCtx, svc)
	if err != nil {
		if serrors.IsKind(err, serrors.KindNotFound) {
			fmt.Println(emptyStyle.Render("Could not find the specified location."))
			return nil
		}
		return err
	}

	results, err := svc.SearchNearby(reqCtx, center, radius)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println(emptyStyle.Render("No healthcare facilities found in your area. Try expanding your search radius."))
		return nil
	}

	fmt.Printf("Found %d healthcare facilities nearby (provider: %s)\n\n", len(results), svc.ProviderName())
	for _, f := range results {
		details := []string{fmt.Sprintf("%.1f km away", f.DistanceKm)}
		if f.Rating != nil {
			details = append(details, fmt.Sprintf("⭐ %.1f", *f.Rating))
		}
		if f.Phone != "" {
			details = append(details, f.Phone)
		}

		fmt.Printf("%s  %s\n", nameStyle.Render(f.Name), kindStyle.Render(places.Classify(f)))
		if f.Address != "" {
			fmt.Printf("  %s\n", detailStyle.Render(f.Address))
		}
		fmt.Printf("  %s\n", detailStyle.Render(strings.Join(details, " • ")))
		fmt.Printf("  %s\n\n", detailStyle.Render(places.DirectionsURL(center, f)))
	}
	return nil
}

// center resolves the search center: explicit coordinates when both were
// given, otherwise a geocode of the free-text location
func (c *FindCmd) center(reqCtx context.Context, svc *places.Service) (models.Coordinates, error) {
	if c.Lat <= 90 && c.Lng <= 180 {
		coords := models.Coordinates{Lat: c.Lat, Lng: c.Lng}
		if err := validation.ValidateCoordinates(coords); err != nil {
			return models.Coordinates{}, err
		}
		return coords, nil
	}
	return svc.Geocode(reqCtx, c.Location)
}
