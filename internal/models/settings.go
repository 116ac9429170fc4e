package models

// Settings represents application-wide settings
type Settings struct {
	Timezone      string `json:"timezone"`        // IANA timezone name (e.g. "Europe/London", or "Local" for system timezone)
	Provider      string `json:"provider"`        // location provider: "auto", "google" or "osm"
	SearchRadiusM int    `json:"search_radius_m"` // nearby facility search radius in meters
}
